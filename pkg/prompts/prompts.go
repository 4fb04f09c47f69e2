package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

// MaskMarker replaces profanity in generated text. The whole offending
// token is replaced; partial masking is forbidden by the directives
// below and repaired by pkg/textfilter if the model slips.
const MaskMarker = "***"

const maskingDirective = `욕설, 비속어, 혐오 표현은 해당 단어 전체를 "` + MaskMarker + `"로 바꾸세요. 일부 글자만 가리거나 첫 글자를 남기는 방식(예: "ㅅ*", "f**k")은 절대 금지합니다.`

const randomArticleTemplate = `당신은 뉴스 시뮬레이션 게임의 기사 생성기입니다. 기자가 이어서 편집할 수 있는 짧은 기사 초안 하나를 생성하세요.

### 모드
%s

### 시대 배경
%s

### 작성 규칙
- title: 40자 이내의 기사 제목
- content: 2~4문단의 기사 본문. 구체적인 인물, 장소, 수치를 포함하세요.
- category: 다음 중 하나 — %s
- 실존 인물의 실명 대신 그럴듯한 가상의 이름을 사용하세요.

JSON만 출력하세요.`

// BuildRandomArticle assembles the random-article prompt and schema.
// Only the article's mode flags and time-machine settings are read;
// title and content are ignored.
func BuildRandomArticle(a *article.Article, now time.Time) (string, map[string]interface{}) {
	prompt := fmt.Sprintf(randomArticleTemplate,
		PickModeDirective(a),
		EraDirective(a, now),
		categoryList(),
	)
	return prompt, RandomArticleSchema()
}

const analysisHeaderTemplate = `당신은 뉴스 시뮬레이션 게임의 여론 분석 엔진입니다. 아래 기사가 보도된 직후의 대중 반응 전체를 시뮬레이션하세요.

### 기사
제목: %s
분류: %s
기자: %s
본문:
%s`

const analysisStructuralRequirements = `### 생성 규칙
- 플랫폼(또는 시대에 맞는 대체 채널) 10개 카테고리 각각에 최소 2개의 댓글을 배치하세요.
- 댓글 총 개수는 20~25개.
- 모든 댓글에는 정확히 1개의 reply(대댓글)를 포함하세요.
- 댓글 sentiment는 positive, negative, neutral 중 하나.
- virality_score, reliability_score, controversy_score는 0~100.
- anxiety_index, stability_index, anger_index는 0~100.
- stock_analysis에는 기사와 관련된 지수 1~3개를 포함하고, graph_data는 시간순으로 정렬하세요.
- other_media_coverage에는 타 매체 보도 3~5건을 포함하세요.
- editor_feedback은 데스크(편집장)가 기자에게 주는 피드백, social_impact는 사회적 파장 요약입니다.`

// BuildAnalysis assembles the full simulation prompt and schema. Mode
// directives are additive here: every active flag appends its block,
// in priority order, unlike the random-article flow.
func BuildAnalysis(a *article.Article, now time.Time) (string, map[string]interface{}) {
	var b strings.Builder

	author := a.Author
	if author == "" {
		author = "익명 기자"
	}
	fmt.Fprintf(&b, analysisHeaderTemplate, a.Title, a.Category, author, a.Content)

	b.WriteString("\n\n### 시대와 플랫폼\n")
	b.WriteString(AnalysisEraDirective(a, now))

	b.WriteString("\n\n### 모드\n")
	for _, d := range AccumulateModeDirectives(a) {
		b.WriteString(d)
		b.WriteString("\n")
	}

	if a.PreviousContext != "" {
		b.WriteString("\n### 이전 기사 맥락\n")
		fmt.Fprintf(&b, "이 기자의 직전 기사: %s\n", a.PreviousContext)
		b.WriteString("독자들이 이전 기사를 기억하고 연속성 있게 반응하도록 하세요.\n")
	}

	b.WriteString("\n")
	b.WriteString(analysisStructuralRequirements)
	b.WriteString("\n- ")
	b.WriteString(maskingDirective)
	b.WriteString("\n\nJSON만 출력하세요.")

	return b.String(), AnalysisSchema()
}

const replyReactionTemplate = `당신은 뉴스 시뮬레이션 게임의 댓글 반응 생성기입니다. 기자가 자신의 기사에 달린 댓글에 직접 답글을 달았습니다. 이 답글을 본 다른 이용자들의 반응 1~2개를 생성하세요.

### 기사
제목: %s (분류: %s)

### 원래 댓글 (%s, 좋아요 %d)
%s: %s

### 기자의 답글
%s

### 반응 규칙
- 시대 배경: %s%s
- 반응의 태도는 다양하게: 기자를 옹호, 비꼬기, 무시, 반박 중에서 고르되 서로 다르게.
- 해당 플랫폼의 말투를 유지하세요.
- %s

JSON 배열만 출력하세요.`

// BuildReplyReaction assembles the third-order reaction prompt and
// schema for a reporter's reply to a comment.
func BuildReplyReaction(a *article.Article, c *simulation.Comment, replyText string, now time.Time) (string, map[string]interface{}) {
	var modeNotes strings.Builder
	if a.EmergencyMode {
		modeNotes.WriteString("\n- 긴급 속보 상황의 분위기를 반영하세요.")
	}
	if a.CrazyMode {
		modeNotes.WriteString("\n- 황당한 사건에 대한 반응임을 반영하세요.")
	}
	if a.FakeNewsMode {
		modeNotes.WriteString("\n- 기사의 신빙성을 의심하는 반응이 섞일 수 있습니다.")
	}

	prompt := fmt.Sprintf(replyReactionTemplate,
		a.Title, a.Category,
		c.Platform, c.Likes,
		c.Username, c.Content,
		replyText,
		EraDirective(a, now),
		modeNotes.String(),
		maskingDirective,
	)
	return prompt, ReplyReactionSchema()
}

func categoryList() string {
	cats := article.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
