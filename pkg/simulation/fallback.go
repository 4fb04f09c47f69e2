package simulation

import "github.com/jwebster45206/newsroom-engine/pkg/article"

// Fixed placeholder strings returned when generation fails. The UI
// shows these verbatim, so they stay in the game's language.
const (
	FallbackArticleTitle   = "기사 생성 실패"
	FallbackArticleContent = "AI 연결 상태를 확인해주세요."

	FallbackFeedback = "시뮬레이션 분석에 실패했습니다. AI 연결 상태를 확인하고 다시 시도해주세요."
	FallbackImpact   = "분석 결과를 불러오지 못했습니다."
)

// FallbackDraft is the placeholder draft returned when random article
// generation fails end to end.
func FallbackDraft() *article.Draft {
	return &article.Draft{
		Title:    FallbackArticleTitle,
		Content:  FallbackArticleContent,
		Category: article.DefaultCategory,
	}
}

// FallbackResult is the degraded analysis result: zeroed scores, fixed
// error text, empty collections. Stock and extra-index fields are left
// absent so the UI hides those panels instead of rendering zeros.
func FallbackResult() *Result {
	return &Result{
		Sentiment:          "neutral",
		EditorFeedback:     FallbackFeedback,
		SocialImpact:       FallbackImpact,
		OtherMediaCoverage: []MediaCoverage{},
		Comments:           []Comment{},
	}
}
