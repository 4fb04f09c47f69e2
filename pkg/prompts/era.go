package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
)

// Era directives steer the model toward period-appropriate reactions.
// Short forms are embedded in the random-article and reply prompts;
// the analysis prompt gets the detailed variant with platform guidance.
const (
	eraContemporary = "현대(현재 연도)의 온라인 뉴스 환경과 말투를 그대로 반영하세요."

	eraPreInternet = "배경 연도는 %d년입니다. 인터넷이 없던 시대입니다. 신문, 라디오, 벽보, 호외 같은 매체의 어조를 사용하고 온라인 용어는 절대 쓰지 마세요."
	eraDialUp      = "배경 연도는 %d년입니다. PC통신과 초기 전화접속 모뎀 시대입니다. 게시판 통신체와 당시의 느린 온라인 문화를 반영하세요."
	eraBlogDiary   = "배경 연도는 %d년입니다. 블로그와 초기 소셜 네트워크 다이어리 감성의 시대입니다. 당시의 온라인 말투와 유행어를 반영하세요."
	eraFuture      = "배경 연도는 %d년, 미래입니다. 미래적인 매체 환경과 상상력 있는 플랫폼 문화를 반영하되 현재의 밈을 그대로 쓰지 마세요."
	eraReflect     = "배경 연도는 %d년입니다. 그 해의 실제 미디어 환경, 사건, 온라인 문화 수준을 정확히 반영하세요."
)

// TargetYear parses the article's time-machine year, falling back to
// the current calendar year when absent or unparseable.
func TargetYear(a *article.Article, now time.Time) int {
	year, err := strconv.Atoi(strings.TrimSpace(a.TargetYear))
	if err != nil {
		return now.Year()
	}
	return year
}

// EraDirective maps an article's time-travel settings to a short
// natural-language era directive. Pure function of its inputs.
// Bands are evaluated in order with strict < comparisons; the first
// match wins.
func EraDirective(a *article.Article, now time.Time) string {
	if !a.TimeMachineMode {
		return eraContemporary
	}
	year := TargetYear(a, now)
	switch {
	case year < 1990:
		return fmt.Sprintf(eraPreInternet, year)
	case year < 2000:
		return fmt.Sprintf(eraDialUp, year)
	case year < 2010:
		return fmt.Sprintf(eraBlogDiary, year)
	case year > now.Year()+5:
		return fmt.Sprintf(eraFuture, year)
	default:
		return fmt.Sprintf(eraReflect, year)
	}
}

// Detailed era guidance for the analysis prompt. Each band names the
// platforms and outlet styles reactions should come from.
const (
	analysisEraContemporary = `현대의 온라인 반응을 생성합니다. 다음 10개 플랫폼 카테고리에서 각각 댓글을 생성하세요: 네이버뉴스, 다음뉴스, 유튜브, 인스타그램, X(구 트위터), 페이스북, 디시인사이드, 에펨코리아, 클리앙, 더쿠. 각 플랫폼의 실제 말투와 댓글 문화를 구분해서 반영하세요. 타 언론사 보도는 실제 존재할 법한 매체명과 논조로 작성하세요.`

	analysisEraPreInternet = `배경 연도는 %d년, 인터넷이 없던 시대입니다. "댓글"은 독자 투고, 전화 제보, 라디오 사연, 다방·시장 여론, 벽보 반응 같은 당시의 여론 채널로 대체하세요. platform 필드에는 그 채널 이름을 쓰세요(예: "독자투고", "라디오사연"). 타 언론사 보도는 조간/석간 신문과 라디오 뉴스의 문체로 작성하세요. 온라인 용어 사용 금지.`

	analysisEraDialUp = `배경 연도는 %d년, PC통신 시대입니다. 하이텔, 천리안, 나우누리 같은 PC통신 게시판과 동호회 반응으로 댓글을 구성하고 platform 필드에 해당 서비스명을 쓰세요. 통신체 말투를 반영하세요. 타 언론사 보도는 당시 신문과 지상파 뉴스 문체로 작성하세요.`

	analysisEraBlogDiary = `배경 연도는 %d년입니다. 싸이월드, 네이버 블로그, 다음 카페, 디시인사이드 초창기 같은 플랫폼 반응으로 댓글을 구성하고 platform 필드에 해당 서비스명을 쓰세요. 당시의 인터넷 유행어와 이모티콘 문화를 반영하세요. 타 언론사 보도는 포털 초기 뉴스 문체로 작성하세요.`

	analysisEraFuture = `배경 연도는 %d년, 미래입니다. 홀로그램 피드, 뇌파 댓글, AI 큐레이션 방송 등 미래적인 플랫폼을 10개 상상해서 platform 필드에 쓰세요. 미래 사회의 관심사와 말투를 창의적으로 구성하되 일관성을 유지하세요.`

	analysisEraReflect = `배경 연도는 %d년입니다. 그 해에 실제로 존재했던 플랫폼 10개를 골라 platform 필드에 쓰고, 그 시기의 온라인 문화와 실제 사건 맥락을 반영하세요. 타 언론사 보도도 당시의 실제 매체 논조로 작성하세요.`
)

// AnalysisEraDirective is the detailed five-band variant used by the
// analysis builder. Same band boundaries as EraDirective.
func AnalysisEraDirective(a *article.Article, now time.Time) string {
	if !a.TimeMachineMode {
		return analysisEraContemporary
	}
	year := TargetYear(a, now)
	switch {
	case year < 1990:
		return fmt.Sprintf(analysisEraPreInternet, year)
	case year < 2000:
		return fmt.Sprintf(analysisEraDialUp, year)
	case year < 2010:
		return fmt.Sprintf(analysisEraBlogDiary, year)
	case year > now.Year()+5:
		return fmt.Sprintf(analysisEraFuture, year)
	default:
		return fmt.Sprintf(analysisEraReflect, year)
	}
}
