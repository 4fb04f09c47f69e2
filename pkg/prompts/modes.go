package prompts

import "github.com/jwebster45206/newsroom-engine/pkg/article"

// Mode directives. The random-article flow picks exactly one by flag
// priority; the analysis flow concatenates every active one. The two
// selection strategies are deliberately separate evaluators.
const (
	ModeEmergency = "긴급 속보 모드입니다. 지금 막 터진 대형 사건처럼 긴박하고 충격적인 소재를 다루세요."
	ModeCrazy     = "황당 모드입니다. 상식을 벗어난 황당하고 기상천외한 소재를 다루되 기사 형식은 진지하게 유지하세요."
	ModeFakeNews  = "가짜뉴스 모드입니다. 사실이 아닌 내용을 그럴듯하게 포장한 기사입니다. 유료 기사처럼 자극적이고 과장된 논조를 사용하세요."
	ModeDefault   = "일반 모드입니다. 평범한 일상 뉴스의 논조를 유지하세요."
)

type modeRule struct {
	active    func(a *article.Article) bool
	directive string
}

// Ordered by priority: emergency beats crazy beats fakeNews. The flags
// are independently toggleable in the UI, so the order here is what
// makes the random-article selection mutually exclusive.
var modeRules = []modeRule{
	{func(a *article.Article) bool { return a.EmergencyMode }, ModeEmergency},
	{func(a *article.Article) bool { return a.CrazyMode }, ModeCrazy},
	{func(a *article.Article) bool { return a.FakeNewsMode }, ModeFakeNews},
}

// PickModeDirective returns the single highest-priority active mode
// directive, or the default when no flag is set.
func PickModeDirective(a *article.Article) string {
	for _, r := range modeRules {
		if r.active(a) {
			return r.directive
		}
	}
	return ModeDefault
}

// AccumulateModeDirectives returns every active mode directive in
// priority order. The default directive appears only when no flag is
// set, so analysis prompts always carry at least one mode block.
func AccumulateModeDirectives(a *article.Article) []string {
	var directives []string
	for _, r := range modeRules {
		if r.active(a) {
			directives = append(directives, r.directive)
		}
	}
	if len(directives) == 0 {
		directives = append(directives, ModeDefault)
	}
	return directives
}
