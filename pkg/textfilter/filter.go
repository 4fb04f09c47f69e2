package textfilter

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Korean terms are matched as plain substrings: RE2 word boundaries
// only understand ASCII word characters, so \b would misfire around
// Hangul. English terms keep word boundaries to avoid mangling words
// like "class".
var koreanTerms = []string{
	"시발", "씨발", "씨빨", "병신", "지랄", "개새끼", "새끼",
	"좆", "존나", "니미", "미친놈", "미친년", "꺼져라",
	"멍청이", "또라이", "등신",
}

var englishTerms = []string{
	"fuck", "shit", "bitch", "asshole", "bastard",
	"motherfucker", "dickhead", "bullshit",
}

// MaskFilter replaces profanity with a fixed marker. The entire
// offending token is replaced, never a partial span, so "씨발놈" and
// "f**k"-style half-masked output both collapse to the marker.
type MaskFilter struct {
	marker  string
	korean  []string
	english map[string]*regexp.Regexp
}

// NewMaskFilter creates a filter that substitutes marker for each
// matched term.
func NewMaskFilter(marker string) *MaskFilter {
	f := &MaskFilter{
		marker:  marker,
		korean:  koreanTerms,
		english: make(map[string]*regexp.Regexp, len(englishTerms)),
	}
	for _, term := range englishTerms {
		f.english[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return f
}

// Mask returns text with every matched term replaced by the marker.
// Input is NFC-normalized first: model output occasionally arrives
// with decomposed jamo, which would dodge substring matching.
func (f *MaskFilter) Mask(text string) string {
	result := norm.NFC.String(text)
	for _, term := range f.korean {
		result = strings.ReplaceAll(result, term, f.marker)
	}
	for _, re := range f.english {
		result = re.ReplaceAllString(result, f.marker)
	}
	return result
}

// ContainsProfanity reports whether text matches any filtered term.
func (f *MaskFilter) ContainsProfanity(text string) bool {
	normalized := norm.NFC.String(text)
	for _, term := range f.korean {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	for _, re := range f.english {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}
