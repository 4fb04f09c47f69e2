package textfilter

import (
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"
)

const marker = "***"

func TestMask_FullToken(t *testing.T) {
	f := NewMaskFilter(marker)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"korean term masked", "이런 씨발 진짜", "이런 *** 진짜"},
		{"korean term inside word", "개새끼들아", "***들아"},
		{"english word masked", "what the fuck is this", "what the *** is this"},
		{"english case insensitive", "FUCK this", "*** this"},
		{"english boundary respected", "classic shitake... wait", "classic shitake... wait"},
		{"clean text untouched", "평범한 댓글입니다", "평범한 댓글입니다"},
		{"multiple terms", "병신 같은 bullshit", "*** 같은 ***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Mask(tt.input); got != tt.expected {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMask_NeverPartial(t *testing.T) {
	f := NewMaskFilter(marker)
	got := f.Mask("존나 웃기네")
	if got != "*** 웃기네" {
		t.Errorf("Expected whole token replaced with marker, got %q", got)
	}
	if strings.Contains(got, "존") {
		t.Errorf("No fragment of the original token may survive, got %q", got)
	}
}

func TestMask_NormalizesDecomposedHangul(t *testing.T) {
	f := NewMaskFilter(marker)
	decomposed := norm.NFD.String("씨발 소리 하네")
	got := f.Mask(decomposed)
	if !strings.Contains(got, marker) {
		t.Errorf("Expected decomposed jamo to be normalized and masked, got %q", got)
	}
}

func TestContainsProfanity(t *testing.T) {
	f := NewMaskFilter(marker)

	if !f.ContainsProfanity("야 이 병신아") {
		t.Error("Expected profanity to be detected")
	}
	if !f.ContainsProfanity("total BULLSHIT") {
		t.Error("Expected English profanity to be detected")
	}
	if f.ContainsProfanity("기사 잘 봤습니다") {
		t.Error("Expected clean text to pass")
	}
}
