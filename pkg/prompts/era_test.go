package prompts

import (
	"strings"
	"testing"
	"time"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func timeMachineArticle(year string) *article.Article {
	return &article.Article{
		TimeMachineMode: true,
		TargetYear:      year,
	}
}

func TestEraDirective_TimeMachineOff(t *testing.T) {
	a := &article.Article{TargetYear: "1950"}
	got := EraDirective(a, testNow)
	if got != eraContemporary {
		t.Errorf("Expected contemporary directive when time machine is off, got %q", got)
	}
}

func TestEraDirective_BandBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		fragment string
	}{
		{"1989 selects pre-internet band", "1989", "인터넷이 없던"},
		{"1990 selects dial-up band", "1990", "PC통신"},
		{"1999 selects dial-up band", "1999", "PC통신"},
		{"2000 selects blog band", "2000", "블로그"},
		{"2009 selects blog band", "2009", "블로그"},
		{"current+6 selects future band", "2032", "미래"},
		{"current+4 selects reflect band", "2030", "실제 미디어 환경"},
		{"2010 selects reflect band", "2010", "실제 미디어 환경"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EraDirective(timeMachineArticle(tt.year), testNow)
			if !strings.Contains(got, tt.fragment) {
				t.Errorf("Year %s: expected directive containing %q, got %q", tt.year, tt.fragment, got)
			}
		})
	}
}

func TestEraDirective_Idempotent(t *testing.T) {
	a := timeMachineArticle("1995")
	first := EraDirective(a, testNow)
	second := EraDirective(a, testNow)
	if first != second {
		t.Errorf("Expected identical outputs for identical inputs, got %q and %q", first, second)
	}
}

func TestTargetYear_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"valid year", "1987", 1987},
		{"padded year", " 2001 ", 2001},
		{"empty falls back to current year", "", testNow.Year()},
		{"garbage falls back to current year", "옛날", testNow.Year()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := timeMachineArticle(tt.raw)
			if got := TargetYear(a, testNow); got != tt.expected {
				t.Errorf("TargetYear(%q) = %d, want %d", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestAnalysisEraDirective_Bands(t *testing.T) {
	tests := []struct {
		name     string
		article  *article.Article
		fragment string
	}{
		{"contemporary names ten platforms", &article.Article{}, "네이버뉴스"},
		{"pre-internet uses reader letters", timeMachineArticle("1960"), "독자 투고"},
		{"dial-up names PC services", timeMachineArticle("1995"), "하이텔"},
		{"blog era names cyworld", timeMachineArticle("2005"), "싸이월드"},
		{"future imagines platforms", timeMachineArticle("2099"), "미래"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalysisEraDirective(tt.article, testNow)
			if !strings.Contains(got, tt.fragment) {
				t.Errorf("Expected directive containing %q, got %q", tt.fragment, got)
			}
		})
	}
}
