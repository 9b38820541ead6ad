package prompt

import (
	"strings"
	"testing"

	"vikibot/internal/memory"
)

func TestRenderContextFreshProfile(t *testing.T) {
	p := memory.NewProfile("Viki")
	if got := RenderContext(p); got != NoInfoSentence {
		t.Fatalf("expected the no-info sentence, got %q", got)
	}
}

func TestRenderContextKnownLabels(t *testing.T) {
	p := memory.NewProfile("Viki")
	p.Set("name", "Ava")
	p.Set("hates", "rain")
	p.RecordEmotion("happy")

	got := RenderContext(p)
	for _, line := range []string{
		"Name: Ava",
		"Dislikes: rain",
		"Current Mood: happy",
		"Recent Mood Trend: happy",
		"Relationship Status: in a loving relationship with Viki",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestRenderContextFallbackLabel(t *testing.T) {
	p := memory.NewProfile("Viki")
	p.Set("secret_code", "1234")
	p.Set("twin_sister", "Lida")

	got := RenderContext(p)
	if !strings.Contains(got, "Secret Code: 1234") {
		t.Fatalf("fallback label wrong:\n%s", got)
	}
	if !strings.Contains(got, "Twin Sister: Lida") {
		t.Fatalf("fallback label wrong:\n%s", got)
	}
}

func TestRenderContextPreservesExtraInsertionOrder(t *testing.T) {
	p := memory.NewProfile("Viki")
	p.Set("goal", "become a pilot")
	p.Set("favorite_color", "red")

	got := RenderContext(p)
	if strings.Index(got, "Goal:") > strings.Index(got, "Favorite Color:") {
		t.Fatalf("extra fields out of insertion order:\n%s", got)
	}
}
