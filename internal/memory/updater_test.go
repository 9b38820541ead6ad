package memory

import (
	"os"
	"path/filepath"
	"testing"

	"vikibot/internal/recognize"
)

func newTestUpdater(t *testing.T) (*Updater, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir, "Viki")
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return NewUpdater(s, recognize.NewClassifier(nil)), dir
}

func recordExists(dir, userID string) bool {
	_, err := os.Stat(filepath.Join(dir, userID+".json"))
	return err == nil
}

func TestProcessNoMatchPerformsNoWrite(t *testing.T) {
	u, dir := newTestUpdater(t)
	p := u.Process("42", "what a lovely evening")
	if p.HasUserFacts() {
		t.Fatalf("profile should be unchanged: %+v", p)
	}
	if recordExists(dir, "42") {
		t.Fatalf("no write expected for a message with no matches")
	}
}

func TestProcessStoresName(t *testing.T) {
	u, dir := newTestUpdater(t)
	p := u.Process("42", "My name is Ava")
	if p.Name != "Ava" {
		t.Fatalf("expected name Ava, got %q", p.Name)
	}
	if !recordExists(dir, "42") {
		t.Fatalf("profile should have been persisted")
	}
}

func TestProcessAppendDistinct(t *testing.T) {
	u, _ := newTestUpdater(t)
	u.Process("42", "I like pizza")
	p := u.Process("42", "I like hiking")
	if p.Likes != "pizza, hiking" {
		t.Fatalf("expected accumulated likes, got %q", p.Likes)
	}
}

func TestProcessAppendDistinctNoDuplicate(t *testing.T) {
	u, dir := newTestUpdater(t)
	u.Process("42", "I like pizza")

	// Remove the record so a redundant write would be visible.
	if err := os.Remove(filepath.Join(dir, "42.json")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	p := u.Process("42", "I like pizza")
	if p.Likes != "pizza" {
		t.Fatalf("duplicate appended: %q", p.Likes)
	}
	if recordExists(dir, "42") {
		t.Fatalf("no write expected when the value is already present")
	}
}

func TestProcessEmotion(t *testing.T) {
	u, _ := newTestUpdater(t)
	p := u.Process("42", "I am sad and I miss you")
	if p.LastEmotion != "sad" {
		t.Fatalf("expected last_emotion sad, got %q", p.LastEmotion)
	}
	if len(p.EmotionTrend) != 1 || p.EmotionTrend[0] != "sad" {
		t.Fatalf("unexpected trend: %+v", p.EmotionTrend)
	}
}

func TestEmotionTrendBounded(t *testing.T) {
	u, _ := newTestUpdater(t)
	messages := []string{
		"I am so happy", "I feel lonely", "I adore you",
		"I am furious", "hello handsome", "I am so happy", "I feel lonely",
	}
	var p Profile
	for _, m := range messages {
		p = u.Process("42", m)
	}
	if len(p.EmotionTrend) != TrendWindow {
		t.Fatalf("trend length %d, want %d", len(p.EmotionTrend), TrendWindow)
	}
	// Oldest entries discarded: the first two labels are gone.
	if p.EmotionTrend[0] != "love" {
		t.Fatalf("unexpected oldest trend entry: %+v", p.EmotionTrend)
	}
}

func TestProcessOverwritesNonAppendFields(t *testing.T) {
	u, _ := newTestUpdater(t)
	u.Process("42", "I live in Tehran")
	p := u.Process("42", "I live in Berlin")
	if p.Location != "Berlin" {
		t.Fatalf("expected overwrite, got %q", p.Location)
	}
}

func TestProcessMultipleFieldsOneMessage(t *testing.T) {
	u, _ := newTestUpdater(t)
	p := u.Process("42", "my favorite color is blue")
	if p.Value("favorite_color") != "blue" {
		t.Fatalf("derived field missing: %+v", p.Extra)
	}
}
