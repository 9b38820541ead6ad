package recognize

import (
	"testing"
)

func TestExtractName(t *testing.T) {
	facts := ExtractFacts("My name is Ava")
	if len(facts) == 0 {
		t.Fatalf("expected at least one fact")
	}
	found := false
	for _, f := range facts {
		if f.Field == "name" && f.Value == "Ava" {
			found = true
		}
	}
	if !found {
		t.Fatalf("name fact not extracted: %+v", facts)
	}
}

func TestExtractAllMatchingRulesFire(t *testing.T) {
	// A single message can update multiple fields in one pass.
	facts := ExtractFacts("I am 25 years old")
	fields := map[string]string{}
	for _, f := range facts {
		fields[f.Field] = f.Value
	}
	if fields["age"] != "25" {
		t.Fatalf("expected age=25, got %+v", facts)
	}
	if fields["about_me"] != "25 years old" {
		t.Fatalf("expected about_me to fire too, got %+v", facts)
	}
}

func TestExtractDerivedField(t *testing.T) {
	facts := ExtractFacts("my favorite color is red")
	fields := map[string]string{}
	for _, f := range facts {
		fields[f.Field] = f.Value
	}
	if fields["favorite_color"] != "red" {
		t.Fatalf("expected favorite_color=red, got %+v", facts)
	}
}

func TestExtractGenericDerivedField(t *testing.T) {
	facts := ExtractFacts("my secret code is 1234")
	fields := map[string]string{}
	for _, f := range facts {
		fields[f.Field] = f.Value
	}
	if fields["secret_code"] != "1234" {
		t.Fatalf("expected secret_code=1234, got %+v", facts)
	}
}

func TestExtractCaseInsensitiveAndTrimmed(t *testing.T) {
	facts := ExtractFacts("  I LIVE IN Tehran  ")
	fields := map[string]string{}
	for _, f := range facts {
		fields[f.Field] = f.Value
	}
	if fields["location"] != "Tehran" {
		t.Fatalf("expected location=Tehran, got %+v", facts)
	}
}

func TestExtractNoMatchYieldsEmpty(t *testing.T) {
	if facts := ExtractFacts("what a lovely evening"); len(facts) != 0 {
		t.Fatalf("expected no facts, got %+v", facts)
	}
	if facts := ExtractFacts(""); len(facts) != 0 {
		t.Fatalf("expected no facts for empty input, got %+v", facts)
	}
}

func TestNormalizeField(t *testing.T) {
	if got := NormalizeField("  Secret Code "); got != "secret_code" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
