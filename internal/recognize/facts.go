package recognize

import (
	"regexp"
	"strings"
)

// Fact is a single (field, value) update extracted from user text.
// Field names are already normalized (lowercase, underscores).
type Fact struct {
	Field string
	Value string
}

// Rule matches a statement pattern and maps it to a profile field.
// An empty Field derives the field name from the first capture group,
// with Prefix prepended ("favorite color is red" -> favorite_color).
type Rule struct {
	Pattern *regexp.Regexp
	Field   string
	Prefix  string
}

// DefaultRules is evaluated in order and every matching rule fires, so a
// single message may update several fields at once. Position in the slice
// is the only priority.
var DefaultRules = []Rule{
	{Pattern: regexp.MustCompile(`(?i)\b(?:my name is|i am called|call me) (.+)$`), Field: "name"},
	{Pattern: regexp.MustCompile(`(?i)\b(?:i live in|i am from|i'm from|located in) (.+)$`), Field: "location"},
	{Pattern: regexp.MustCompile(`(?i)\b(?:i am|i'm|i turned) (\d+) years? old\b`), Field: "age"},
	{Pattern: regexp.MustCompile(`(?i)^i love (.+)$`), Field: "loves"},
	{Pattern: regexp.MustCompile(`(?i)^i (?:hate|dislike) (.+)$`), Field: "hates"},
	{Pattern: regexp.MustCompile(`(?i)^i (?:like|enjoy) (.+)$`), Field: "likes"},
	{Pattern: regexp.MustCompile(`(?i)^i play (.+)$`), Field: "hobbies"},
	{Pattern: regexp.MustCompile(`(?i)\b(?:favorite|favourite) ([a-zA-Z ]+?) is (.+)$`), Prefix: "favorite_"},
	{Pattern: regexp.MustCompile(`(?i)^my ([a-zA-Z][a-zA-Z ]*) is (.+)$`)},
	{Pattern: regexp.MustCompile(`(?i)^(?:i am|i'm) (.+)$`), Field: "about_me"},
}

// ExtractFacts runs DefaultRules against the message text.
func ExtractFacts(text string) []Fact {
	return Extract(text, DefaultRules)
}

// Extract evaluates the rules in order against the trimmed message text.
// No match is not an error; it yields an empty set.
func Extract(text string, rules []Rule) []Fact {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var facts []Fact
	for _, r := range rules {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if r.Field != "" {
			v := strings.TrimSpace(m[1])
			if v != "" {
				facts = append(facts, Fact{Field: r.Field, Value: v})
			}
			continue
		}
		field := NormalizeField(m[1])
		value := strings.TrimSpace(m[2])
		if field == "" || value == "" {
			continue
		}
		facts = append(facts, Fact{Field: r.Prefix + field, Value: value})
	}
	return facts
}

// NormalizeField lowercases a field name and replaces spaces with underscores.
func NormalizeField(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}
