package recognize

import (
	"regexp"
)

// EmotionRule ties a label from the fixed vocabulary to a keyword pattern.
type EmotionRule struct {
	Label   string
	Pattern *regexp.Regexp
}

// Keyword sets per label. Several keywords overlap across labels
// ("miss you" is both sad and love, "hate" is both angry and a dislike),
// which is why classification order matters.
var emotionPatterns = map[string]*regexp.Regexp{
	"sad":    regexp.MustCompile(`(?i)\b(sad|depressed|lonely|cry|miss you)\b`),
	"happy":  regexp.MustCompile(`(?i)\b(happy|joy|excited|great|amazing)\b`),
	"love":   regexp.MustCompile(`(?i)\b(love|adore|cherish|miss you|want you)\b`),
	"angry":  regexp.MustCompile(`(?i)\b(angry|mad|furious|hate|annoyed)\b`),
	"flirty": regexp.MustCompile(`(?i)\b(sexy|hot|handsome|beautiful|babe|cutie)\b`),
}

// DefaultEmotionPriority is the classification order when none is configured.
var DefaultEmotionPriority = []string{"sad", "happy", "love", "angry", "flirty"}

// Classifier resolves a message to at most one emotion label.
// First matching rule wins; list order is the tie-break, not a score.
type Classifier struct {
	rules []EmotionRule
}

// NewClassifier builds a classifier evaluating labels in the given priority
// order. Unknown labels are skipped; an empty priority uses the default order.
func NewClassifier(priority []string) *Classifier {
	if len(priority) == 0 {
		priority = DefaultEmotionPriority
	}
	var rules []EmotionRule
	for _, label := range priority {
		if p, ok := emotionPatterns[label]; ok {
			rules = append(rules, EmotionRule{Label: label, Pattern: p})
		}
	}
	return &Classifier{rules: rules}
}

// Classify returns the first matching label, or "" when none match.
func (c *Classifier) Classify(text string) string {
	for _, r := range c.rules {
		if r.Pattern.MatchString(text) {
			return r.Label
		}
	}
	return ""
}
