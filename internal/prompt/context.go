package prompt

import (
	"strings"

	"vikibot/internal/memory"
)

// NoInfoSentence is returned for a profile with no user-set fields.
const NoInfoSentence = "No personal information stored yet."

var labels = map[string]string{
	"name":                "Name",
	"age":                 "Age",
	"location":            "Location",
	"about_me":            "About Me",
	"likes":               "Likes",
	"hobbies":             "Hobbies",
	"loves":               "Loves",
	"hates":               "Dislikes",
	"favorite_color":      "Favorite Color",
	"favorite_food":       "Favorite Food",
	"favorite_song":       "Favorite Song",
	"favorite_movie":      "Favorite Movie",
	"last_emotion":        "Current Mood",
	"emotion_trend":       "Recent Mood Trend",
	"relationship_status": "Relationship Status",
}

// RenderContext formats a profile into the labeled text block included in
// the prompt, one line per non-empty field in the profile's own field
// order. Unknown field names get a title-cased fallback label.
func RenderContext(p memory.Profile) string {
	if !p.HasUserFacts() {
		return NoInfoSentence
	}
	var lines []string
	for _, f := range p.Fields() {
		lines = append(lines, labelFor(f.Key)+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

func labelFor(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	words := strings.Split(strings.ReplaceAll(field, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
