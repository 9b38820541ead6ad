package memory

import (
	"strconv"
	"strings"
	"time"
)

// TrendWindow bounds the rolling emotion log to the most recent entries.
const TrendWindow = 5

// Field is one extra profile entry outside the known schema,
// kept in insertion order.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Profile is the persisted per-user fact record. Known fields are typed;
// anything derived from an open-ended recognizer ("my goal is ...") lands
// in Extra. Field names are normalized before they reach the profile.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Age      int    `json:"age,omitempty"`
	Location string `json:"location,omitempty"`
	AboutMe  string `json:"about_me,omitempty"`
	Likes    string `json:"likes,omitempty"`
	Hobbies  string `json:"hobbies,omitempty"`
	Loves    string `json:"loves,omitempty"`
	Hates    string `json:"hates,omitempty"`

	Extra []Field `json:"extra,omitempty"`

	RelationshipStatus string    `json:"relationship_status"`
	CreatedAt          time.Time `json:"created_at"`

	LastEmotion  string   `json:"last_emotion,omitempty"`
	EmotionTrend []string `json:"emotion_trend,omitempty"`
}

// NewProfile returns the default record created on first access.
func NewProfile(nickname string) Profile {
	return Profile{
		RelationshipStatus: "in a loving relationship with " + nickname,
		CreatedAt:          time.Now(),
	}
}

// Value returns the current value of a normalized field name, or "" if unset.
func (p *Profile) Value(field string) string {
	switch field {
	case "name":
		return p.Name
	case "age":
		if p.Age == 0 {
			return ""
		}
		return strconv.Itoa(p.Age)
	case "location":
		return p.Location
	case "about_me":
		return p.AboutMe
	case "likes":
		return p.Likes
	case "hobbies":
		return p.Hobbies
	case "loves":
		return p.Loves
	case "hates":
		return p.Hates
	case "relationship_status":
		return p.RelationshipStatus
	case "last_emotion":
		return p.LastEmotion
	case "emotion_trend":
		return strings.Join(p.EmotionTrend, ", ")
	}
	for _, f := range p.Extra {
		if f.Key == field {
			return f.Value
		}
	}
	return ""
}

// Set overwrites a field and reports whether the profile changed.
// Empty values are ignored: a set field is never silently cleared.
func (p *Profile) Set(field, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	switch field {
	case "name":
		return setString(&p.Name, value)
	case "age":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return false
		}
		if p.Age == n {
			return false
		}
		p.Age = n
		return true
	case "location":
		return setString(&p.Location, value)
	case "about_me":
		return setString(&p.AboutMe, value)
	case "likes":
		return setString(&p.Likes, value)
	case "hobbies":
		return setString(&p.Hobbies, value)
	case "loves":
		return setString(&p.Loves, value)
	case "hates":
		return setString(&p.Hates, value)
	case "relationship_status":
		return setString(&p.RelationshipStatus, value)
	}
	for i := range p.Extra {
		if p.Extra[i].Key == field {
			if p.Extra[i].Value == value {
				return false
			}
			p.Extra[i].Value = value
			return true
		}
	}
	p.Extra = append(p.Extra, Field{Key: field, Value: value})
	return true
}

func setString(dst *string, value string) bool {
	if *dst == value {
		return false
	}
	*dst = value
	return true
}

// RecordEmotion sets the last emotion and appends it to the trend,
// discarding entries older than the window.
func (p *Profile) RecordEmotion(label string) {
	p.LastEmotion = label
	p.EmotionTrend = append(p.EmotionTrend, label)
	if len(p.EmotionTrend) > TrendWindow {
		p.EmotionTrend = p.EmotionTrend[len(p.EmotionTrend)-TrendWindow:]
	}
}

// HasUserFacts reports whether anything beyond the bookkeeping defaults
// has been learned about the user.
func (p *Profile) HasUserFacts() bool {
	return p.Name != "" || p.Age != 0 || p.Location != "" || p.AboutMe != "" ||
		p.Likes != "" || p.Hobbies != "" || p.Loves != "" || p.Hates != "" ||
		len(p.Extra) > 0 || p.LastEmotion != "" || len(p.EmotionTrend) > 0
}

// Fields returns every non-empty field in rendering order: identity facts
// in schema order, extras in insertion order, bookkeeping and mood last.
func (p *Profile) Fields() []Field {
	var out []Field
	add := func(key, value string) {
		if value != "" {
			out = append(out, Field{Key: key, Value: value})
		}
	}
	add("name", p.Name)
	add("age", p.Value("age"))
	add("location", p.Location)
	add("about_me", p.AboutMe)
	add("likes", p.Likes)
	add("hobbies", p.Hobbies)
	add("loves", p.Loves)
	add("hates", p.Hates)
	for _, f := range p.Extra {
		add(f.Key, f.Value)
	}
	add("relationship_status", p.RelationshipStatus)
	add("last_emotion", p.LastEmotion)
	add("emotion_trend", strings.Join(p.EmotionTrend, ", "))
	return out
}
