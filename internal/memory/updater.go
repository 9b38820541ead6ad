package memory

import (
	"log"
	"strings"

	"vikibot/internal/recognize"
)

// Fields that accumulate values over time instead of being overwritten.
var appendDistinct = map[string]bool{
	"likes":   true,
	"hobbies": true,
	"loves":   true,
	"hates":   true,
}

// Updater merges recognizer output into stored profiles.
type Updater struct {
	store      *Store
	classifier *recognize.Classifier
	rules      []recognize.Rule
}

func NewUpdater(store *Store, classifier *recognize.Classifier) *Updater {
	return &Updater{
		store:      store,
		classifier: classifier,
		rules:      recognize.DefaultRules,
	}
}

// Process loads the user's profile, applies every extracted fact and the
// detected emotion, and persists the record only when something changed.
// Returns the (possibly unchanged) profile.
func (u *Updater) Process(userID, text string) Profile {
	p := u.store.Load(userID)
	changed := false

	for _, fact := range recognize.Extract(text, u.rules) {
		if u.apply(&p, fact) {
			changed = true
		}
	}

	if label := u.classifier.Classify(text); label != "" {
		p.RecordEmotion(label)
		changed = true
	}

	if changed {
		if err := u.store.Save(userID, p); err != nil {
			log.Printf("failed to save profile for %s: %v", userID, err)
		}
	}
	return p
}

// apply performs the per-field merge: append-distinct fields concatenate
// new values with ", " unless the value is already present as a substring;
// everything else is overwritten.
func (u *Updater) apply(p *Profile, fact recognize.Fact) bool {
	if appendDistinct[fact.Field] {
		existing := p.Value(fact.Field)
		if existing != "" {
			if strings.Contains(existing, fact.Value) {
				return false
			}
			return p.Set(fact.Field, existing+", "+fact.Value)
		}
	}
	return p.Set(fact.Field, fact.Value)
}
