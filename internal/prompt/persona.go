package prompt

import (
	"log"
	"math/rand"
	"time"
)

// Persona holds the fixed identity the backend is asked to assume.
type Persona struct {
	Name     string
	Nickname string
	Role     string
	Language string
	Location *time.Location
}

// NewPersona resolves the timezone name; an unknown zone falls back to UTC.
func NewPersona(name, nickname, role, language, timezone string) Persona {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("unknown timezone %q, using UTC: %v", timezone, err)
		loc = time.UTC
	}
	return Persona{Name: name, Nickname: nickname, Role: role, Language: language, Location: loc}
}

var petNames = []string{
	"my love", "sweetheart", "darling",
	"baby", "honey", "angel", "beloved",
}

// PetName returns a random affectionate form of address, used when the
// user's name is not known yet.
func (p Persona) PetName() string {
	return petNames[rand.Intn(len(petNames))]
}

// CallUser returns the stored name when known, otherwise a pet name.
func (p Persona) CallUser(name string) string {
	if name != "" {
		return name
	}
	return p.PetName()
}
