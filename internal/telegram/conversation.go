package telegram

import "sync"

// Onboarding walks new users through name, age, and location with simple
// linear state stepping, one state per chat.
type convoState int

const (
	stateNone convoState = iota
	stateGetName
	stateGetAge
	stateGetLocation
)

type conversations struct {
	mu     sync.RWMutex
	states map[int64]convoState
}

func newConversations() *conversations {
	return &conversations{states: make(map[int64]convoState)}
}

func (c *conversations) get(userID int64) convoState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[userID]
}

func (c *conversations) set(userID int64, s convoState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s == stateNone {
		delete(c.states, userID)
		return
	}
	c.states[userID] = s
}
