package users

import "sync"

// User is one chat identity the bot has talked to. The chat ID is kept so
// the daily check-in can reach the user outside an inbound update.
type User struct {
	ID        int64  `json:"id"`
	ChatID    int64  `json:"chat_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type Repository interface {
	LoadAll() ([]User, error)
	Upsert(user User) error
	Remove(userID int64) error
}

// Registry keeps the set of seen users in memory, mirroring every change
// into the repository when one is configured. The update loop and the
// check-in scheduler access it from different goroutines.
type Registry struct {
	repo Repository

	mu    sync.RWMutex
	users map[int64]User
}

func NewRegistry(repo Repository) (*Registry, error) {
	r := &Registry{repo: repo, users: make(map[int64]User)}
	if repo != nil {
		all, err := repo.LoadAll()
		if err == nil {
			for _, u := range all {
				r.users[u.ID] = u
			}
		}
	}
	return r, nil
}

// Seen records the user, persisting only when something changed.
func (r *Registry) Seen(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.ID]; ok && existing == user {
		return nil
	}
	r.users[user.ID] = user
	if r.repo != nil {
		return r.repo.Upsert(user)
	}
	return nil
}

func (r *Registry) Remove(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	if r.repo != nil {
		return r.repo.Remove(userID)
	}
	return nil
}

func (r *Registry) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out
}
