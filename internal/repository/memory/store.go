// Package memory is the fallback persistence mode used when no Postgres
// connection is configured or reachable. It implements the repository
// interfaces over in-process maps, so the domain layer issues the same typed
// operations in both modes. Best effort only: there are no real transactions
// and no referential integrity enforcement.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	users         map[uuid.UUID]domain.User
	celebrities   map[uuid.UUID]domain.Celebrity
	appointments  map[uuid.UUID]domain.Appointment
	messages      map[uuid.UUID]domain.Message
	notifications map[uuid.UUID]domain.Notification
	sessions      map[uuid.UUID]repository.Session

	// Insertion order, used as a tiebreaker when timestamps collide.
	seq   uint64
	seqOf map[uuid.UUID]uint64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]domain.User),
		celebrities:   make(map[uuid.UUID]domain.Celebrity),
		appointments:  make(map[uuid.UUID]domain.Appointment),
		messages:      make(map[uuid.UUID]domain.Message),
		notifications: make(map[uuid.UUID]domain.Notification),
		sessions:      make(map[uuid.UUID]repository.Session),
		seqOf:         make(map[uuid.UUID]uint64),
	}
}

// NewRepositories wires every repository interface to a single shared store.
func NewRepositories() *repository.Repositories {
	s := NewStore()
	return &repository.Repositories{
		User:         &userRepository{s},
		Celebrity:    &celebrityRepository{s},
		Appointment:  &appointmentRepository{s},
		Message:      &messageRepository{s},
		Notification: &notificationRepository{s},
		Session:      &sessionRepository{s},
	}
}

// nextSeq must be called with the write lock held.
func (s *Store) nextSeq(id uuid.UUID) {
	s.seq++
	s.seqOf[id] = s.seq
}

func (s *Store) seqFor(id uuid.UUID) uint64 {
	return s.seqOf[id]
}
