// Package store keeps persons, appointments and session tokens in memory.
//
// Appointments are filed three ways: by id, by participant and by the day
// they begin on. Store is the only code that touches any of those maps, and
// every exported method holds the store lock for its whole duration, so a
// mutation is seen by readers either completely or not at all.
package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"calendar-store/internal/model"
)

type Store struct {
	mu       sync.RWMutex
	log      zerolog.Logger
	hashCost int
	now      func() time.Time

	persons   map[string]model.Person
	passwords map[string]string

	appointments  map[int]model.Appointment
	byParticipant index[string]
	byDay         index[model.Day]

	tokens map[string]*RefreshToken // by token hash
}

type Option func(*Store)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l.With().Str("component", "store").Logger() }
}

// WithHashCost sets the bcrypt cost used for stored passwords.
func WithHashCost(cost int) Option {
	return func(s *Store) { s.hashCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store. Call Seed for the demo baseline.
func New(opts ...Option) *Store {
	s := &Store{
		log:           zerolog.Nop(),
		now:           time.Now,
		persons:       make(map[string]model.Person),
		passwords:     make(map[string]string),
		appointments:  make(map[int]model.Appointment),
		byParticipant: make(index[string]),
		byDay:         make(index[model.Day]),
		tokens:        make(map[string]*RefreshToken),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
