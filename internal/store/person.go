package store

import (
	"fmt"
	"slices"
	"strings"

	"calendar-store/internal/auth"
	"calendar-store/internal/model"
)

func (s *Store) InsertPerson(p model.Person, password string) error {
	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentity, p.ID)
	}
	s.persons[p.ID] = p
	s.passwords[p.ID] = hash
	s.log.Debug().Str("userid", p.ID).Msg("insert person")
	return nil
}

// DeletePerson removes the person, their password, their participant bucket
// and their refresh tokens. Appointments the person takes part in keep
// listing them.
func (s *Store) DeletePerson(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	s.byParticipant.drop(id)
	delete(s.persons, id)
	delete(s.passwords, id)
	s.dropTokens(id)
	s.log.Debug().Str("userid", id).Msg("delete person")
	return nil
}

func (s *Store) UpdatePerson(p model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, p.ID)
	}
	s.persons[p.ID] = p
	s.log.Debug().Str("userid", p.ID).Msg("update person")
	return nil
}

func (s *Store) UpdatePassword(id, password string) error {
	if !s.PersonExists(id) {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// deleted while hashing
	if _, ok := s.persons[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	s.passwords[id] = hash
	s.log.Debug().Str("userid", id).Msg("update password")
	return nil
}

// RenamePerson moves the person stored under oldID to p.ID, password
// included. Appointment indices still refer to oldID afterwards.
func (s *Store) RenamePerson(p model.Person, oldID string) error {
	if p.ID == oldID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[oldID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, oldID)
	}
	if _, ok := s.persons[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentity, p.ID)
	}

	delete(s.persons, oldID)
	s.persons[p.ID] = p
	s.passwords[p.ID] = s.passwords[oldID]
	delete(s.passwords, oldID)
	s.dropTokens(oldID)
	s.log.Debug().Str("userid", p.ID).Str("old_userid", oldID).Msg("rename person")
	return nil
}

func (s *Store) Authenticate(id, password string) (*model.Person, error) {
	s.mu.RLock()
	p, ok := s.persons[id]
	hash := s.passwords[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	if !auth.CheckPassword(hash, password) {
		return nil, ErrBadCredentials
	}
	return &p, nil
}

func (s *Store) PersonExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.persons[id]
	return ok
}

func (s *Store) FindPerson(id string) (*model.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.persons[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	return &p, nil
}

// Persons lists every registered person ordered by userid.
func (s *Store) Persons() []model.Person {
	s.mu.RLock()
	out := make([]model.Person, 0, len(s.persons))
	for _, p := range s.persons {
		out = append(out, p)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b model.Person) int { return strings.Compare(a.ID, b.ID) })
	return out
}
