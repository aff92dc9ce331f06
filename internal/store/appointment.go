package store

import (
	"cmp"
	"fmt"
	"slices"

	"calendar-store/internal/model"
)

// InsertAppointment files a under its id, its begin day and each of its
// participants. An id of 0 is replaced by the next free id, which is written
// back into a. Every participant must be registered; nothing is changed
// when one is not. Inserting an id that is already stored replaces the old
// appointment together with its index entries.
func (s *Store) InsertAppointment(a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pid := range a.ParticipantIDs {
		if _, ok := s.persons[pid]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownParticipant, pid)
		}
	}

	if a.ID == 0 {
		a.ID = s.nextID()
	}
	if old, ok := s.appointments[a.ID]; ok {
		s.unfile(old)
	}

	stored := a.Clone()
	s.byDay.add(stored.Day(), stored.ID)
	for _, pid := range stored.ParticipantIDs {
		s.byParticipant.add(pid, stored.ID)
	}
	s.appointments[stored.ID] = stored

	s.log.Debug().
		Int("id", stored.ID).
		Str("day", stored.Day().String()).
		Strs("participants", stored.ParticipantIDs).
		Msg("insert appointment")
	return nil
}

// max+1, or 1 on an empty store
func (s *Store) nextID() int {
	next := 1
	for id := range s.appointments {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// DeleteAppointment removes the appointment from the table and both indices.
// Deleting an unknown id does nothing; the result reports whether anything
// was removed.
func (s *Store) DeleteAppointment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// not found is not an error here
	if err := s.deleteAppointment(id); err != nil {
		return false
	}
	s.log.Debug().Int("id", id).Msg("delete appointment")
	return true
}

func (s *Store) deleteAppointment(id int) error {
	a, ok := s.appointments[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAppointmentNotFound, id)
	}
	s.unfile(a)
	delete(s.appointments, id)
	return nil
}

// unfile drops a from both indices, leaving the table alone.
func (s *Store) unfile(a model.Appointment) {
	for _, pid := range a.ParticipantIDs {
		s.byParticipant.remove(pid, a.ID)
	}
	s.byDay.remove(a.Day(), a.ID)
}

func (s *Store) Appointment(id int) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAppointmentNotFound, id)
	}
	a = a.Clone()
	return &a, nil
}

// TODO: re-file the appointment when its begin day or participants change.
func (s *Store) UpdateAppointment(a *model.Appointment) error {
	return ErrNotImplemented
}

// AppointmentsOn returns the appointments beginning on day that personID does
// not take part in.
func (s *Store) AppointmentsOn(day model.Day, personID string) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.persons[personID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, personID)
	}
	return s.collect(s.byDay.ids(day), personID), nil
}

// AppointmentsBetween is AppointmentsOn for every day in [from, to). The end
// day is not included.
func (s *Store) AppointmentsBetween(from, to model.Day, personID string) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.persons[personID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, personID)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidRange, from, to)
	}

	var ids []int
	if to.DaysSince(from) > len(s.byDay) {
		// fewer buckets than days in the range
		for d, b := range s.byDay {
			if !d.Before(from) && d.Before(to) {
				for id := range b {
					ids = append(ids, id)
				}
			}
		}
	} else {
		for d := from; d.Before(to); d = d.AddDays(1) {
			ids = append(ids, s.byDay.ids(d)...)
		}
	}
	return s.collect(ids, personID), nil
}

func (s *Store) collect(ids []int, excluded string) []model.Appointment {
	out := make([]model.Appointment, 0, len(ids))
	for _, id := range ids {
		if s.byParticipant.has(excluded, id) {
			continue
		}
		out = append(out, s.appointments[id].Clone())
	}
	slices.SortFunc(out, func(a, b model.Appointment) int {
		if c := a.Begin.Compare(b.Begin); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func (s *Store) AppointmentsOnFor(day model.Day, personIDs []string) ([]model.Appointment, error) {
	return nil, ErrNotImplemented
}

func (s *Store) AppointmentsBetweenFor(from, to model.Day, personIDs []string) ([]model.Appointment, error) {
	return nil, ErrNotImplemented
}

func (s *Store) OwnerAppointmentsOn(day model.Day, ownerID string) ([]model.Appointment, error) {
	return nil, ErrNotImplemented
}

func (s *Store) OwnerAppointmentsBetween(from, to model.Day, ownerID string) ([]model.Appointment, error) {
	return nil, ErrNotImplemented
}

func (s *Store) IsPersonAvailable(from, to model.Day, personID string) (bool, error) {
	return false, ErrNotImplemented
}
