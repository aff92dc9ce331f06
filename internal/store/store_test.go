package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"calendar-store/internal/model"
)

func newStore(t *testing.T, ids ...string) *Store {
	t.Helper()
	s := New(WithHashCost(bcrypt.MinCost))
	for _, id := range ids {
		require.NoError(t, s.InsertPerson(model.Person{ID: id, LastName: id}, "pw-"+id))
	}
	return s
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func appt(begin time.Time, participants ...string) *model.Appointment {
	return &model.Appointment{
		Title:          "appt",
		Begin:          begin,
		End:            begin.Add(time.Hour),
		ParticipantIDs: participants,
	}
}

func insert(t *testing.T, s *Store, a *model.Appointment) int {
	t.Helper()
	require.NoError(t, s.InsertAppointment(a))
	return a.ID
}

// assertConsistent checks that the table and both indices describe the same
// set of appointments.
func assertConsistent(t *testing.T, s *Store) {
	t.Helper()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, a := range s.appointments {
		assert.Equal(t, id, a.ID)

		days := 0
		for d, b := range s.byDay {
			if _, ok := b[id]; ok {
				days++
				assert.Equal(t, a.Day(), d, "appointment %d filed under wrong day", id)
			}
		}
		assert.Equal(t, 1, days, "appointment %d day buckets", id)

		for pid, b := range s.byParticipant {
			if _, ok := b[id]; ok {
				assert.Contains(t, a.ParticipantIDs, pid, "appointment %d in foreign bucket", id)
			}
		}
		for _, pid := range a.ParticipantIDs {
			if _, ok := s.persons[pid]; ok {
				assert.True(t, s.byParticipant.has(pid, id), "appointment %d missing from %s", id, pid)
			}
		}
	}

	for d, b := range s.byDay {
		assert.NotEmpty(t, b, "empty day bucket %s", d)
		for id := range b {
			assert.Contains(t, s.appointments, id, "day %s holds unknown id %d", d, id)
		}
	}
	for pid, b := range s.byParticipant {
		assert.NotEmpty(t, b, "empty participant bucket %s", pid)
		for id := range b {
			assert.Contains(t, s.appointments, id, "participant %s holds unknown id %d", pid, id)
		}
	}
	assert.Len(t, s.passwords, len(s.persons))
}

func ids(as []model.Appointment) []int {
	out := make([]int, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

// ----- identity registry -----

func TestInsertPersonDuplicate(t *testing.T) {
	s := newStore(t, "ADM")

	err := s.InsertPerson(model.Person{ID: "ADM", FirstName: "Other"}, "x")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	p, err := s.FindPerson("ADM")
	require.NoError(t, err)
	assert.Equal(t, "", p.FirstName)
}

func TestUseridsAreCaseSensitive(t *testing.T) {
	s := newStore(t, "ADM")
	require.NoError(t, s.InsertPerson(model.Person{ID: "adm"}, "x"))
	assert.True(t, s.PersonExists("adm"))
	assert.True(t, s.PersonExists("ADM"))
	assert.False(t, s.PersonExists("Adm"))
}

func TestAuthenticate(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.InsertPerson(model.Person{ID: "ADM", FirstName: "System", LastName: "Admin"}, "admin"))

	p, err := s.Authenticate("ADM", "admin")
	require.NoError(t, err)
	assert.Equal(t, "System Admin", p.Name())

	_, err = s.Authenticate("ADM", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Authenticate("XXX", "admin")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestUpdatePerson(t *testing.T) {
	s := newStore(t, "ADM")

	require.NoError(t, s.UpdatePerson(model.Person{ID: "ADM", FirstName: "New"}))
	p, err := s.FindPerson("ADM")
	require.NoError(t, err)
	assert.Equal(t, "New", p.FirstName)

	// password untouched
	_, err = s.Authenticate("ADM", "pw-ADM")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.UpdatePerson(model.Person{ID: "XXX"}), ErrUnknownIdentity)
}

func TestUpdatePassword(t *testing.T) {
	s := newStore(t, "ADM")

	require.NoError(t, s.UpdatePassword("ADM", "secret"))
	_, err := s.Authenticate("ADM", "pw-ADM")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = s.Authenticate("ADM", "secret")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.UpdatePassword("XXX", "secret"), ErrUnknownIdentity)
}

func TestRenamePerson(t *testing.T) {
	s := newStore(t, "ADM", "BOB")

	t.Run("same id is a no-op", func(t *testing.T) {
		require.NoError(t, s.RenamePerson(model.Person{ID: "ADM", FirstName: "ignored"}, "ADM"))
		p, err := s.FindPerson("ADM")
		require.NoError(t, err)
		assert.Equal(t, "", p.FirstName)
	})

	t.Run("taken id", func(t *testing.T) {
		err := s.RenamePerson(model.Person{ID: "BOB"}, "ADM")
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
		assert.True(t, s.PersonExists("ADM"))
	})

	t.Run("unknown old id", func(t *testing.T) {
		err := s.RenamePerson(model.Person{ID: "NEW"}, "XXX")
		assert.ErrorIs(t, err, ErrUnknownIdentity)
	})

	t.Run("moves person and password", func(t *testing.T) {
		require.NoError(t, s.RenamePerson(model.Person{ID: "ROOT", FirstName: "Root"}, "ADM"))
		assert.False(t, s.PersonExists("ADM"))

		p, err := s.Authenticate("ROOT", "pw-ADM")
		require.NoError(t, err)
		assert.Equal(t, "Root", p.FirstName)
		assertConsistent(t, s)
	})
}

func TestRenameKeepsAppointmentIndices(t *testing.T) {
	s := newStore(t, "ADM")
	id := insert(t, s, appt(at(2026, 5, 4, 9), "ADM"))

	require.NoError(t, s.RenamePerson(model.Person{ID: "ROOT"}, "ADM"))

	s.mu.RLock()
	assert.True(t, s.byParticipant.has("ADM", id))
	assert.False(t, s.byParticipant.has("ROOT", id))
	s.mu.RUnlock()
}

func TestDeletePerson(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	id := insert(t, s, appt(at(2026, 5, 4, 9), "ADM", "BOB"))

	require.NoError(t, s.DeletePerson("BOB"))
	assert.False(t, s.PersonExists("BOB"))
	assert.ErrorIs(t, s.DeletePerson("BOB"), ErrUnknownIdentity)

	// the appointment still lists BOB, only his bucket is gone
	a, err := s.Appointment(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADM", "BOB"}, a.ParticipantIDs)

	s.mu.RLock()
	assert.NotContains(t, s.byParticipant, "BOB")
	assert.True(t, s.byParticipant.has("ADM", id))
	s.mu.RUnlock()
	assertConsistent(t, s)
}

func TestPersonsOrdered(t *testing.T) {
	s := newStore(t, "CAR", "ADM", "BOB")

	var got []string
	for _, p := range s.Persons() {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"ADM", "BOB", "CAR"}, got)
}

// ----- appointments -----

func TestIDAssignment(t *testing.T) {
	t.Run("empty store starts at 1", func(t *testing.T) {
		s := newStore(t)
		assert.Equal(t, 1, insert(t, s, appt(at(2026, 5, 4, 9))))
		assert.Equal(t, 2, insert(t, s, appt(at(2026, 5, 4, 10))))
	})

	t.Run("max plus one", func(t *testing.T) {
		s := newStore(t)
		for _, id := range []int{3, 7, 9} {
			a := appt(at(2026, 5, 4, 9))
			a.ID = id
			insert(t, s, a)
		}
		assert.Equal(t, 10, insert(t, s, appt(at(2026, 5, 5, 9))))
	})
}

func TestInsertFilesAppointment(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	begin := at(2026, 5, 4, 9)
	a := appt(begin, "ADM", "BOB")
	a.OwnerID = "ADM"
	id := insert(t, s, a)

	got, err := s.Appointment(id)
	require.NoError(t, err)
	assert.Equal(t, *a, *got)

	s.mu.RLock()
	assert.True(t, s.byDay.has(model.DayOf(begin), id))
	assert.True(t, s.byParticipant.has("ADM", id))
	assert.True(t, s.byParticipant.has("BOB", id))
	s.mu.RUnlock()
	assertConsistent(t, s)

	// the caller's slice is not shared with the store
	a.ParticipantIDs[0] = "XXX"
	got, err = s.Appointment(id)
	require.NoError(t, err)
	assert.Equal(t, "ADM", got.ParticipantIDs[0])
}

func TestInsertUnknownParticipant(t *testing.T) {
	s := newStore(t, "ADM")
	insert(t, s, appt(at(2026, 5, 4, 9), "ADM"))

	s.mu.RLock()
	days := fmt.Sprint(s.byDay)
	people := fmt.Sprint(s.byParticipant)
	s.mu.RUnlock()

	a := appt(at(2026, 5, 6, 9), "ADM", "XXX")
	err := s.InsertAppointment(a)
	assert.ErrorIs(t, err, ErrUnknownParticipant)
	assert.ErrorIs(t, err, ErrUnknownIdentity)
	assert.Equal(t, 0, a.ID)

	s.mu.RLock()
	assert.Equal(t, days, fmt.Sprint(s.byDay))
	assert.Equal(t, people, fmt.Sprint(s.byParticipant))
	assert.Len(t, s.appointments, 1)
	s.mu.RUnlock()
	assertConsistent(t, s)
}

func TestReinsertDoesNotDuplicate(t *testing.T) {
	s := newStore(t, "ADM")
	a := appt(at(2026, 5, 4, 9), "ADM", "ADM")
	id := insert(t, s, a)
	insert(t, s, a)
	insert(t, s, a)

	s.mu.RLock()
	assert.Len(t, s.byDay[model.DayOf(a.Begin)], 1)
	assert.Len(t, s.byParticipant["ADM"], 1)
	assert.Len(t, s.appointments, 1)
	s.mu.RUnlock()
	assert.Equal(t, 1, id)
	assertConsistent(t, s)
}

func TestReinsertMovesIndexEntries(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	a := appt(at(2026, 5, 4, 9), "ADM")
	id := insert(t, s, a)

	moved := appt(at(2026, 5, 8, 9), "BOB")
	moved.ID = id
	insert(t, s, moved)

	s.mu.RLock()
	assert.NotContains(t, s.byDay, model.DayOf(a.Begin))
	assert.NotContains(t, s.byParticipant, "ADM")
	assert.True(t, s.byDay.has(model.DayOf(moved.Begin), id))
	assert.True(t, s.byParticipant.has("BOB", id))
	s.mu.RUnlock()
	assertConsistent(t, s)
}

func TestDeleteAppointment(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	keep := insert(t, s, appt(at(2026, 5, 4, 9), "ADM"))
	gone := insert(t, s, appt(at(2026, 5, 4, 11), "ADM", "BOB"))

	assert.True(t, s.DeleteAppointment(gone))

	_, err := s.Appointment(gone)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	s.mu.RLock()
	for d, b := range s.byDay {
		assert.NotContains(t, b, gone, "day %s", d)
	}
	for pid, b := range s.byParticipant {
		assert.NotContains(t, b, gone, "participant %s", pid)
	}
	// BOB's bucket emptied and pruned
	assert.NotContains(t, s.byParticipant, "BOB")
	assert.True(t, s.byParticipant.has("ADM", keep))
	s.mu.RUnlock()
	assertConsistent(t, s)

	assert.False(t, s.DeleteAppointment(gone))
	assert.False(t, s.DeleteAppointment(999))

	assert.True(t, s.DeleteAppointment(keep))
	s.mu.RLock()
	assert.Empty(t, s.byDay)
	assert.Empty(t, s.byParticipant)
	s.mu.RUnlock()
}

func TestAppointmentsOn(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	day := at(2026, 5, 4, 0)
	mine := insert(t, s, appt(day.Add(9*time.Hour), "ADM"))
	late := insert(t, s, appt(day.Add(15*time.Hour), "BOB"))
	early := insert(t, s, appt(day.Add(8*time.Hour)))
	insert(t, s, appt(day.Add(33*time.Hour), "BOB"))

	got, err := s.AppointmentsOn(model.DayOf(day), "ADM")
	require.NoError(t, err)
	assert.Equal(t, []int{early, late}, ids(got))

	got, err = s.AppointmentsOn(model.DayOf(day), "BOB")
	require.NoError(t, err)
	assert.Equal(t, []int{early, mine}, ids(got))

	got, err = s.AppointmentsOn(model.DayOf(day).AddDays(-1), "ADM")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.AppointmentsOn(model.DayOf(day), "XXX")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestAppointmentsBetweenHalfOpen(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	d1 := insert(t, s, appt(at(2026, 5, 1, 9), "BOB"))
	d2 := insert(t, s, appt(at(2026, 5, 2, 9), "BOB"))
	insert(t, s, appt(at(2026, 5, 3, 9), "BOB"))

	from, to := model.DayOf(at(2026, 5, 1, 0)), model.DayOf(at(2026, 5, 3, 0))

	got, err := s.AppointmentsBetween(from, to, "ADM")
	require.NoError(t, err)
	assert.Equal(t, []int{d1, d2}, ids(got))

	got, err = s.AppointmentsBetween(from, to, "BOB")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.AppointmentsBetween(from, from, "ADM")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppointmentsBetweenErrors(t *testing.T) {
	s := newStore(t, "ADM")
	from, to := model.DayOf(at(2026, 5, 3, 0)), model.DayOf(at(2026, 5, 1, 0))

	_, err := s.AppointmentsBetween(from, to, "ADM")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.AppointmentsBetween(to, from, "XXX")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestAppointmentsBetweenAcrossMonth(t *testing.T) {
	s := newStore(t, "ADM")
	insert(t, s, appt(at(2026, 1, 31, 9)))
	insert(t, s, appt(at(2026, 2, 1, 9)))
	insert(t, s, appt(at(2026, 2, 2, 9)))

	got, err := s.AppointmentsBetween(model.DayOf(at(2026, 1, 30, 0)), model.DayOf(at(2026, 2, 2, 0)), "ADM")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestAppointmentsBetweenWideRange(t *testing.T) {
	s := newStore(t, "ADM", "BOB")
	first := insert(t, s, appt(at(2026, 5, 1, 9)))
	second := insert(t, s, appt(at(2026, 6, 15, 9)))
	insert(t, s, appt(at(2026, 6, 15, 11), "BOB"))
	last := insert(t, s, appt(at(2027, 1, 1, 9)))

	got, err := s.AppointmentsBetween(model.DayOf(at(2026, 5, 1, 0)), model.DayOf(at(2027, 1, 1, 0)), "BOB")
	require.NoError(t, err)
	assert.Equal(t, []int{first, second}, ids(got))

	all, err := s.AppointmentsBetween(model.Day{Year: 1, Month: time.January, Day: 1}, model.Day{Year: 9999, Month: time.December, Day: 31}, "BOB")
	require.NoError(t, err)
	assert.Equal(t, []int{first, second, last}, ids(all))
}

func TestReservedOperations(t *testing.T) {
	s := newStore(t, "ADM")
	day := model.DayOf(at(2026, 5, 1, 0))

	tests := []struct {
		name string
		call func() error
	}{
		{"update", func() error { return s.UpdateAppointment(appt(at(2026, 5, 1, 9))) }},
		{"on for set", func() error { _, err := s.AppointmentsOnFor(day, []string{"ADM"}); return err }},
		{"between for set", func() error { _, err := s.AppointmentsBetweenFor(day, day.AddDays(1), []string{"ADM"}); return err }},
		{"owner on", func() error { _, err := s.OwnerAppointmentsOn(day, "ADM"); return err }},
		{"owner between", func() error { _, err := s.OwnerAppointmentsBetween(day, day.AddDays(1), "ADM"); return err }},
		{"available", func() error { _, err := s.IsPersonAvailable(day, day.AddDays(1), "ADM"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrNotImplemented)
		})
	}
}

func TestSeed(t *testing.T) {
	s := New(WithHashCost(bcrypt.MinCost))
	now := at(2026, 5, 4, 10)
	require.NoError(t, s.Seed(now))

	p, err := s.Authenticate(AdminID, AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "SWTKal Admin", p.Name())

	a, err := s.Appointment(1)
	require.NoError(t, err)
	assert.Equal(t, now, a.Begin)
	assert.Equal(t, now.Add(time.Hour), a.End)

	a, err = s.Appointment(2)
	require.NoError(t, err)
	assert.Equal(t, now.Add(90*time.Minute), a.Begin)
	assert.Equal(t, AdminID, a.OwnerID)
	assertConsistent(t, s)

	assert.ErrorIs(t, s.Seed(now), ErrDuplicateIdentity)
}

func TestConcurrentInserts(t *testing.T) {
	s := newStore(t, "ADM")
	const n = 50

	var wg sync.WaitGroup
	got := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := appt(at(2026, 5, 1+i%5, 9), "ADM")
			if err := s.InsertAppointment(a); err != nil {
				t.Error(err)
				return
			}
			got <- a.ID
			_, _ = s.AppointmentsOn(model.DayOf(a.Begin), "ADM")
		}(i)
	}
	wg.Wait()
	close(got)

	seen := map[int]bool{}
	for id := range got {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assertConsistent(t, s)
}
