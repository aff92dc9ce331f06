package store

import (
	"time"

	"calendar-store/internal/model"
)

const (
	AdminID       = "ADM"
	AdminPassword = "admin"
)

// Seed registers the administrator and two appointments starting at now,
// giving a fresh store something to show.
func (s *Store) Seed(now time.Time) error {
	admin := model.Person{ID: AdminID, FirstName: "SWTKal", LastName: "Admin"}
	if err := s.InsertPerson(admin, AdminPassword); err != nil {
		return err
	}

	seed := []model.Appointment{
		{
			Title:       "1. Test appointment",
			Description: "This is the long text of the first test appointment",
			Begin:       now,
			End:         now.Add(time.Hour),
		},
		{
			Title:       "2. Test appointment",
			Description: "This is the long text of the second test appointment",
			Begin:       now.Add(90 * time.Minute),
			End:         now.Add(150 * time.Minute),
		},
	}
	for i := range seed {
		seed[i].OwnerID = admin.ID
		seed[i].ParticipantIDs = []string{admin.ID}
		if err := s.InsertAppointment(&seed[i]); err != nil {
			return err
		}
	}
	s.log.Info().Int("appointments", len(seed)).Msg("seeded store")
	return nil
}
