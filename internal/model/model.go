package model

import "time"

type Person struct {
	ID        string
	FirstName string
	LastName  string
}

func (p Person) Name() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type Appointment struct {
	ID             int
	Title          string
	Description    string
	Begin          time.Time
	End            time.Time
	OwnerID        string
	ParticipantIDs []string
}

// Day returns the calendar day the appointment begins on.
func (a Appointment) Day() Day {
	return DayOf(a.Begin)
}

// Clone copies the appointment so callers can't reach into stored participant slices.
func (a Appointment) Clone() Appointment {
	if a.ParticipantIDs != nil {
		a.ParticipantIDs = append([]string(nil), a.ParticipantIDs...)
	}
	return a
}
