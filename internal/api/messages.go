package api

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

type Person struct {
	Userid    string
	FirstName string
	LastName  string
}

func (m *Person) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Userid)
	b = appendString(b, 2, m.FirstName)
	return appendString(b, 3, m.LastName)
}

func (m *Person) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Userid)
	case 2:
		return consumeString(typ, b, &m.FirstName)
	case 3:
		return consumeString(typ, b, &m.LastName)
	}
	return skip(num, typ, b)
}

type Appointment struct {
	Id             int64
	Title          string
	Description    string
	Begin          time.Time
	End            time.Time
	OwnerId        string
	ParticipantIds []string
}

func (m *Appointment) appendTo(b []byte) []byte {
	b = appendInt(b, 1, m.Id)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Description)
	b = appendTime(b, 4, m.Begin)
	b = appendTime(b, 5, m.End)
	b = appendString(b, 6, m.OwnerId)
	return appendStrings(b, 7, m.ParticipantIds)
}

func (m *Appointment) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeInt(typ, b, &m.Id)
	case 2:
		return consumeString(typ, b, &m.Title)
	case 3:
		return consumeString(typ, b, &m.Description)
	case 4:
		return consumeTime(typ, b, &m.Begin)
	case 5:
		return consumeTime(typ, b, &m.End)
	case 6:
		return consumeString(typ, b, &m.OwnerId)
	case 7:
		return consumeStrings(typ, b, &m.ParticipantIds)
	}
	return skip(num, typ, b)
}

type Empty struct{}

func (m *Empty) appendTo(b []byte) []byte { return b }

func (m *Empty) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skip(num, typ, b)
}

// ----- sessions -----

type LoginRequest struct {
	Userid   string
	Password string
}

func (m *LoginRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Userid)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Userid)
	case 2:
		return consumeString(typ, b, &m.Password)
	}
	return skip(num, typ, b)
}

type RefreshRequest struct {
	RefreshToken string
}

func (m *RefreshRequest) appendTo(b []byte) []byte {
	return appendString(b, 1, m.RefreshToken)
}

func (m *RefreshRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		return consumeString(typ, b, &m.RefreshToken)
	}
	return skip(num, typ, b)
}

// TokenResponse answers Login and Refresh.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	Person       *Person
}

func (m *TokenResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.AccessToken)
	b = appendString(b, 2, m.RefreshToken)
	if m.Person != nil {
		b = appendMessage(b, 3, m.Person)
	}
	return b
}

func (m *TokenResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.AccessToken)
	case 2:
		return consumeString(typ, b, &m.RefreshToken)
	case 3:
		m.Person = &Person{}
		return consumeMessage(typ, b, m.Person)
	}
	return skip(num, typ, b)
}

// ----- persons -----

type RegisterPersonRequest struct {
	Person   *Person
	Password string
}

func (m *RegisterPersonRequest) appendTo(b []byte) []byte {
	if m.Person != nil {
		b = appendMessage(b, 1, m.Person)
	}
	return appendString(b, 2, m.Password)
}

func (m *RegisterPersonRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Person = &Person{}
		return consumeMessage(typ, b, m.Person)
	case 2:
		return consumeString(typ, b, &m.Password)
	}
	return skip(num, typ, b)
}

// PersonRequest names a person by userid (GetPerson, DeletePerson).
type PersonRequest struct {
	Userid string
}

func (m *PersonRequest) appendTo(b []byte) []byte {
	return appendString(b, 1, m.Userid)
}

func (m *PersonRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		return consumeString(typ, b, &m.Userid)
	}
	return skip(num, typ, b)
}

type PersonResponse struct {
	Person *Person
}

func (m *PersonResponse) appendTo(b []byte) []byte {
	if m.Person != nil {
		b = appendMessage(b, 1, m.Person)
	}
	return b
}

func (m *PersonResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		m.Person = &Person{}
		return consumeMessage(typ, b, m.Person)
	}
	return skip(num, typ, b)
}

type ListPersonsResponse struct {
	Persons []*Person
}

func (m *ListPersonsResponse) appendTo(b []byte) []byte {
	for _, p := range m.Persons {
		b = appendMessage(b, 1, p)
	}
	return b
}

func (m *ListPersonsResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		p := &Person{}
		n, err := consumeMessage(typ, b, p)
		if err == nil {
			m.Persons = append(m.Persons, p)
		}
		return n, err
	}
	return skip(num, typ, b)
}

type UpdatePersonRequest struct {
	Person *Person
}

func (m *UpdatePersonRequest) appendTo(b []byte) []byte {
	if m.Person != nil {
		b = appendMessage(b, 1, m.Person)
	}
	return b
}

func (m *UpdatePersonRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		m.Person = &Person{}
		return consumeMessage(typ, b, m.Person)
	}
	return skip(num, typ, b)
}

type UpdatePasswordRequest struct {
	Userid   string
	Password string
}

func (m *UpdatePasswordRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Userid)
	return appendString(b, 2, m.Password)
}

func (m *UpdatePasswordRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Userid)
	case 2:
		return consumeString(typ, b, &m.Password)
	}
	return skip(num, typ, b)
}

// RenamePersonRequest moves the person stored under OldUserid to
// Person.Userid.
type RenamePersonRequest struct {
	Person    *Person
	OldUserid string
}

func (m *RenamePersonRequest) appendTo(b []byte) []byte {
	if m.Person != nil {
		b = appendMessage(b, 1, m.Person)
	}
	return appendString(b, 2, m.OldUserid)
}

func (m *RenamePersonRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Person = &Person{}
		return consumeMessage(typ, b, m.Person)
	case 2:
		return consumeString(typ, b, &m.OldUserid)
	}
	return skip(num, typ, b)
}

// ----- appointments -----

type AppointmentRequest struct {
	Id int64
}

func (m *AppointmentRequest) appendTo(b []byte) []byte {
	return appendInt(b, 1, m.Id)
}

func (m *AppointmentRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		return consumeInt(typ, b, &m.Id)
	}
	return skip(num, typ, b)
}

// SaveAppointmentRequest carries CreateAppointment and UpdateAppointment.
type SaveAppointmentRequest struct {
	Appointment *Appointment
}

func (m *SaveAppointmentRequest) appendTo(b []byte) []byte {
	if m.Appointment != nil {
		b = appendMessage(b, 1, m.Appointment)
	}
	return b
}

func (m *SaveAppointmentRequest) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		m.Appointment = &Appointment{}
		return consumeMessage(typ, b, m.Appointment)
	}
	return skip(num, typ, b)
}

type AppointmentResponse struct {
	Appointment *Appointment
}

func (m *AppointmentResponse) appendTo(b []byte) []byte {
	if m.Appointment != nil {
		b = appendMessage(b, 1, m.Appointment)
	}
	return b
}

func (m *AppointmentResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		m.Appointment = &Appointment{}
		return consumeMessage(typ, b, m.Appointment)
	}
	return skip(num, typ, b)
}

type DeleteAppointmentResponse struct {
	Deleted bool
}

func (m *DeleteAppointmentResponse) appendTo(b []byte) []byte {
	return appendBool(b, 1, m.Deleted)
}

func (m *DeleteAppointmentResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		return consumeBool(typ, b, &m.Deleted)
	}
	return skip(num, typ, b)
}

// DayQuery asks for the appointments on Day (YYYY-MM-DD) that Userid does
// not take part in.
type DayQuery struct {
	Day    string
	Userid string
}

func (m *DayQuery) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Day)
	return appendString(b, 2, m.Userid)
}

func (m *DayQuery) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Day)
	case 2:
		return consumeString(typ, b, &m.Userid)
	}
	return skip(num, typ, b)
}

// RangeQuery is DayQuery over [From, To).
type RangeQuery struct {
	From   string
	To     string
	Userid string
}

func (m *RangeQuery) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.From)
	b = appendString(b, 2, m.To)
	return appendString(b, 3, m.Userid)
}

func (m *RangeQuery) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.From)
	case 2:
		return consumeString(typ, b, &m.To)
	case 3:
		return consumeString(typ, b, &m.Userid)
	}
	return skip(num, typ, b)
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment
}

func (m *ListAppointmentsResponse) appendTo(b []byte) []byte {
	for _, a := range m.Appointments {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAppointmentsResponse) consume(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if num == 1 {
		a := &Appointment{}
		n, err := consumeMessage(typ, b, a)
		if err == nil {
			m.Appointments = append(m.Appointments, a)
		}
		return n, err
	}
	return skip(num, typ, b)
}
