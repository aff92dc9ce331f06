package handler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"calendar-store/internal/api"
	"calendar-store/internal/auth"
	"calendar-store/internal/middleware"
	"calendar-store/internal/model"
	"calendar-store/internal/store"
)

type Handler struct {
	api.UnimplementedCalendarServiceServer
	store  *store.Store
	tokens *auth.Issuer
	loc    *time.Location
}

// New serves st. Incoming instants are moved to loc before they are filed,
// so day buckets follow loc's calendar; nil means time.Local.
func New(st *store.Store, tokens *auth.Issuer, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{store: st, tokens: tokens, loc: loc}
}

func uid(ctx context.Context) (string, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "not logged in")
	}
	return id, nil
}

// storeErr turns a store error into a status the client can act on.
func storeErr(ctx context.Context, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, store.ErrUnknownParticipant):
		code = codes.FailedPrecondition
	case errors.Is(err, store.ErrUnknownIdentity), errors.Is(err, store.ErrAppointmentNotFound):
		code = codes.NotFound
	case errors.Is(err, store.ErrDuplicateIdentity):
		code = codes.AlreadyExists
	case errors.Is(err, store.ErrBadCredentials):
		code = codes.Unauthenticated
	case errors.Is(err, store.ErrInvalidRange):
		code = codes.InvalidArgument
	case errors.Is(err, store.ErrNotImplemented):
		code = codes.Unimplemented
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("store")
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

func toProtoPerson(p *model.Person) *api.Person {
	return &api.Person{Userid: p.ID, FirstName: p.FirstName, LastName: p.LastName}
}

func fromProtoPerson(p *api.Person) model.Person {
	return model.Person{ID: p.Userid, FirstName: p.FirstName, LastName: p.LastName}
}

func toProto(a *model.Appointment) *api.Appointment {
	return &api.Appointment{
		Id:             int64(a.ID),
		Title:          a.Title,
		Description:    a.Description,
		Begin:          a.Begin,
		End:            a.End,
		OwnerId:        a.OwnerID,
		ParticipantIds: a.ParticipantIDs,
	}
}

func (h *Handler) fromProto(a *api.Appointment) *model.Appointment {
	return &model.Appointment{
		ID:             int(a.Id),
		Title:          a.Title,
		Description:    a.Description,
		Begin:          a.Begin.In(h.loc),
		End:            a.End.In(h.loc),
		OwnerID:        a.OwnerId,
		ParticipantIDs: a.ParticipantIds,
	}
}

func toProtoList(as []model.Appointment) *api.ListAppointmentsResponse {
	out := make([]*api.Appointment, len(as))
	for i := range as {
		out[i] = toProto(&as[i])
	}
	return &api.ListAppointmentsResponse{Appointments: out}
}
