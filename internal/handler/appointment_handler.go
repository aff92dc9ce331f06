package handler

import (
	"context"

	"cloud.google.com/go/civil"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"calendar-store/internal/api"
)

func validAppointment(a *api.Appointment) error {
	if a == nil {
		return status.Error(codes.InvalidArgument, "appointment required")
	}
	if a.Id < 0 {
		return status.Error(codes.InvalidArgument, "bad id")
	}
	if a.Title == "" {
		return status.Error(codes.InvalidArgument, "title required")
	}
	if a.Begin.IsZero() || a.End.IsZero() {
		return status.Error(codes.InvalidArgument, "times required")
	}
	if a.End.Before(a.Begin) {
		return status.Error(codes.InvalidArgument, "end must not be before begin")
	}
	return nil
}

func (h *Handler) CreateAppointment(ctx context.Context, req *api.SaveAppointmentRequest) (*api.AppointmentResponse, error) {
	userID, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	if err := validAppointment(req.Appointment); err != nil {
		return nil, err
	}

	apt := h.fromProto(req.Appointment)
	if apt.OwnerID == "" {
		apt.OwnerID = userID
	}
	if err := h.store.InsertAppointment(apt); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.AppointmentResponse{Appointment: toProto(apt)}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *api.AppointmentRequest) (*api.AppointmentResponse, error) {
	if req.Id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	apt, err := h.store.Appointment(int(req.Id))
	if err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.AppointmentResponse{Appointment: toProto(apt)}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *api.SaveAppointmentRequest) (*api.AppointmentResponse, error) {
	if err := validAppointment(req.Appointment); err != nil {
		return nil, err
	}

	apt := h.fromProto(req.Appointment)
	if err := h.store.UpdateAppointment(apt); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.AppointmentResponse{Appointment: toProto(apt)}, nil
}

// deleting an unknown id succeeds with Deleted=false
func (h *Handler) DeleteAppointment(ctx context.Context, req *api.AppointmentRequest) (*api.DeleteAppointmentResponse, error) {
	if req.Id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	return &api.DeleteAppointmentResponse{Deleted: h.store.DeleteAppointment(int(req.Id))}, nil
}

// ListAppointmentsOnDay lists the day's appointments the person is not part
// of. The person defaults to the caller.
func (h *Handler) ListAppointmentsOnDay(ctx context.Context, req *api.DayQuery) (*api.ListAppointmentsResponse, error) {
	person, err := h.person(ctx, req.Userid)
	if err != nil {
		return nil, err
	}
	day, err := civil.ParseDate(req.Day)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "day must be YYYY-MM-DD")
	}

	apts, err := h.store.AppointmentsOn(day, person)
	if err != nil {
		return nil, storeErr(ctx, err)
	}
	return toProtoList(apts), nil
}

func (h *Handler) ListAppointmentsInRange(ctx context.Context, req *api.RangeQuery) (*api.ListAppointmentsResponse, error) {
	person, err := h.person(ctx, req.Userid)
	if err != nil {
		return nil, err
	}
	from, err := civil.ParseDate(req.From)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "from must be YYYY-MM-DD")
	}
	to, err := civil.ParseDate(req.To)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "to must be YYYY-MM-DD")
	}

	apts, err := h.store.AppointmentsBetween(from, to, person)
	if err != nil {
		return nil, storeErr(ctx, err)
	}
	return toProtoList(apts), nil
}

func (h *Handler) person(ctx context.Context, userid string) (string, error) {
	if userid != "" {
		return userid, nil
	}
	return uid(ctx)
}
