package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"calendar-store/internal/api"
)

func (h *Handler) RegisterPerson(ctx context.Context, req *api.RegisterPersonRequest) (*api.PersonResponse, error) {
	if req.Person == nil || req.Person.Userid == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "userid and password required")
	}

	p := fromProtoPerson(req.Person)
	if err := h.store.InsertPerson(p, req.Password); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.PersonResponse{Person: toProtoPerson(&p)}, nil
}

func (h *Handler) GetPerson(ctx context.Context, req *api.PersonRequest) (*api.PersonResponse, error) {
	if req.Userid == "" {
		return nil, status.Error(codes.InvalidArgument, "userid required")
	}

	p, err := h.store.FindPerson(req.Userid)
	if err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.PersonResponse{Person: toProtoPerson(p)}, nil
}

func (h *Handler) ListPersons(ctx context.Context, _ *api.Empty) (*api.ListPersonsResponse, error) {
	ps := h.store.Persons()
	out := make([]*api.Person, len(ps))
	for i := range ps {
		out[i] = toProtoPerson(&ps[i])
	}
	return &api.ListPersonsResponse{Persons: out}, nil
}

func (h *Handler) UpdatePerson(ctx context.Context, req *api.UpdatePersonRequest) (*api.PersonResponse, error) {
	if req.Person == nil || req.Person.Userid == "" {
		return nil, status.Error(codes.InvalidArgument, "userid required")
	}

	p := fromProtoPerson(req.Person)
	if err := h.store.UpdatePerson(p); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.PersonResponse{Person: toProtoPerson(&p)}, nil
}

func (h *Handler) UpdatePassword(ctx context.Context, req *api.UpdatePasswordRequest) (*api.Empty, error) {
	if req.Userid == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "userid and password required")
	}

	if err := h.store.UpdatePassword(req.Userid, req.Password); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.Empty{}, nil
}

func (h *Handler) RenamePerson(ctx context.Context, req *api.RenamePersonRequest) (*api.PersonResponse, error) {
	if req.Person == nil || req.Person.Userid == "" || req.OldUserid == "" {
		return nil, status.Error(codes.InvalidArgument, "new and old userid required")
	}

	p := fromProtoPerson(req.Person)
	if err := h.store.RenamePerson(p, req.OldUserid); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.PersonResponse{Person: toProtoPerson(&p)}, nil
}

func (h *Handler) DeletePerson(ctx context.Context, req *api.PersonRequest) (*api.Empty, error) {
	if req.Userid == "" {
		return nil, status.Error(codes.InvalidArgument, "userid required")
	}

	if err := h.store.DeletePerson(req.Userid); err != nil {
		return nil, storeErr(ctx, err)
	}
	return &api.Empty{}, nil
}
