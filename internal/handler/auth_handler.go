package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"calendar-store/internal/api"
	"calendar-store/internal/auth"
	"calendar-store/internal/store"
)

func (h *Handler) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	if req.Userid == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "userid and password required")
	}

	// don't reveal whether the userid exists
	p, err := h.store.Authenticate(req.Userid, req.Password)
	if errors.Is(err, store.ErrUnknownIdentity) || errors.Is(err, store.ErrBadCredentials) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	} else if err != nil {
		return nil, storeErr(ctx, err)
	}

	access, err := h.tokens.Issue(p.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	if _, err := h.store.CreateRefreshToken(p.ID, hash); err != nil {
		return nil, storeErr(ctx, err)
	}

	return &api.TokenResponse{AccessToken: access, RefreshToken: raw, Person: toProtoPerson(p)}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *api.RefreshRequest) (*api.TokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	rt, err := h.store.RotateRefreshToken(auth.HashRefreshToken(req.RefreshToken), hash)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	p, err := h.store.FindPerson(rt.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	access, err := h.tokens.Issue(p.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &api.TokenResponse{AccessToken: access, RefreshToken: raw, Person: toProtoPerson(p)}, nil
}

func (h *Handler) Logout(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	userID, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	h.store.RevokeAllRefreshTokens(userID)
	return &api.Empty{}, nil
}
