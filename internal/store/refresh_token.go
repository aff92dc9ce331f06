package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"calendar-store/internal/auth"
)

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

// CreateRefreshToken stores tokenHash for userID. It expires auth.RefreshTTL
// from now on the store clock.
func (s *Store) CreateRefreshToken(userID, tokenHash string) (*RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[userID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, userID)
	}
	cp := *s.addToken(userID, tokenHash)
	return &cp, nil
}

func (s *Store) addToken(userID, tokenHash string) *RefreshToken {
	now := s.now()
	s.pruneTokens(now)
	rt := &RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(auth.RefreshTTL),
		CreatedAt: now,
	}
	s.tokens[tokenHash] = rt
	return rt
}

// pruneTokens forgets expired tokens. Revoked ones stay until they expire
// so that replaying them is still caught.
func (s *Store) pruneTokens(now time.Time) {
	for h, rt := range s.tokens {
		if !now.Before(rt.ExpiresAt) {
			delete(s.tokens, h)
		}
	}
}

// RotateRefreshToken exchanges the token stored under oldHash for a new one
// under newHash and returns a copy of the new token. Presenting a token that
// was already revoked revokes every token of its owner (suspected theft).
func (s *Store) RotateRefreshToken(oldHash, newHash string) (*RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.tokens[oldHash]
	if !ok {
		return nil, ErrTokenNotFound
	}
	if old.Revoked {
		s.revokeAll(old.UserID)
		s.log.Warn().Str("userid", old.UserID).Msg("revoked refresh token reused")
		return nil, ErrTokenRevoked
	}
	if !s.now().Before(old.ExpiresAt) {
		return nil, ErrTokenExpired
	}
	if _, ok := s.persons[old.UserID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentity, old.UserID)
	}

	// revoke old, point to replacement
	next := s.addToken(old.UserID, newHash)
	old.Revoked = true
	old.ReplacedBy = &next.ID

	cp := *next
	return &cp, nil
}

// revoke all tokens for a user (on logout or suspected theft)
func (s *Store) RevokeAllRefreshTokens(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokeAll(userID)
}

func (s *Store) revokeAll(userID string) {
	for _, rt := range s.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
}

// dropTokens forgets every token of a userid that no longer exists.
func (s *Store) dropTokens(userID string) {
	for h, rt := range s.tokens {
		if rt.UserID == userID {
			delete(s.tokens, h)
		}
	}
}
