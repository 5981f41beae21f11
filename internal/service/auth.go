package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/repository"
)

// AuthService handles authentication logic
type AuthService struct {
	store       repository.KVStore
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(store repository.KVStore, botPassword string) *AuthService {
	return &AuthService{
		store:       store,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) == 1
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	data, err := s.store.Get(ctx, userID, domain.KeyAuthorized)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	var authorized bool
	if err := json.Unmarshal(data, &authorized); err != nil {
		return false, nil
	}
	return authorized, nil
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(ctx context.Context, userID int64) error {
	return s.store.Set(ctx, userID, domain.KeyAuthorized, []byte("true"))
}

// RevokeUser removes a user's authorization
func (s *AuthService) RevokeUser(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, userID, domain.KeyAuthorized)
}
