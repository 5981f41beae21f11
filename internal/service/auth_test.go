package service

import (
	"context"
	"fmt"
	"testing"

	"thesaurusrex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(testutil.NewMemoryKV(), tt.botPassword)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    []byte
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "authorized user",
			userID:       123,
			mockReturn:   []byte("true"),
			expectedAuth: true,
		},
		{
			name:         "unknown user",
			userID:       456,
			mockReturn:   nil,
			expectedAuth: false,
		},
		{
			name:         "malformed flag",
			userID:       789,
			mockReturn:   []byte(`"yes"`),
			expectedAuth: false,
		},
		{
			name:          "storage error",
			userID:        321,
			mockError:     fmt.Errorf("disk full"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockKVStore)
			mockStore.On("Get", mock.Anything, tt.userID, "authorized").Return(tt.mockReturn, tt.mockError)

			service := NewAuthService(mockStore, "password")

			authorized, err := service.IsAuthorized(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthorizeAndRevoke(t *testing.T) {
	store := testutil.NewMemoryKV()
	service := NewAuthService(store, "password")
	ctx := context.Background()

	assert.NoError(t, service.AuthorizeUser(ctx, 123))

	authorized, err := service.IsAuthorized(ctx, 123)
	assert.NoError(t, err)
	assert.True(t, authorized)

	assert.NoError(t, service.RevokeUser(ctx, 123))

	authorized, err = service.IsAuthorized(ctx, 123)
	assert.NoError(t, err)
	assert.False(t, authorized)
}
