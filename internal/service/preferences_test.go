package service

import (
	"context"
	"fmt"
	"testing"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPreferencesService_Get_EmptyStore(t *testing.T) {
	service := NewPreferencesService(testutil.NewMemoryKV(), testutil.NewTestLogger())

	prefs := service.Get(context.Background(), 1)

	assert.True(t, prefs.DefinitionEnabled)
	assert.False(t, prefs.PlaySoundEnabled)
}

func TestPreferencesService_Get(t *testing.T) {
	tests := []struct {
		name           string
		definition     []byte
		definitionErr  error
		playSound      []byte
		playSoundErr   error
		expectedResult domain.Preferences
	}{
		{
			name:           "both stored",
			definition:     []byte("false"),
			playSound:      []byte("true"),
			expectedResult: domain.Preferences{DefinitionEnabled: false, PlaySoundEnabled: true},
		},
		{
			name:           "storage errors fall back to defaults",
			definitionErr:  fmt.Errorf("storage unavailable"),
			playSoundErr:   fmt.Errorf("storage unavailable"),
			expectedResult: domain.Preferences{DefinitionEnabled: true, PlaySoundEnabled: false},
		},
		{
			name:           "malformed values fall back to defaults",
			definition:     []byte(`"no"`),
			playSound:      []byte(`1`),
			expectedResult: domain.Preferences{DefinitionEnabled: true, PlaySoundEnabled: false},
		},
		{
			name:           "one flag set",
			definition:     nil,
			playSound:      []byte("true"),
			expectedResult: domain.Preferences{DefinitionEnabled: true, PlaySoundEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockKVStore)
			mockStore.On("Get", mock.Anything, int64(1), "definitionEnabled").Return(tt.definition, tt.definitionErr)
			mockStore.On("Get", mock.Anything, int64(1), "playSoundEnabled").Return(tt.playSound, tt.playSoundErr)

			service := NewPreferencesService(mockStore, testutil.NewTestLogger())

			prefs := service.Get(context.Background(), 1)

			assert.Equal(t, tt.expectedResult, prefs)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestPreferencesService_Set(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         bool
		mockError     error
		expectStore   bool
		expectedError bool
	}{
		{
			name:        "definition flag",
			key:         "definitionEnabled",
			value:       false,
			expectStore: true,
		},
		{
			name:        "play sound flag",
			key:         "playSoundEnabled",
			value:       true,
			expectStore: true,
		},
		{
			name:          "unknown key",
			key:           "summarizeEnabled",
			value:         true,
			expectedError: true,
		},
		{
			name:          "storage error",
			key:           "playSoundEnabled",
			value:         true,
			mockError:     fmt.Errorf("storage unavailable"),
			expectStore:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockKVStore)
			if tt.expectStore {
				mockStore.On("Set", mock.Anything, int64(1), tt.key, []byte(fmt.Sprint(tt.value))).Return(tt.mockError)
			}

			service := NewPreferencesService(mockStore, testutil.NewTestLogger())

			err := service.Set(context.Background(), 1, tt.key, tt.value)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestPreferencesService_SetThenGet(t *testing.T) {
	service := NewPreferencesService(testutil.NewMemoryKV(), testutil.NewTestLogger())
	ctx := context.Background()

	assert.NoError(t, service.Set(ctx, 1, domain.KeyDefinitionEnabled, false))
	assert.NoError(t, service.Set(ctx, 1, domain.KeyPlaySoundEnabled, true))

	prefs := service.Get(ctx, 1)
	assert.False(t, prefs.DefinitionEnabled)
	assert.True(t, prefs.PlaySoundEnabled)

	other := service.Get(ctx, 2)
	assert.Equal(t, domain.DefaultPreferences(), other)
}
