package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestKVRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue []byte
		expectedError bool
	}{
		{
			name:          "value found",
			key:           "definitionEnabled",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow([]byte("false")),
			expectedValue: []byte("false"),
		},
		{
			name:          "key unset",
			key:           "playSoundEnabled",
			mockError:     sql.ErrNoRows,
			expectedValue: nil,
		},
		{
			name:          "database error",
			key:           "bookmarkedWords",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewKVRepo(db)

			query := "SELECT value FROM kv_store WHERE user_id = \\$1 AND key = \\$2"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(42), tt.key).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(42), tt.key).WillReturnRows(tt.mockRows)
			}

			value, err := repo.Get(context.Background(), 42, tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.key)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKVRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	value := `[{"word":"lucid","partOfSpeech":"adjective","phonetic":"/ˈluːsɪd/"}]`

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(int64(42), "bookmarkedWords", value).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Set(context.Background(), 42, "bookmarkedWords", []byte(value))

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepo_Set_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(int64(42), "playSoundEnabled", "true").
		WillReturnError(fmt.Errorf("read-only transaction"))

	err = repo.Set(context.Background(), 42, "playSoundEnabled", []byte("true"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	mock.ExpectExec("DELETE FROM kv_store WHERE user_id = \\$1 AND key = \\$2").
		WithArgs(int64(42), "authorized").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), 42, "authorized")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepo_Compact(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKVRepo(db)

	mock.ExpectExec("DELETE FROM kv_store").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.Compact(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
