package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrity-connect/internal/domain"
)

func TestCelebrityRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Search filter builds ILIKE arguments", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCelebrityRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "bio", "category", "available_for_booking", "created_at", "updated_at", "owner_username", "owner_email"}).
			AddRow(uuid.New(), uuid.New(), "Bob Star", "musician", "music", true, time.Now(), time.Now(), "bobstar", "bob@example.com")
		mock.ExpectQuery("SELECT c\\.\\*, u\\.username AS owner_username").WithArgs("%bob%").WillReturnRows(rows)

		celebrities, err := repo.List(ctx, domain.CelebrityFilter{Search: "bob"})

		require.NoError(t, err)
		require.Len(t, celebrities, 1)
		assert.Equal(t, "Bob Star", celebrities[0].Name)
		require.NotNil(t, celebrities[0].OwnerUsername)
		assert.Equal(t, "bobstar", *celebrities[0].OwnerUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCelebrityRepository_DeleteCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes everything referencing the celebrity or its owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCelebrityRepository(db)

		celebrityID := uuid.New()
		ownerID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM appointments").WithArgs(celebrityID).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM messages").WithArgs(celebrityID, ownerID).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM notifications").WithArgs(ownerID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM celebrities").WithArgs(celebrityID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM users").WithArgs(ownerID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := repo.DeleteCascade(ctx, celebrityID, ownerID)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Appointments)
		assert.Equal(t, int64(4), result.Messages)
		assert.Equal(t, int64(1), result.Celebrities)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure rolls back without partial counts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCelebrityRepository(db)

		celebrityID := uuid.New()
		ownerID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM appointments").WithArgs(celebrityID).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		result, err := repo.DeleteCascade(ctx, celebrityID, ownerID)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
