package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"uptime-monitor/internal/monitor/model"
)

func TestRunRepository_RecordRun(t *testing.T) {
	now := time.Now().UTC()
	summary := model.BatchSummary{Checked: 5, Succeeded: 4, Failed: 1}

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "engine_runs"`).
			WithArgs(now, 5, 4, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		repo := NewRunRepository(db)
		err := repo.RecordRun(context.Background(), now, summary)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error Generic database error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		testErr := errors.New("test error")
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "engine_runs"`).
			WillReturnError(testErr)
		mock.ExpectRollback()

		repo := NewRunRepository(db)
		err := repo.RecordRun(context.Background(), now, summary)

		assert.ErrorIs(t, err, testErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunRepository_LastRun(t *testing.T) {
	finishedAt := time.Now().UTC().Truncate(time.Second)

	t.Run("Success Returns latest run stamp", func(t *testing.T) {
		db, mock := setupTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "engine_runs" ORDER BY finished_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "finished_at"}).AddRow(int64(3), finishedAt))

		repo := NewRunRepository(db)
		got, err := repo.LastRun(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, finishedAt, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success No runs recorded yet", func(t *testing.T) {
		db, mock := setupTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "engine_runs"`).
			WillReturnError(gorm.ErrRecordNotFound)

		repo := NewRunRepository(db)
		got, err := repo.LastRun(context.Background())

		assert.NoError(t, err)
		assert.True(t, got.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
