package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"uptime-monitor/internal/monitor/model"
)

func TestNotificationRepository_HasRecent(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expected      bool
		expectedError error
	}{
		{
			name: "Success Recent notification exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_records" WHERE target_id = \$1 AND kind = \$2 AND sent_at >= \$3`).
					WithArgs("t1", model.NotificationKindCertificateExpiry, sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
			},
			expected: true,
		},
		{
			name: "Success No recent notification",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_records"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
			},
			expected: false,
		},
		{
			name: "Error Generic database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_records"`).
					WillReturnError(errors.New("test error"))
			},
			expectedError: errors.New("test error"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			tc.mockSetup(mock)

			repo := NewNotificationRepository(db)
			got, err := repo.HasRecent(context.Background(), "t1", model.NotificationKindCertificateExpiry, 7*24*time.Hour)

			if tc.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationRepository_Append(t *testing.T) {
	t.Run("Success Generates an id when absent", func(t *testing.T) {
		db, mock := setupTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "notification_records"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewNotificationRepository(db)
		err := repo.Append(context.Background(), model.NotificationRecord{
			TargetID:  "t1",
			Kind:      model.NotificationKindDown,
			Recipient: "ops@example.com",
			SentAt:    time.Now().UTC(),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error Generic database error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		testErr := errors.New("test error")
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "notification_records"`).
			WillReturnError(testErr)
		mock.ExpectRollback()

		repo := NewNotificationRepository(db)
		err := repo.Append(context.Background(), model.NotificationRecord{TargetID: "t1"})

		assert.ErrorIs(t, err, testErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
