package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (MentorshipRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewMentorshipRepository(db), mock
}

// CompleteExpired must be a single guarded UPDATE so that concurrent sweeps
// and user-triggered completions cannot double-fire.
func TestCompleteExpired_SingleGuardedUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `mentorships` SET `status`=? WHERE status = ? AND end_date <= ?")).
		WithArgs(string(models.MentorshipStatusCompleted), string(models.MentorshipStatusActive), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	affected, err := repo.CompleteExpired(now)
	require.NoError(t, err)
	require.Equal(t, int64(3), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteExpired_NothingToDo(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `mentorships` SET `status`=?")).
		WithArgs(string(models.MentorshipStatusCompleted), string(models.MentorshipStatusActive), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.CompleteExpired(time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Delete issues a hard delete; there is no soft-delete column on mentorships,
// so the unique (mentor_id, student_id) index frees up for a new request.
func TestDelete_HardDeletesRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `mentorships` WHERE `mentorships`.`id` = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Accept deletes the student's competing pending requests and saves the
// activated row inside one transaction.
func TestAccept_CascadeRunsInOneTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()
	mentorship := &models.Mentorship{
		ID:        7,
		MentorID:  1,
		StudentID: 2,
		Status:    models.MentorshipStatusActive,
		Duration:  models.DurationOneMonth,
		StartDate: now,
		EndDate:   now.AddDate(0, 1, 0),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `mentorships` WHERE student_id = ? AND id <> ? AND status = ?")).
		WithArgs(uint64(2), uint64(7), string(models.MentorshipStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `mentorships` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Accept(mentorship))
	require.NoError(t, mock.ExpectationsWereMet())
}
