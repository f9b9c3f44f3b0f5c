package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyService(t *testing.T) (*PropertyService, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	keywords := NewKeywordService(db, nil)
	moderation := NewModerationService(db, keywords)
	return NewPropertyService(db, moderation), mock
}

func TestApprove_GuardLoserGetsInvalidTransition(t *testing.T) {
	svc, mock := newPropertyService(t)
	id := uuid.New()

	// Guarded update matches zero rows because another admin got there first.
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// The follow-up lookup finds the row, so the failure is a guard violation.
	mock.ExpectQuery(`SELECT \* FROM "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(id, models.PropertyStatusApproved))

	_, err := svc.Approve(id, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprove_MissingPropertyIsNotFound(t *testing.T) {
	svc, mock := newPropertyService(t)

	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	_, err := svc.Approve(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReject_RequiresReason(t *testing.T) {
	svc, _ := newPropertyService(t)

	_, err := svc.Reject(uuid.New(), "  ", uuid.New())
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestForceReject_BypassesPendingGuard(t *testing.T) {
	svc, mock := newPropertyService(t)

	// One unguarded update row regardless of current status.
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.ForceReject(uuid.New(), "Inappropriate content. Please revise and resubmit.")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForceReject_NotFound(t *testing.T) {
	svc, mock := newPropertyService(t)

	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.ForceReject(uuid.New(), "reason")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestModerationScan_HighSeverityAutoRejects(t *testing.T) {
	svc, mock := newPropertyService(t)
	property := &models.Property{
		ID:          uuid.New(),
		Status:      models.PropertyStatusPending,
		Description: "This is a scam listing",
	}

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords" WHERE is_active = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "severity", "is_active"}).
			AddRow(uuid.New(), "scam", models.SeverityHigh, true))
	// One flag per matched keyword.
	mock.ExpectQuery(`INSERT INTO "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(uuid.New(), models.FlagStatusPending))
	// High severity drives the unguarded rejection update.
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc.runModerationScan(property)

	assert.Equal(t, models.PropertyStatusRejected, property.Status)
	require.NotNil(t, property.RejectionReason)
	assert.Equal(t, "Automatic rejection: Property description contains inappropriate content", *property.RejectionReason)
	require.NotNil(t, property.RejectedAt)
	assert.Nil(t, property.ApprovedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModerationScan_MediumSeverityLeavesStatusAlone(t *testing.T) {
	svc, mock := newPropertyService(t)
	property := &models.Property{
		ID:          uuid.New(),
		Status:      models.PropertyStatusPending,
		Description: "Great party spot",
	}

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords" WHERE is_active = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "severity", "is_active"}).
			AddRow(uuid.New(), "party", models.SeverityMedium, true))
	// Flag is recorded but no property update follows.
	mock.ExpectQuery(`INSERT INTO "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(uuid.New(), models.FlagStatusPending))

	svc.runModerationScan(property)

	assert.Equal(t, models.PropertyStatusPending, property.Status)
	assert.Nil(t, property.RejectionReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}
