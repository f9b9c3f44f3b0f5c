package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagService(t *testing.T) (*FlagService, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	keywords := NewKeywordService(db, nil)
	moderation := NewModerationService(db, keywords)
	properties := NewPropertyService(db, moderation)
	return NewFlagService(db, properties), mock
}

func TestReviewFlag_ActionedForceRejectsProperty(t *testing.T) {
	svc, mock := newFlagService(t)
	flagID := uuid.New()
	propertyID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "flaggable_type", "flaggable_id", "status"}).
			AddRow(flagID, "property", propertyID, models.FlagStatusPending))
	mock.ExpectExec(`UPDATE "content_flags" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Actioned review cascades into an unguarded property rejection.
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "flaggable_type", "flaggable_id", "status"}).
			AddRow(flagID, "property", propertyID, models.FlagStatusActioned))

	flag, err := svc.Review(flagID, &dto.ReviewFlagRequest{Status: models.FlagStatusActioned}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.FlagStatusActioned, flag.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewFlag_ReviewedHasNoSideEffects(t *testing.T) {
	svc, mock := newFlagService(t)
	flagID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "flaggable_type", "flaggable_id", "status"}).
			AddRow(flagID, "property", uuid.New(), models.FlagStatusPending))
	mock.ExpectExec(`UPDATE "content_flags" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "flaggable_type", "flaggable_id", "status"}).
			AddRow(flagID, "property", uuid.New(), models.FlagStatusReviewed))

	flag, err := svc.Review(flagID, &dto.ReviewFlagRequest{Status: models.FlagStatusReviewed}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.FlagStatusReviewed, flag.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewFlag_NotFound(t *testing.T) {
	svc, mock := newFlagService(t)

	mock.ExpectQuery(`SELECT \* FROM "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Review(uuid.New(), &dto.ReviewFlagRequest{Status: models.FlagStatusReviewed}, uuid.New())
	assert.ErrorIs(t, err, ErrFlagNotFound)
}
