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

func TestCreateKeyword_DuplicateRejected(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewKeywordService(db, nil)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "forbidden_keywords" WHERE LOWER\(keyword\) = LOWER\(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Create(&dto.CreateKeywordRequest{
		Keyword:  "Drugs",
		Severity: models.SeverityHigh,
	})
	assert.ErrorIs(t, err, ErrDuplicateKeyword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateKeyword_ExcludesSelfFromUniquenessCheck(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewKeywordService(db, nil)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "severity", "is_active"}).
			AddRow(id, "drugs", models.SeverityHigh, true))
	// Uniqueness count excludes the row being updated.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "forbidden_keywords" WHERE LOWER\(keyword\) = LOWER\(\$1\) AND id <> \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE "forbidden_keywords" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	kw, err := svc.Update(id, &dto.UpdateKeywordRequest{
		Keyword:  "drugs",
		Severity: models.SeverityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "drugs", kw.Keyword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateKeyword_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewKeywordService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Update(uuid.New(), &dto.UpdateKeywordRequest{
		Keyword:  "drugs",
		Severity: models.SeverityHigh,
	})
	assert.ErrorIs(t, err, ErrKeywordNotFound)
}

func TestDeleteKeyword_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewKeywordService(db, nil)

	mock.ExpectExec(`DELETE FROM "forbidden_keywords"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(uuid.New())
	assert.ErrorIs(t, err, ErrKeywordNotFound)
}

func TestListActive_OrderedByKeyword(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewKeywordService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords" WHERE is_active = \$1 ORDER BY keyword ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "severity", "is_active"}).
			AddRow(uuid.New(), "bad", models.SeverityLow, true).
			AddRow(uuid.New(), "drugs", models.SeverityHigh, true))

	keywords, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, keywords, 2)
	assert.Equal(t, "bad", keywords[0].Keyword)
	assert.Equal(t, "drugs", keywords[1].Keyword)
	assert.NoError(t, mock.ExpectationsWereMet())
}
