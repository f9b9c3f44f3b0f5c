package services

import (
	"testing"
	"unicode/utf8"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMatchKeywords(t *testing.T) {
	keywords := []models.ForbiddenKeyword{
		{Keyword: "bad", Severity: models.SeverityLow},
		{Keyword: "drugs", Severity: models.SeverityHigh},
		{Keyword: "party", Severity: models.SeverityMedium},
	}

	t.Run("case insensitive substring match", func(t *testing.T) {
		matched := matchKeywords(keywords, "No DRUGS allowed in this kost")
		require.Len(t, matched, 1)
		assert.Equal(t, "drugs", matched[0].Keyword)
	})

	t.Run("matches inside larger words", func(t *testing.T) {
		matched := matchKeywords(keywords, "badminton court nearby")
		require.Len(t, matched, 1)
		assert.Equal(t, "bad", matched[0].Keyword)
	})

	t.Run("one entry per keyword regardless of occurrences", func(t *testing.T) {
		matched := matchKeywords(keywords, "bad room, bad area, bad view")
		assert.Len(t, matched, 1)
	})

	t.Run("multiple keywords preserve store order", func(t *testing.T) {
		matched := matchKeywords(keywords, "party house with drugs, bad idea")
		require.Len(t, matched, 3)
		assert.Equal(t, "bad", matched[0].Keyword)
		assert.Equal(t, "drugs", matched[1].Keyword)
		assert.Equal(t, "party", matched[2].Keyword)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, matchKeywords(keywords, "a clean and quiet room"))
	})

	t.Run("empty keyword never matches", func(t *testing.T) {
		assert.Empty(t, matchKeywords([]models.ForbiddenKeyword{{Keyword: ""}}, "anything"))
	})
}

func TestSanitizeText(t *testing.T) {
	keywords := []models.ForbiddenKeyword{
		{Keyword: "cheap", Replacement: strPtr("affordable")},
		{Keyword: "dirty"},
	}

	t.Run("replacement configured", func(t *testing.T) {
		assert.Equal(t, "affordable room", sanitizeText(keywords, "cheap room"))
	})

	t.Run("asterisk mask when no replacement", func(t *testing.T) {
		assert.Equal(t, "a ***** room", sanitizeText(keywords, "a dirty room"))
	})

	t.Run("case insensitive and repeated", func(t *testing.T) {
		assert.Equal(t, "affordable and affordable", sanitizeText(keywords, "CHEAP and Cheap"))
	})

	t.Run("untouched when nothing matches", func(t *testing.T) {
		assert.Equal(t, "nice room", sanitizeText(keywords, "nice room"))
	})

	t.Run("mask length counts runes not bytes", func(t *testing.T) {
		got := sanitizeText([]models.ForbiddenKeyword{{Keyword: "İ"}}, "aİ")
		assert.Equal(t, "a*", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("multibyte keyword masks cleanly", func(t *testing.T) {
		// "İstanbul" is 8 runes; the lowered form is shorter in bytes than
		// the original, which must not leak trailing bytes.
		got := sanitizeText([]models.ForbiddenKeyword{{Keyword: "İstanbul"}}, "İstanbul kost")
		assert.Equal(t, "******** kost", got)
		assert.True(t, utf8.ValidString(got))
	})
}

func TestReplaceFold(t *testing.T) {
	assert.Equal(t, "X b X b X", replaceFold("a b A b a", "a", "X"))
	assert.Equal(t, "unchanged", replaceFold("unchanged", "zzz", "X"))
	assert.Equal(t, "keep", replaceFold("keep", "", "X"))

	t.Run("folds runes with shrinking lowercase forms", func(t *testing.T) {
		got := replaceFold("aİb", "i", "X")
		assert.Equal(t, "aXb", got)
		assert.True(t, utf8.ValidString(got))
	})
}

func TestHasHighSeverity(t *testing.T) {
	assert.False(t, HasHighSeverity(nil))
	assert.False(t, HasHighSeverity([]models.ForbiddenKeyword{
		{Severity: models.SeverityLow},
		{Severity: models.SeverityMedium},
	}))
	assert.True(t, HasHighSeverity([]models.ForbiddenKeyword{
		{Severity: models.SeverityLow},
		{Severity: models.SeverityHigh},
	}))
}

func TestScan_NoMatches(t *testing.T) {
	db, mock := newTestDB(t)
	keywords := NewKeywordService(db, nil)
	moderation := NewModerationService(db, keywords)

	mock.ExpectQuery(`SELECT \* FROM "forbidden_keywords" WHERE is_active = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "severity", "is_active"}).
			AddRow(uuid.New(), "drugs", models.SeverityHigh, true))

	matched, err := moderation.Scan(models.PropertyRef(uuid.New()), "a clean and quiet room", nil)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReport_RequiresReason(t *testing.T) {
	db, _ := newTestDB(t)
	moderation := NewModerationService(db, NewKeywordService(db, nil))

	_, err := moderation.Report(models.PropertyRef(uuid.New()), uuid.New(), "   ", nil)
	assert.ErrorIs(t, err, ErrReportReasonRequired)
}

func TestReport_FlagAndModerationMarkCommitTogether(t *testing.T) {
	db, mock := newTestDB(t)
	moderation := NewModerationService(db, NewKeywordService(db, nil))
	propertyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "content_flags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(uuid.New(), models.FlagStatusPending))
	mock.ExpectCommit()

	flag, err := moderation.Report(models.PropertyRef(propertyID), uuid.New(), "misleading photos", nil)
	require.NoError(t, err)
	assert.Equal(t, propertyID, flag.FlaggableID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReport_MissingPropertyRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	moderation := NewModerationService(db, NewKeywordService(db, nil))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "properties" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := moderation.Report(models.PropertyRef(uuid.New()), uuid.New(), "misleading photos", nil)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
