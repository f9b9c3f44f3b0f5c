package database

import (
	"log/slog"

	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

type seedKeyword struct {
	Keyword     string
	Replacement string // empty means no replacement (mask with asterisks)
	Severity    string
}

var seedKeywords = []seedKeyword{
	// High severity: automatic rejection
	{"scam", "", models.SeverityHigh},
	{"illegal", "", models.SeverityHigh},
	{"narcotics", "prohibited items", models.SeverityHigh},
	{"drugs", "prohibited items", models.SeverityHigh},
	{"weapons", "prohibited items", models.SeverityHigh},
	{"gambling", "prohibited activities", models.SeverityHigh},
	{"call girl", "prohibited services", models.SeverityHigh},
	{"prostitution", "prohibited services", models.SeverityHigh},
	// Medium severity: flagged for review
	{"alcohol", "beverages", models.SeverityMedium},
	{"cheap", "affordable", models.SeverityMedium},
	{"dirty", "needs maintenance", models.SeverityMedium},
	{"nasty", "unpleasant", models.SeverityMedium},
	{"sketchy", "uncertain", models.SeverityMedium},
	{"suspicious", "concerning", models.SeverityMedium},
	{"party", "gathering", models.SeverityMedium},
	// Low severity: replaced on sanitize, flagged but never auto-actioned
	{"bad", "unpleasant", models.SeverityLow},
	{"terrible", "challenging", models.SeverityLow},
	{"noisy", "lively", models.SeverityLow},
	{"old", "classic", models.SeverityLow},
	{"ugly", "unique-looking", models.SeverityLow},
	{"basic", "standard", models.SeverityLow},
	{"simple", "straightforward", models.SeverityLow},
}

var seedRoomTypes = map[string]string{
	"Single Room":  "A room designed for one person.",
	"Sharing Room": "A room designed for sharing between two or more people.",
	"Studio":       "An open-concept room that combines sleeping and living areas.",
	"Ensuite":      "A room with an attached private bathroom.",
	"Deluxe Room":  "A larger, more premium room with additional amenities.",
}

var seedFacilityTypes = map[string]string{
	"Bathroom":      "Bathroom related facilities.",
	"Kitchen":       "Kitchen related facilities.",
	"Entertainment": "Entertainment related facilities.",
	"Connectivity":  "Internet and network related facilities.",
	"Comfort":       "Comfort related facilities.",
	"Security":      "Security related facilities.",
	"Laundry":       "Laundry related facilities.",
}

// SeedReferenceData inserts the default forbidden keywords and taxonomy
// entries. Idempotent: existing rows are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	seeded := 0

	for _, sk := range seedKeywords {
		var existing models.ForbiddenKeyword
		if err := db.Where("keyword = ?", sk.Keyword).First(&existing).Error; err == nil {
			continue
		}
		kw := models.ForbiddenKeyword{
			Keyword:  sk.Keyword,
			Severity: sk.Severity,
			IsActive: true,
		}
		if sk.Replacement != "" {
			r := sk.Replacement
			kw.Replacement = &r
		}
		if err := db.Create(&kw).Error; err != nil {
			return err
		}
		seeded++
	}

	if err := seedCategories(db, models.CategoryTypeRoom, seedRoomTypes, &seeded); err != nil {
		return err
	}
	if err := seedCategories(db, models.CategoryTypeFacility, seedFacilityTypes, &seeded); err != nil {
		return err
	}

	if seeded > 0 {
		slog.Info("seeded reference data", "new", seeded)
	}
	return nil
}

func seedCategories(db *gorm.DB, categoryType string, entries map[string]string, seeded *int) error {
	for name, description := range entries {
		slug := models.Slugify(name)
		var existing models.Category
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		desc := description
		cat := models.Category{
			Name:        name,
			Slug:        slug,
			Type:        categoryType,
			Description: &desc,
			IsActive:    true,
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		*seeded++
	}
	return nil
}
