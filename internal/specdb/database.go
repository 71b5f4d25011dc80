// Package specdb indexes a catalog of discovered room templates by
// specification so generation-time queries are map lookups instead of
// catalog scans. A database is built once from the catalog collaborator's
// records and is read-only afterwards; rebuilding means constructing a
// new instance from a fresh scan.
package specdb

import (
	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

// Database answers existence, enumeration, and max-footprint-per-theme
// queries over a template catalog. Safe for concurrent readers; it exposes
// no mutation after construction.
type Database struct {
	locatorsBySpec   map[rooms.Specification][]string
	maxWidthByTheme  map[rooms.Theme]int
	maxLengthByTheme map[rooms.Theme]int
}

// New builds a database from the given template records. Locators are
// kept in arrival order, which is the discovery order of the underlying
// catalog scan. Max width and max length are tracked independently per
// theme: the widest room of a theme need not be the longest.
func New(records []rooms.TemplateRecord) (*Database, error) {
	if len(records) == 0 {
		return nil, apperrors.EmptyCatalog("no room template records supplied")
	}

	db := &Database{
		locatorsBySpec:   make(map[rooms.Specification][]string),
		maxWidthByTheme:  make(map[rooms.Theme]int),
		maxLengthByTheme: make(map[rooms.Theme]int),
	}

	for _, record := range records {
		db.locatorsBySpec[record.Spec] = append(db.locatorsBySpec[record.Spec], record.Locator)

		theme := record.Spec.Theme
		if width, ok := db.maxWidthByTheme[theme]; !ok || record.Spec.Width > width {
			db.maxWidthByTheme[theme] = record.Spec.Width
		}
		if length, ok := db.maxLengthByTheme[theme]; !ok || record.Spec.Length > length {
			db.maxLengthByTheme[theme] = record.Spec.Length
		}
	}

	return db, nil
}

// Exists returns true if at least one template matches the given
// specification. Querying with a non-positive footprint is a caller
// error, not "no templates found".
func (db *Database) Exists(spec rooms.Specification) (bool, error) {
	if spec.Width <= 0 || spec.Length <= 0 {
		return false, apperrors.InvalidSpecificationf("non-positive footprint %dx%d in query", spec.Width, spec.Length)
	}

	_, ok := db.locatorsBySpec[spec]
	return ok, nil
}

// LocatorsFor returns the locators of every template matching the given
// specification, in discovery order. Callers are expected to have checked
// Exists first; an absent specification is a precondition violation, not
// an empty result. An empty sequence cannot occur by construction.
func (db *Database) LocatorsFor(spec rooms.Specification) ([]string, error) {
	locators, ok := db.locatorsBySpec[spec]
	if !ok {
		return nil, apperrors.SpecificationNotFoundf("no templates with theme %q footprint %dx%d", spec.Theme, spec.Width, spec.Length)
	}

	// Return a copy to keep the database read-only
	result := make([]string, len(locators))
	copy(result, locators)
	return result, nil
}

// MaxWidth returns the widest footprint recorded for the theme
func (db *Database) MaxWidth(theme rooms.Theme) (int, error) {
	width, ok := db.maxWidthByTheme[theme]
	if !ok {
		return 0, apperrors.ThemeNotFoundf("no templates recorded for theme %q", theme)
	}
	return width, nil
}

// MaxLength returns the longest footprint recorded for the theme
func (db *Database) MaxLength(theme rooms.Theme) (int, error) {
	length, ok := db.maxLengthByTheme[theme]
	if !ok {
		return 0, apperrors.ThemeNotFoundf("no templates recorded for theme %q", theme)
	}
	return length, nil
}

// Themes returns every theme with at least one recorded template.
// Order is unspecified.
func (db *Database) Themes() []rooms.Theme {
	themes := make([]rooms.Theme, 0, len(db.maxWidthByTheme))
	for theme := range db.maxWidthByTheme {
		themes = append(themes, theme)
	}
	return themes
}

// Specifications returns every specification with at least one recorded
// template. Order is unspecified.
func (db *Database) Specifications() []rooms.Specification {
	specs := make([]rooms.Specification, 0, len(db.locatorsBySpec))
	for spec := range db.locatorsBySpec {
		specs = append(specs, spec)
	}
	return specs
}
