package rooms

// Theme is a categorical tag used to group room templates so a generator
// can build thematically consistent dungeons
type Theme string

const (
	ThemeCrypt   Theme = "crypt"
	ThemeHall    Theme = "hall"
	ThemeCavern  Theme = "cavern"
	ThemeLibrary Theme = "library"
	ThemeArmory  Theme = "armory"
)

// Specification is the lookup key for room templates: theme plus footprint.
// It is a plain comparable value; two specifications with the same fields
// are interchangeable as map keys. Construction never fails - a
// non-positive footprint is a data quality problem of the catalog, not of
// this type.
type Specification struct {
	Theme  Theme `json:"theme"`
	Width  int   `json:"width"`
	Length int   `json:"length"`
}

// TemplateRecord describes one discovered room template: its specification
// and the opaque storage locator the instantiation collaborator resolves.
// Multiple records may share a specification (variants of the same footprint).
type TemplateRecord struct {
	Spec    Specification `json:"spec"`
	Locator string        `json:"locator"`
}
