package catalog

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entity is one catalog item in normalized form.
type Entity struct {
	Name       string
	ImageURL   string
	Categories []string
	Height     int // decimetres
	Weight     int // hectograms
}

// HasCategory reports whether the entity is tagged with the given category.
func (e Entity) HasCategory(c Category) bool {
	return slices.Contains(e.Categories, string(c))
}

// HeightMeters renders the height in metres, e.g. 7 -> "0.7", 10 -> "1".
func (e Entity) HeightMeters() string {
	return tenths(e.Height)
}

// WeightKilograms renders the weight in kilograms, e.g. 69 -> "6.9".
func (e Entity) WeightKilograms() string {
	return tenths(e.Weight)
}

// CategoryLabel joins the categories in source order.
func (e Entity) CategoryLabel() string {
	return strings.Join(e.Categories, ", ")
}

// DisplayName is the title-cased name, e.g. "mr-mime" -> "Mr-Mime".
func (e Entity) DisplayName() string {
	return cases.Title(language.English).String(e.Name)
}

// Field is one labelled line of the detail card.
type Field struct {
	Label string
	Value string
}

// DetailFields lists the detail card lines below the name.
func (e Entity) DetailFields() []Field {
	return []Field{
		{Label: "Image", Value: e.ImageURL},
		{Label: "Types", Value: e.CategoryLabel()},
		{Label: "Height", Value: e.HeightMeters() + " m"},
		{Label: "Weight", Value: e.WeightKilograms() + " kg"},
	}
}

func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
}

// Clone returns a deep copy so callers can't alias the category slice.
func (e Entity) Clone() Entity {
	e.Categories = slices.Clone(e.Categories)
	return e
}

// CloneList copies a list of entities.
func CloneList(list []Entity) []Entity {
	if list == nil {
		return nil
	}
	out := make([]Entity, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

// FindByName returns the entity with the given name, ignoring case.
func FindByName(list []Entity, name string) (Entity, bool) {
	name = strings.TrimSpace(name)
	for _, e := range list {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entity{}, false
}
