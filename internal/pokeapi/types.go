package pokeapi

import "github.com/five82/dexter/internal/catalog"

// Reference is one entry of the index returned by /pokemon.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse mirrors /pokemon?limit=N.
type ListResponse struct {
	Count   int         `json:"count"`
	Next    *string     `json:"next"`
	Results []Reference `json:"results"`
}

// Detail mirrors the subset of /pokemon/{id} the catalog uses.
type Detail struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Height  int       `json:"height"`
	Weight  int       `json:"weight"`
	Sprites Sprites   `json:"sprites"`
	Types   []TypeRef `json:"types"`
}

// Sprites holds image URLs. Only the default front sprite is used.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeRef is one slot of the types array.
type TypeRef struct {
	Slot int      `json:"slot"`
	Type NamedRef `json:"type"`
}

// NamedRef is PokeAPI's generic {name, url} pair.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Entity normalizes the detail record. Type order follows the source.
func (d Detail) Entity() catalog.Entity {
	types := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, t.Type.Name)
	}
	return catalog.Entity{
		Name:       d.Name,
		ImageURL:   d.Sprites.FrontDefault,
		Categories: types,
		Height:     d.Height,
		Weight:     d.Weight,
	}
}
