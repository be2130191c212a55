// Package catalog is a thin client for the external PokeAPI catalog.
package catalog

// NamedResource is a name plus the API URL it can be fetched from.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse is a paginated page of catalog references.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// AbilitySlot is one ability entry on a pokemon.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// TypeSlot is one type entry on a pokemon.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// Sprites holds the display images for a pokemon.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        *struct {
		OfficialArtwork *struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork,omitempty"`
	} `json:"other,omitempty"`
}

// Pokemon is the full detail record for a single catalog item.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Abilities []AbilitySlot `json:"abilities"`
	Types     []TypeSlot    `json:"types"`
	Sprites   Sprites       `json:"sprites"`
}

// abilityResponse and typeResponse carry the pokemon references returned by
// the ability and type endpoints. The wire shapes differ slightly but both
// nest the reference under a "pokemon" key.
type abilityResponse struct {
	Pokemon []struct {
		Pokemon  NamedResource `json:"pokemon"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"pokemon"`
}

type typeResponse struct {
	Pokemon []struct {
		Pokemon NamedResource `json:"pokemon"`
		Slot    int           `json:"slot"`
	} `json:"pokemon"`
}
