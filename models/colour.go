package models

import "errors"

// ErrUnknownColour is returned for colour identifiers that are not in the
// catalog. Anything reaching this in normal operation was validated too late.
var ErrUnknownColour = errors.New("unknown colour")

type ColourDefinition struct {
	Identifier string `json:"identifier"`
	Hex        string `json:"hex"`
}

var colourCatalog = []ColourDefinition{
	{"black", "#000000"},
	{"red", "#FF0000"},
	{"gray", "#808080"},
	{"yellow", "#FFFF00"},
	{"light_purple", "#D8BFD8"},
	{"sky_blue", "#87CEEB"},
	{"jade", "#00A86B"},
	{"green", "#008000"},
	{"aqua", "#00FFFF"},
	{"indigo", "#4B0082"},
	{"blue", "#0000FF"},
	{"bright_pink", "#FF007F"},
	{"chocolate", "#D2691E"},
	{"dark_yellow", "#FFD700"},
	{"light_green", "#90EE90"},
}

var colourHexByID = func() map[string]string {
	m := make(map[string]string, len(colourCatalog))
	for _, c := range colourCatalog {
		m[c.Identifier] = c.Hex
	}
	return m
}()

// Colours returns the catalog in display order. Callers must not modify it.
func Colours() []ColourDefinition {
	return colourCatalog
}

// ColourIdentifiers returns the identifiers in catalog order.
func ColourIdentifiers() []string {
	ids := make([]string, len(colourCatalog))
	for i, c := range colourCatalog {
		ids[i] = c.Identifier
	}
	return ids
}

func HexOf(identifier string) (string, error) {
	hex, ok := colourHexByID[identifier]
	if !ok {
		return "", ErrUnknownColour
	}
	return hex, nil
}

func KnownColour(identifier string) bool {
	_, ok := colourHexByID[identifier]
	return ok
}
