// Package catalog holds the fixed list of waste types the classifier chooses among.
package catalog

import (
	"strconv"
	"strings"

	"github.com/and161185/ecoscan/internal/model"
)

// Catalog is an ordered, immutable list of waste types.
type Catalog struct {
	types []model.WasteType
}

// Default is the built-in catalog. Order matters: Match returns the first hit.
var Default = MustNew([]model.WasteType{
	{Name: "Plastic Bottle", Icon: "plastic_bottle"},
	{Name: "Plastic Bag", Icon: "plastic_bag"},
	{Name: "Glass Bottle", Icon: "glass_bottle"},
	{Name: "Aluminum Can", Icon: "aluminum_can"},
	{Name: "Cardboard", Icon: "cardboard"},
	{Name: "Paper", Icon: "paper"},
	{Name: "Battery", Icon: "battery"},
	{Name: "Electronics", Icon: "electronics"},
	{Name: "Food Waste", Icon: "food_waste"},
	{Name: "Clothing", Icon: "clothing"},
})

// New validates types (non-empty, unique names) and returns a catalog.
func New(types []model.WasteType) (*Catalog, error) {
	seen := make(map[string]struct{}, len(types))
	for i, t := range types {
		if t.Name == "" {
			return nil, &Error{Index: i, Reason: "empty name"}
		}
		if _, dup := seen[t.Name]; dup {
			return nil, &Error{Index: i, Reason: "duplicate name " + t.Name}
		}
		seen[t.Name] = struct{}{}
	}
	cp := make([]model.WasteType, len(types))
	copy(cp, types)
	return &Catalog{types: cp}, nil
}

// MustNew is New that panics on invalid input. Used for build-time catalogs.
func MustNew(types []model.WasteType) *Catalog {
	c, err := New(types)
	if err != nil {
		panic(err)
	}
	return c
}

// Error reports an invalid catalog entry.
type Error struct {
	Index  int
	Reason string
}

func (e *Error) Error() string { return "catalog: entry " + strconv.Itoa(e.Index) + ": " + e.Reason }

// All returns a copy of the catalog in declaration order.
func (c *Catalog) All() []model.WasteType {
	out := make([]model.WasteType, len(c.types))
	copy(out, c.types)
	return out
}

// Names returns type names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.types))
	for i, t := range c.types {
		out[i] = t.Name
	}
	return out
}

// Match returns the first type whose name occurs in text (case-sensitive).
func (c *Catalog) Match(text string) (model.WasteType, bool) {
	for _, t := range c.types {
		if strings.Contains(text, t.Name) {
			return t, true
		}
	}
	return model.WasteType{}, false
}

// Lookup finds a type by exact name.
func (c *Catalog) Lookup(name string) (model.WasteType, bool) {
	for _, t := range c.types {
		if t.Name == name {
			return t, true
		}
	}
	return model.WasteType{}, false
}
