package item

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrEmptyName     = errors.New("item kind has no name")
	ErrDuplicateName = errors.New("duplicate item kind")
	ErrUnknownWeight = errors.New("unknown weight kind")
)

// Catalog is a read-only, ordered set of item kinds looked up by name.
// A catalog is never modified once built, so it can be shared freely.
type Catalog struct {
	entries []*Descriptor
	byName  map[string]*Descriptor
}

var builtin = mustCatalog(IronOre, CopperOre)

// Builtin returns the catalog of kinds compiled into the package.
func Builtin() *Catalog {
	return builtin
}

func mustCatalog(descriptors ...*Descriptor) *Catalog {
	c, err := NewCatalog(descriptors...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog builds a catalog from descriptors, in the given order.
// Names are matched case-insensitively and must be unique.
func NewCatalog(descriptors ...*Descriptor) (*Catalog, error) {
	c := &Catalog{
		entries: make([]*Descriptor, 0, len(descriptors)),
		byName:  make(map[string]*Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		key := normalizeName(d.name)
		if key == "" {
			return nil, ErrEmptyName
		}
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, d.name)
		}
		c.byName[key] = d
		c.entries = append(c.entries, d)
	}
	return c, nil
}

type catalogFile struct {
	Items []catalogEntry `toml:"item"`
}

type catalogEntry struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Weight      string  `toml:"weight"`
	UnitSize    float32 `toml:"unit_size"`
}

// LoadCatalog reads extra kinds from a TOML document and returns a catalog
// holding the built-in kinds followed by the loaded ones:
//
//	[[item]]
//	name = "Iron Ingot"
//	description = "A bar of smelted iron."
//	weight = "discrete"
//	unit_size = 2.5
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	descriptors := slices.Clone(builtin.entries)
	for _, entry := range file.Items {
		var weight TypeWeight
		switch strings.ToLower(entry.Weight) {
		case "", "continuous":
			weight = ContinuousType()
		case "discrete":
			weight = DiscreteType(entry.UnitSize)
		default:
			return nil, fmt.Errorf("%w %q for %q", ErrUnknownWeight, entry.Weight, entry.Name)
		}
		descriptors = append(descriptors, NewDescriptor(entry.Name, entry.Description, weight))
	}

	return NewCatalog(descriptors...)
}

// Lookup finds a kind by name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (*Descriptor, bool) {
	d, ok := c.byName[normalizeName(name)]
	return d, ok
}

// Suggest returns the kind whose name is closest to name, for "did you mean"
// hints. It reports false when nothing is close enough to be a plausible typo.
func (c *Catalog) Suggest(name string) (*Descriptor, bool) {
	key := normalizeName(name)
	if key == "" {
		return nil, false
	}
	if d, ok := c.byName[key]; ok {
		return d, true
	}

	var (
		best     *Descriptor
		bestDist = -1
	)
	for _, d := range c.entries {
		candidate := normalizeName(d.name)
		dist := levenshtein.ComputeDistance(key, candidate)
		if dist > suggestLimit(len(candidate)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, best != nil
}

// Descriptors returns the kinds in catalog order.
func (c *Catalog) Descriptors() []*Descriptor {
	return slices.Clone(c.entries)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
