// Package page describes the surface a widget controller binds to. A page
// exposes elements by stable identifier; controllers receive the
// identifiers they need explicitly and check them once at construction.
package page

import (
	"sort"

	"github.com/grovetools/widgets/errors"
)

// Page resolves element identifiers.
type Page interface {
	Has(id string) bool
}

// Set is a Page backed by a fixed set of identifiers.
type Set map[string]struct{}

// NewSet returns a Set containing ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add registers an identifier.
func (s Set) Add(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

// Has reports whether id is present.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the identifiers in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Binding names one element a controller depends on.
type Binding struct {
	Role     string
	ID       string
	Optional bool
}

// Require checks every binding against p. The first missing required element
// is reported as an ELEMENT_MISSING error naming the controller and role.
// Optional bindings with an ID must still resolve.
func Require(controller string, p Page, bindings ...Binding) error {
	if p == nil {
		return errors.ElementMissing(controller, "page", "")
	}
	for _, b := range bindings {
		if b.ID == "" {
			if b.Optional {
				continue
			}
			return errors.ElementMissing(controller, b.Role, "")
		}
		if !p.Has(b.ID) {
			return errors.ElementMissing(controller, b.Role, b.ID)
		}
	}
	return nil
}
