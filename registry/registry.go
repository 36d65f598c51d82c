// Package registry holds the fixed component identifiers the landing page
// stamps on repeated cards, so that each card can be located by index.
package registry

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("registry: index out of range")
	ErrTableSize       = errors.New("registry: unexpected number of ids")
	ErrInvalidID       = errors.New("registry: invalid id")
)

// ComponentID identifies one rendered component.
type ComponentID string

// Table is an immutable, ordered list of component ids.
type Table struct {
	name string
	ids  []ComponentID
}

// NewTable builds a table named name that must hold exactly expected ids.
// Ids must be non-empty and unique.
func NewTable(name string, expected int, ids ...ComponentID) (Table, error) {
	if len(ids) != expected {
		return Table{}, fmt.Errorf("%w: %s has %d, want %d", ErrTableSize, name, len(ids), expected)
	}
	seen := make(map[ComponentID]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return Table{}, fmt.Errorf("%w: %s[%d] is empty", ErrInvalidID, name, i)
		}
		if _, dup := seen[id]; dup {
			return Table{}, fmt.Errorf("%w: %s[%d] duplicates %q", ErrInvalidID, name, i, id)
		}
		seen[id] = struct{}{}
	}
	return Table{name: name, ids: append([]ComponentID(nil), ids...)}, nil
}

// Sequence builds a table of ids "<prefix>-0" … "<prefix>-(n-1)".
func Sequence(prefix string, n int) (Table, error) {
	ids := make([]ComponentID, n)
	for i := range ids {
		ids[i] = ComponentID(fmt.Sprintf("%s-%d", prefix, i))
	}
	return NewTable(prefix, n, ids...)
}

// At returns the id at index i. It never substitutes a placeholder.
func (t Table) At(i int) (ComponentID, error) {
	if i < 0 || i >= len(t.ids) {
		return "", fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, t.name, i, len(t.ids))
	}
	return t.ids[i], nil
}

// Len is the number of ids in the table.
func (t Table) Len() int { return len(t.ids) }

// Name is the table name used in error messages.
func (t Table) Name() string { return t.name }

// Landing is the set of tables used by the landing page.
type Landing struct {
	StatCards       Table
	ServiceCards    Table
	SpecialtyBadges Table
	SpecialtyIcons  Table
}

const (
	StatCardCount  = 4
	ServiceCount   = 4
	SpecialtyCount = 6
)

// NewLanding builds and validates every landing table.
func NewLanding() (Landing, error) {
	var (
		l   Landing
		err error
	)
	if l.StatCards, err = Sequence("stat-card", StatCardCount); err != nil {
		return Landing{}, err
	}
	if l.ServiceCards, err = Sequence("service-card", ServiceCount); err != nil {
		return Landing{}, err
	}
	if l.SpecialtyBadges, err = Sequence("specialty-badge", SpecialtyCount); err != nil {
		return Landing{}, err
	}
	if l.SpecialtyIcons, err = Sequence("specialty-icon", SpecialtyCount); err != nil {
		return Landing{}, err
	}
	return l, nil
}
