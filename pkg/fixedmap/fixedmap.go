package fixedmap

import (
	"errors"
)

var (
	// ErrInvalidCapacity is returned by New when the requested capacity is
	// zero or negative.
	ErrInvalidCapacity = errors.New("fixedmap: capacity must be positive")
	// ErrTableFull is returned by Put when every slot is occupied by a
	// distinct key and none of them matches the key being inserted.
	ErrTableFull = errors.New("fixedmap: table is full")
)

// entry is a single occupied slot: a key and the values appended to it, in
// insertion order. A nil entry marks an empty slot.
type entry struct {
	key    string
	values []string
}

// Table is a fixed-capacity open-addressing multimap. The zero value is not
// usable; construct one with New.
type Table struct {
	entries []*entry
	used    int
}

// New returns an empty Table with exactly capacity slots. The capacity is
// fixed for the lifetime of the table; it returns ErrInvalidCapacity if
// capacity is not positive.
func New(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{entries: make([]*entry, capacity)}, nil
}

// hash returns the home slot for key: a multiplier-31 polynomial over the
// key's code points, reduced modulo the capacity. Accumulation wraps in
// uint64, so the result is stable for a given key and capacity across runs.
func (t *Table) hash(key string) int {
	var h uint64
	for _, r := range key {
		h = 31*h + uint64(r)
	}
	return int(h % uint64(len(t.entries)))
}

// Put appends value to the list held under key. If key is already present its
// slot is found by probing from the home slot toward lower indices (wrapping
// at zero) and value is appended to its list; otherwise the first empty slot
// on that probe path is occupied with (key, [value]). Probing is bounded at
// one full pass over the table: inserting a new key into a table whose every
// slot is held by some other key returns ErrTableFull.
func (t *Table) Put(key, value string) error {
	i := t.hash(key)
	for range t.entries {
		e := t.entries[i]
		if e == nil {
			t.entries[i] = &entry{key: key, values: []string{value}}
			t.used++
			return nil
		}
		if e.key == key {
			e.values = append(e.values, value)
			return nil
		}
		i--
		if i < 0 {
			i = len(t.entries) - 1
		}
	}
	return ErrTableFull
}

// Get returns the values held under key in insertion order, walking the same
// probe sequence as Put. The second return is false if key is absent. The
// returned slice is the table's backing storage; callers must not modify it.
func (t *Table) Get(key string) ([]string, bool) {
	i := t.hash(key)
	for range t.entries {
		e := t.entries[i]
		if e == nil {
			return nil, false
		}
		if e.key == key {
			return e.values, true
		}
		i--
		if i < 0 {
			i = len(t.entries) - 1
		}
	}
	return nil, false
}

// Contains reports whether key is present in the table.
func (t *Table) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of distinct keys in the table.
func (t *Table) Len() int { return t.used }

// Cap returns the table's fixed capacity.
func (t *Table) Cap() int { return len(t.entries) }

// Range calls f for every occupied slot in slot order, passing the key and
// its value list. Iteration stops early if f returns false. The value slice
// passed to f is the table's backing storage; f must not modify it.
func (t *Table) Range(f func(key string, values []string) bool) {
	for _, e := range t.entries {
		if e == nil {
			continue
		}
		if !f(e.key, e.values) {
			return
		}
	}
}

// Stats is a snapshot of table occupancy.
type Stats struct {
	Entries    int     // distinct keys stored
	Capacity   int     // total slots
	LoadFactor float64 // Entries / Capacity
	MaxProbe   int     // longest displacement of any key from its home slot
}

// Stats computes occupancy statistics for the table. MaxProbe is the largest
// number of probe steps any stored key sits away from its home slot; a value
// near the capacity means lookups are degrading toward linear scans.
func (t *Table) Stats() Stats {
	s := Stats{
		Entries:    t.used,
		Capacity:   len(t.entries),
		LoadFactor: float64(t.used) / float64(len(t.entries)),
	}
	for i, e := range t.entries {
		if e == nil {
			continue
		}
		// Probing moves toward lower indices, so displacement is home - i.
		dist := t.hash(e.key) - i
		if dist < 0 {
			dist += len(t.entries)
		}
		if dist > s.MaxProbe {
			s.MaxProbe = dist
		}
	}
	return s
}
