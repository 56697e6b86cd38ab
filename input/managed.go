package input

import (
	"sync"

	"github.com/tidwall/btree"
)

// LocationManager defers line/column bookkeeping until a position is rendered.
//
// Parsing only counts rune offsets through ManagedLocation. When a location is rendered the
// manager walks the source from the nearest already-resolved offset and caches the result, so
// rendering many diagnostics over one text costs roughly one pass over it.
type LocationManager struct {
	source Source[rune]

	mu    sync.Mutex
	cache btree.Map[int, CharLocation]
}

// NewLocationManager creates a manager for locations over src.
//
// src must be the start of the text the managed locations are counted from.
func NewLocationManager(src Source[rune]) *LocationManager {
	m := &LocationManager{source: src}
	m.cache.Set(0, StartOfText())
	return m
}

// Start returns the location of the first rune.
func (m *LocationManager) Start() ManagedLocation {
	return ManagedLocation{manager: m}
}

// Resolve the line and column of the rune at offset.
func (m *LocationManager) Resolve(offset int) CharLocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if loc, ok := m.cache.Get(offset); ok {
		return loc
	}
	start, loc := 0, StartOfText()
	m.cache.Descend(offset, func(key int, value CharLocation) bool {
		start, loc = key, value
		return false
	})
	src := Drop(m.source, start)
	for i := start; i < offset && src.HasNext(); i++ {
		loc = loc.Step(src.Current())
		src = src.Advance()
	}
	m.cache.Set(offset, loc)
	return loc
}

// ManagedLocation is a rune offset whose line and column are resolved by its LocationManager.
type ManagedLocation struct {
	manager *LocationManager
	Offset  int
}

var (
	_ Location[rune] = ManagedLocation{}
	_ Skipper[rune]  = ManagedLocation{}
)

func (l ManagedLocation) Advance(rune) Location[rune] {
	return ManagedLocation{manager: l.manager, Offset: l.Offset + 1}
}

func (l ManagedLocation) Skip(n int) Location[rune] {
	return ManagedLocation{manager: l.manager, Offset: l.Offset + n}
}

// Resolve the line and column of this location.
func (l ManagedLocation) Resolve() CharLocation { return l.manager.Resolve(l.Offset) }

func (l ManagedLocation) String() string { return l.Resolve().String() }
