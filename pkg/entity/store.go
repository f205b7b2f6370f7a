package entity

import "github.com/brentp/intintmap"

// Store is the id-stable ordered collection of entities described in
// spec.md §4.3 and §3: entities are always iterated in insertion (id)
// order, ids are never reused, and removal leaves a gap.
//
// The primary storage is the ordered slice the spec requires. Alongside
// it we keep a brentp/intintmap index from id -> slice position so
// ByID stays O(1) even with the unit counts a long match accumulates;
// the spec only requires linear scan be *acceptable*, not mandatory.
type Store struct {
	entities []*Entity
	index    *intintmap.Map
	nextID   int
}

// NewStore returns an empty store with the first id at 0.
func NewStore() *Store {
	return &Store{
		index: intintmap.New(256, 0.75),
	}
}

// Append creates and stores a new entity, assigning it the next id.
func (s *Store) Append(e Entity) *Entity {
	e.ID = s.nextID
	s.nextID++
	s.entities = append(s.entities, &e)
	s.index.Put(int64(e.ID), int64(len(s.entities)-1))
	return s.entities[len(s.entities)-1]
}

// NextID returns the id that would be assigned to the next Append call,
// without consuming it.
func (s *Store) NextID() int { return s.nextID }

// SetNextID overwrites the id counter; the next Append uses id.
func (s *Store) SetNextID(id int) { s.nextID = id }

// ByID looks up an entity by id. Returns nil if it does not exist (was
// removed, or never created).
func (s *Store) ByID(id int) *Entity {
	pos, ok := s.index.Get(int64(id))
	if !ok {
		return nil
	}
	e := s.entities[pos]
	if e.ID != id {
		// The index entry is stale (a removal happened without a full
		// reindex) — fall through to a linear scan as a safety net.
		return s.scanByID(id)
	}
	return e
}

func (s *Store) scanByID(id int) *Entity {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// All returns every live entity, in insertion-id order. The returned
// slice aliases internal storage; callers must not retain it across a
// Remove/Append call.
func (s *Store) All() []*Entity { return s.entities }

// Len is the number of live entities.
func (s *Store) Len() int { return len(s.entities) }

// RemoveSet deletes every entity whose id is in ids, preserving the
// relative order of survivors, then rebuilds the id index.
func (s *Store) RemoveSet(ids map[int]bool) {
	if len(ids) == 0 {
		return
	}
	survivors := s.entities[:0]
	for _, e := range s.entities {
		if !ids[e.ID] {
			survivors = append(survivors, e)
		}
	}
	s.entities = survivors
	s.reindex()
}

func (s *Store) reindex() {
	s.index = intintmap.New(len(s.entities)+16, 0.75)
	for i, e := range s.entities {
		s.index.Put(int64(e.ID), int64(i))
	}
}
