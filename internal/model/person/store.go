package person

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate person id")
	// ErrInvalidAge is returned for a negative age.
	ErrInvalidAge = errors.New("invalid person age")
	// ErrInvalidID is returned for an id outside the 32-bit range GraphQL Int
	// can carry.
	ErrInvalidID = errors.New("invalid person id")
)

// Store exposes read-only access to people.
type Store interface {
	List() []Person
	FindByID(id int) (Person, bool)
	Len() int
}

// MemoryStore implements Store over a slice fixed at construction.
type MemoryStore struct {
	items []Person
}

// NewMemoryStore copies items into a new store after checking ids are unique
// 32-bit values and ages are non-negative.
func NewMemoryStore(items []Person) (*MemoryStore, error) {
	seen := make(map[int]int, len(items))
	for i, item := range items {
		if item.ID < math.MinInt32 || item.ID > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d at position %d is outside the 32-bit range", ErrInvalidID, item.ID, i)
		}

		if prev, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicateID, item.ID, prev, i)
		}
		seen[item.ID] = i

		if item.Age < 0 {
			return nil, fmt.Errorf("%w: id %d has age %d", ErrInvalidAge, item.ID, item.Age)
		}
	}
	return &MemoryStore{items: append([]Person(nil), items...)}, nil
}

// Open builds a store from the fixture at path, or from Seed when path is
// empty.
func Open(path string) (*MemoryStore, error) {
	if path == "" {
		return NewMemoryStore(Seed())
	}

	people, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(people)
}

// MustMemoryStore is NewMemoryStore for fixtures known to be valid.
func MustMemoryStore(items []Person) *MemoryStore {
	s, err := NewMemoryStore(items)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns every person in definition order.
func (s *MemoryStore) List() []Person {
	return append([]Person(nil), s.items...)
}

// Len reports how many people the store holds.
func (s *MemoryStore) Len() int {
	return len(s.items)
}

// FindByID returns the first person whose ID equals id.
func (s *MemoryStore) FindByID(id int) (Person, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Person{}, false
}
