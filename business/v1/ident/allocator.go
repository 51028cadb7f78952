package ident

import "github.com/google/uuid"

// generateAttempts bounds the defensive re-check of generated identifiers
const generateAttempts = 3

// Availability is the answer to an availability check, nothing is reserved by it
type Availability struct {
	Normalized string
	Legal      bool
	Available  bool
}

// Allocator picks identifiers for new notes
type Allocator struct {
	generate func() string
}

// NewAllocator returns an Allocator generating random uuid v4 identifiers
func NewAllocator() Allocator {
	return Allocator{generate: uuid.NewString}
}

// NewAllocatorWith returns an Allocator using gen for random identifiers, gen must only return legal identifiers
func NewAllocatorWith(gen func() string) Allocator {
	return Allocator{generate: gen}
}

// Allocate returns preferred in normalized form when it is legal and exists reports it free,
// otherwise a random identifier. It never fails: a taken custom identifier silently falls back to a random one.
func (a Allocator) Allocate(preferred string, exists func(id string) bool) string {
	if preferred != "" {
		if n := Normalize(preferred); IsLegal(n) && !exists(n) {
			return n
		}
	}

	id := a.generate()
	for i := 1; i < generateAttempts && exists(id); i++ {
		id = a.generate()
	}
	return id
}

// CheckAvailability reports if candidate would be accepted as is by Allocate right now
func (a Allocator) CheckAvailability(candidate string, exists func(id string) bool) Availability {
	n := Normalize(candidate)
	av := Availability{Normalized: n, Legal: IsLegal(n)}
	if av.Legal {
		av.Available = !exists(n)
	}
	return av
}
