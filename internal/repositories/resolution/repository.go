// Package resolution caches entity resolutions: the mapping from a
// game ID searched under a locale to the remote service's UUID for the
// same entity.
//
// The cache is strictly optional. Resolutions are stable unless the
// service re-seeds its database, so entries carry a TTL rather than any
// invalidation protocol.
package resolution

import "context"

//go:generate mockgen -destination=mock/mock_repository.go -package=resolutionmock -source=repository.go

// Key identifies one resolution.
type Key struct {
	// Kind is the search kind the resolution was made under, e.g.
	// "characters" or "weapons".
	Kind string
	// GranblueID is the game's master ID, as a decimal string.
	GranblueID string
	// Locale is the locale the entity was searched in.
	Locale string
}

// Entry is one cached resolution.
type Entry struct {
	// ServiceID is the remote service's UUID for the entity.
	ServiceID string `json:"service_id"`
	// ResolvedAt is when the resolution was made, unix seconds.
	ResolvedAt int64 `json:"resolved_at"`
}

// GetInput holds the parameters for Repository.Get.
type GetInput struct {
	Key Key
}

// GetOutput holds the result of Repository.Get.
type GetOutput struct {
	Entry *Entry
}

// PutInput holds the parameters for Repository.Put.
type PutInput struct {
	Key       Key
	ServiceID string
}

// PutOutput holds the result of Repository.Put.
type PutOutput struct {
	Entry *Entry
}

// Repository stores entity resolutions.
type Repository interface {
	// Get returns the cached resolution for a key. A miss is a NotFound
	// error.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a resolution, replacing any previous one for the key.
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
