package catalog

import (
	"context"

	"tunebox/internal/models"
)

// Service defines the interface for catalog providers that expose a browsable
// chart of songs and single-track lookup.
type Service interface {
	// ListCatalog pages through the provider's chart and returns the
	// normalized songs as one flat, provider-ordered sequence.
	ListCatalog(ctx context.Context) ([]models.Song, error)

	// GetSong retrieves a single song by the provider's identifier.
	GetSong(ctx context.Context, id int64) (*models.Song, error)

	// Name returns the name of the provider (e.g., "Deezer")
	Name() string
}
