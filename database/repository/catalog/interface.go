package catalogRepo

import (
	"context"

	"emviapp/models"
)

// ServiceCatalogRepository defines methods for service catalog access.
type ServiceCatalogRepository interface {
	// GetByID retrieves a catalog service by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ListByArtist retrieves the active services offered by an artist.
	ListByArtist(ctx context.Context, artistID string) ([]models.Service, error)
	// Create inserts a new catalog service.
	Create(ctx context.Context, service *models.Service) error
}
