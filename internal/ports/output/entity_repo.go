package output

import (
	"context"

	"langtoken/internal/domain/entities"
)

// EntityRepository persists content entities and their translations.
type EntityRepository interface {
	// Create stores the entity with every translation it carries. A
	// missing ID is generated and written back.
	Create(ctx context.Context, entity *entities.ContentEntity) error
	// FindByID loads an entity with all its translations. Returns
	// domain.ErrEntityNotFound when no row matches.
	FindByID(ctx context.Context, entityTypeID, id string) (*entities.ContentEntity, error)
	Delete(ctx context.Context, entityTypeID, id string) error
}
