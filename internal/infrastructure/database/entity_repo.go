package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"langtoken/internal/domain"
	"langtoken/internal/domain/entities"
	"langtoken/internal/ports/output"
)

var _ output.EntityRepository = (*EntityRepository)(nil)

// EntityRepository stores content entities as one row per entity plus
// one row per (langcode, field) value.
type EntityRepository struct {
	pool *pgxpool.Pool
}

func NewEntityRepository(pool *pgxpool.Pool) *EntityRepository {
	return &EntityRepository{pool: pool}
}

func (r *EntityRepository) Create(ctx context.Context, entity *entities.ContentEntity) error {
	id := entity.ID()
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO entities (id, entity_type, langcode, translatable)
		 VALUES ($1, $2, $3, $4)`,
		id, entity.TypeID(), entity.Langcode(), entity.IsTranslatable(),
	)
	if err != nil {
		return fmt.Errorf("create entity: %w", err)
	}

	for _, langcode := range entity.Langcodes() {
		translation, ok := entity.Translation(langcode).(*entities.ContentEntity)
		if !ok {
			continue
		}
		for _, name := range translation.FieldNames() {
			value, _ := translation.Field(name)
			_, err = tx.Exec(ctx,
				`INSERT INTO entity_fields (entity_id, langcode, name, value)
				 VALUES ($1, $2, $3, $4)`,
				id, langcode, name, value,
			)
			if err != nil {
				return fmt.Errorf("create field %s[%s]: %w", name, langcode, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *EntityRepository) FindByID(ctx context.Context, entityTypeID, id string) (*entities.ContentEntity, error) {
	var langcode string
	var translatable bool
	err := r.pool.QueryRow(ctx,
		`SELECT langcode, translatable FROM entities WHERE entity_type = $1 AND id = $2`,
		entityTypeID, id,
	).Scan(&langcode, &translatable)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEntityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entity %s/%s: %w", entityTypeID, id, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT langcode, name, value FROM entity_fields WHERE entity_id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get fields for %s: %w", id, err)
	}
	defer rows.Close()

	return entityFromRows(entityTypeID, id, langcode, translatable, rows)
}

func (r *EntityRepository) Delete(ctx context.Context, entityTypeID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM entities WHERE entity_type = $1 AND id = $2`,
		entityTypeID, id,
	)
	if err != nil {
		return fmt.Errorf("delete entity %s/%s: %w", entityTypeID, id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}
