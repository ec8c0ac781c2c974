package database

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"langtoken/internal/domain/entities"
)

// entityFromRows assembles a ContentEntity from its field rows.
func entityFromRows(entityTypeID, id, langcode string, translatable bool, rows pgx.Rows) (*entities.ContentEntity, error) {
	var entity *entities.ContentEntity
	if translatable {
		entity = entities.NewContentEntity(entityTypeID, id, langcode)
	} else {
		entity = entities.NewUntranslatableEntity(entityTypeID, id, langcode)
	}

	for rows.Next() {
		var fieldLangcode, name, value string
		if err := rows.Scan(&fieldLangcode, &name, &value); err != nil {
			return nil, fmt.Errorf("scan field row: %w", err)
		}
		entity.SetField(fieldLangcode, name, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read field rows: %w", err)
	}
	return entity, nil
}
