package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pran-droid/brain/internal/reaction"
)

// DefinitionRepository loads the full reaction catalog. Implementations own
// whatever storage backs it; callers only ever see validated domain
// definitions.
type DefinitionRepository interface {
	LoadCatalog(ctx context.Context) ([]reaction.Definition, error)
}

// PostgresDefinitionRepository loads the catalog from a reaction_definitions
// table, one row per definition, triggers and steps stored as JSON columns.
type PostgresDefinitionRepository struct {
	db *gorm.DB
}

// NewPostgresDefinitionRepository wraps an already-connected gorm.DB.
func NewPostgresDefinitionRepository(db *gorm.DB) *PostgresDefinitionRepository {
	return &PostgresDefinitionRepository{db: db}
}

// LoadCatalog implements DefinitionRepository. A single malformed row fails
// the whole load: a partially loaded catalog could silently drop triggers a
// streamer is relying on.
func (r *PostgresDefinitionRepository) LoadCatalog(ctx context.Context) ([]reaction.Definition, error) {
	var rows []definitionRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading reaction catalog: %w", err)
	}

	definitions := make([]reaction.Definition, len(rows))
	for i, row := range rows {
		def, err := row.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		definitions[i] = def
	}
	return definitions, nil
}
