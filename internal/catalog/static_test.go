package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCatalog_IsValid(t *testing.T) {
	t.Parallel()
	definitions, err := DemoCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, definitions)

	for _, def := range definitions {
		assert.NoError(t, def.Validate())
	}
}

func TestStaticDefinitionRepository_LoadCatalogReturnsACopy(t *testing.T) {
	t.Parallel()
	definitions, err := DemoCatalog()
	require.NoError(t, err)
	repo := NewStaticDefinitionRepository(definitions)

	loaded, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, len(definitions))

	loaded[0].ID = "mutated"
	reloaded, err := repo.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", reloaded[0].ID)
}
