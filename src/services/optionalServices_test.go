package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalCatalogSeeded(t *testing.T) {
	ts := newTestServices(t)

	optionals, err := ts.optional.GetAllOptionals()
	require.NoError(t, err)

	names := make([]string, 0, len(optionals))
	for _, optional := range optionals {
		names = append(names, optional.Name)
	}
	assert.ElementsMatch(t, []string{"Ar Condicionado", "Alarme", "Airbag", "Freio ABS"}, names)

	exists, err := ts.optional.Exists(optionals[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ts.optional.Exists(9999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMissingOptionals(t *testing.T) {
	ts := newTestServices(t)

	optionals, err := ts.optional.GetAllOptionals()
	require.NoError(t, err)
	require.NotEmpty(t, optionals)

	missing, err := ts.optional.MissingOptionals([]int{optionals[0].ID, 777, 888})
	require.NoError(t, err)
	assert.Equal(t, []int{777, 888}, missing)

	missing, err = ts.optional.MissingOptionals(nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
