package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDiet(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()

	diet, err := stores.diets.CreateDiet(ctx, "low sodium", 2000, 150, 60)
	require.NoError(t, err)
	assert.Equal(t, "low sodium", diet.Name)
	assert.Positive(t, diet.ID)

	found, ok, err := stores.diets.GetDietByName(ctx, "low sodium")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, diet, found)

	_, err = stores.diets.CreateDiet(ctx, "low sodium", 1, 1, 1)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = stores.diets.CreateDiet(ctx, " ", 1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetAllDiets(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()

	diets, err := stores.diets.GetAllDiets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, diets)
	assert.Empty(t, diets)

	_, err = stores.diets.CreateDiet(ctx, "keto", 1800, 2300, 20)
	require.NoError(t, err)
	_, err = stores.diets.CreateDiet(ctx, "vegan", 2000, 2000, 50)
	require.NoError(t, err)

	diets, err = stores.diets.GetAllDiets(ctx)
	require.NoError(t, err)
	require.Len(t, diets, 2)
	assert.Equal(t, "keto", diets[0].Name)
	assert.Equal(t, "vegan", diets[1].Name)
}

func TestGetDietByNameMissing(t *testing.T) {
	stores := setupStores(t)

	_, found, err := stores.diets.GetDietByName(context.Background(), "paleo")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateDietRejectsSlashInName(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()

	_, err := stores.diets.CreateDiet(ctx, "a/b", 1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	diets, err := stores.diets.GetAllDiets(ctx)
	require.NoError(t, err)
	assert.Empty(t, diets)
}
