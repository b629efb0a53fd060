package services

import (
	"context"
	"errors"
	"testing"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDietLookup struct {
	err error
}

func (f failingDietLookup) GetDietByName(ctx context.Context, name string) (models.Diet, bool, error) {
	return models.Diet{}, false, f.err
}

func TestMealsForDiet(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()
	ids := stores.mustCreateDishes(t, "salad", "steak", "ice cream", "lasagna", "orange")
	light, err := stores.meals.CreateMeal(ctx, "light", ids[0], ids[1], ids[2])
	require.NoError(t, err)
	_, err = stores.meals.CreateMeal(ctx, "heavy", ids[3], ids[1], ids[2])
	require.NoError(t, err)
	_, err = stores.meals.CreateMeal(ctx, "fruity", ids[4], ids[0], ids[4])
	require.NoError(t, err)
	_, err = stores.diets.CreateDiet(ctx, "balanced", 500, 500, 500)
	require.NoError(t, err)
	_, err = stores.diets.CreateDiet(ctx, "strict", 10, 10, 10)
	require.NoError(t, err)

	_, _, err = stores.dishes.DeleteDishByName(ctx, "orange")
	require.NoError(t, err)

	filter := NewMealFilter(stores.meals, stores.diets)

	meals, err := filter.MealsForDiet(ctx, "balanced")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, light.ID, meals[0].ID)

	meals, err = filter.MealsForDiet(ctx, "strict")
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestMealsForDietBoundaryIsInclusive(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()
	ids := stores.mustCreateDishes(t, "salad", "steak", "ice cream")
	_, err := stores.meals.CreateMeal(ctx, "dinner", ids[0], ids[1], ids[2])
	require.NoError(t, err)
	_, err = stores.diets.CreateDiet(ctx, "exact", 470, 170, 23)
	require.NoError(t, err)

	meals, err := NewMealFilter(stores.meals, stores.diets).MealsForDiet(ctx, "exact")

	require.NoError(t, err)
	assert.Len(t, meals, 1)
}

func TestMealsForDietFailures(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()

	_, err := NewMealFilter(stores.meals, stores.diets).MealsForDiet(ctx, "unknown")
	assert.ErrorIs(t, err, ErrDietNotFound)

	_, err = NewMealFilter(stores.meals, failingDietLookup{err: errors.New("connection refused")}).MealsForDiet(ctx, "any")
	assert.ErrorIs(t, err, ErrDietServiceUnavailable)

	_, err = NewMealFilter(stores.meals, failingDietLookup{err: ErrDietServiceUnavailable}).MealsForDiet(ctx, "any")
	assert.ErrorIs(t, err, ErrDietServiceUnavailable)
}
