package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDishFromRecords(t *testing.T) {
	dish := NewDishFromRecords("apple pie", []NutritionRecord{
		{Name: "apple", Calories: 47, ServingSizeG: 100, SodiumMg: 1, SugarG: 10.3},
		{Name: "pie", Calories: 42, ServingSizeG: 100, SodiumMg: 201, SugarG: 3.5},
	})

	assert.Equal(t, "apple pie", dish.Name)
	assert.Equal(t, 89.0, dish.Calories)
	assert.Equal(t, 200.0, dish.Size)
	assert.Equal(t, 202.0, dish.Sodium)
	assert.InDelta(t, 13.8, dish.Sugar, 1e-9)
}

func TestNewMealTotals(t *testing.T) {
	a := Dish{ID: 1, Calories: 10, Sodium: 1, Sugar: 2}
	m := Dish{ID: 2, Calories: 100, Sodium: 10, Sugar: 20}
	d := Dish{ID: 3, Calories: 1000, Sodium: 100, Sugar: 200}

	meal := NewMeal(7, "dinner", a, m, d)
	reordered := NewMeal(8, "dinner-reordered", d, a, m)

	require.True(t, meal.IsActive())
	assert.Equal(t, 1110.0, *meal.Calories)
	assert.Equal(t, 111.0, *meal.Sodium)
	assert.Equal(t, 222.0, *meal.Sugar)
	assert.Equal(t, *meal.Calories, *reordered.Calories)
	assert.Equal(t, *meal.Sodium, *reordered.Sodium)
	assert.Equal(t, *meal.Sugar, *reordered.Sugar)
}

func TestMealInvalidate(t *testing.T) {
	testCases := []struct {
		name        string
		dishID      int
		wantMatched bool
	}{
		{name: "appetizer slot", dishID: 1, wantMatched: true},
		{name: "main slot", dishID: 2, wantMatched: true},
		{name: "dessert slot", dishID: 3, wantMatched: true},
		{name: "unrelated dish", dishID: 4, wantMatched: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			meal := NewMeal(1, "lunch", Dish{ID: 1}, Dish{ID: 2}, Dish{ID: 3})

			matched := meal.Invalidate(tt.dishID)

			assert.Equal(t, tt.wantMatched, matched)
			if tt.wantMatched {
				assert.Equal(t, MealDegraded, meal.State())
				assert.Nil(t, meal.Calories)
				assert.Nil(t, meal.Sodium)
				assert.Nil(t, meal.Sugar)
			} else {
				assert.Equal(t, MealActive, meal.State())
			}
		})
	}
}

func TestMealInvalidateChecksEverySlot(t *testing.T) {
	meal := NewMeal(1, "odd", Dish{ID: 5}, Dish{ID: 6}, Dish{ID: 5})

	assert.True(t, meal.Invalidate(5))
	assert.Nil(t, meal.Appetizer)
	assert.Nil(t, meal.Dessert)
	require.NotNil(t, meal.Main)
	assert.Equal(t, 6, *meal.Main)
}

func TestMealFitsDiet(t *testing.T) {
	diet := Diet{Name: "low", Calories: 500, Sodium: 500, Sugar: 500}

	fits := NewMeal(1, "fits", Dish{ID: 1, Calories: 100}, Dish{ID: 2, Calories: 200}, Dish{ID: 3, Calories: 200})
	over := NewMeal(2, "over", Dish{ID: 1, Calories: 100}, Dish{ID: 2, Calories: 200}, Dish{ID: 3, Sugar: 501})
	degraded := NewMeal(3, "degraded", Dish{ID: 1}, Dish{ID: 2}, Dish{ID: 3})
	degraded.Invalidate(2)

	assert.True(t, fits.FitsDiet(diet))
	assert.False(t, over.FitsDiet(diet))
	assert.False(t, degraded.FitsDiet(diet))
}
