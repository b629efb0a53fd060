package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/nutrition"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeLookup serves canned nutrition records and counts calls
type fakeLookup struct {
	mu      sync.Mutex
	records map[string][]models.NutritionRecord
	err     error
	calls   int
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{records: map[string][]models.NutritionRecord{
		"orange":    {{Name: "orange", Calories: 47, ServingSizeG: 100, SodiumMg: 1, SugarG: 9}},
		"spaghetti": {{Name: "spaghetti", Calories: 158, ServingSizeG: 100, SodiumMg: 1, SugarG: 0.6}},
		"apple pie": {
			{Name: "apple", Calories: 47, ServingSizeG: 100, SodiumMg: 1, SugarG: 10},
			{Name: "pie", Calories: 42, ServingSizeG: 100, SodiumMg: 201, SugarG: 3},
		},
		"salad":     {{Name: "salad", Calories: 20, ServingSizeG: 100, SodiumMg: 30, SugarG: 2}},
		"steak":     {{Name: "steak", Calories: 250, ServingSizeG: 100, SodiumMg: 60, SugarG: 0}},
		"ice cream": {{Name: "ice cream", Calories: 200, ServingSizeG: 100, SodiumMg: 80, SugarG: 21}},
		"lasagna":   {{Name: "lasagna", Calories: 400, ServingSizeG: 100, SodiumMg: 900, SugarG: 5}},
	}}
}

func (f *fakeLookup) Lookup(ctx context.Context, query string) ([]models.NutritionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records[query], nil
}

func (f *fakeLookup) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var _ nutrition.Client = (*fakeLookup)(nil)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db, &models.Dish{}, &models.Meal{}, &models.Diet{})
	require.NoError(t, err)

	return db
}

type testStores struct {
	db     *gorm.DB
	lookup *fakeLookup
	dishes DishService
	meals  MealService
	diets  DietService
}

func setupStores(t *testing.T) *testStores {
	db := setupTestDB(t)
	lookup := newFakeLookup()

	dishes, err := NewDishService(db, lookup)
	require.NoError(t, err)
	meals, err := NewMealService(db, dishes)
	require.NoError(t, err)
	diets, err := NewDietService(db)
	require.NoError(t, err)

	return &testStores{db: db, lookup: lookup, dishes: dishes, meals: meals, diets: diets}
}

// mustCreateDishes creates the named dishes and returns their ids in order
func (s *testStores) mustCreateDishes(t *testing.T, names ...string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		dish, err := s.dishes.CreateDish(context.Background(), name)
		require.NoError(t, err, fmt.Sprintf("creating dish %q", name))
		ids = append(ids, dish.ID)
	}
	return ids
}
