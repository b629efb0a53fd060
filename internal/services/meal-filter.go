package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
)

// MealFilter answers "which meals fit this diet". Diets may live in another
// service, so the diet is resolved through a DietLookup.
type MealFilter struct {
	meals MealService
	diets DietLookup
}

// NewMealFilter creates a MealFilter reading meals from meals and diets from diets
func NewMealFilter(meals MealService, diets DietLookup) *MealFilter {
	return &MealFilter{meals: meals, diets: diets}
}

// MealsForDiet returns, in listing order, the active meals whose calories,
// sodium and sugar are each at most the diet's ceiling. Degraded meals are
// excluded, never reported as errors.
func (f *MealFilter) MealsForDiet(ctx context.Context, dietName string) ([]models.Meal, error) {
	diet, found, err := f.diets.GetDietByName(ctx, dietName)
	if err != nil {
		if errors.Is(err, ErrDietServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDietServiceUnavailable, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrDietNotFound, dietName)
	}

	meals, err := f.meals.GetAllMeals(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []models.Meal{}
	for _, meal := range meals {
		if meal.FitsDiet(diet) {
			filtered = append(filtered, meal)
		}
	}

	log.WithFields(logrus.Fields{
		"diet":     diet.Name,
		"meals":    len(meals),
		"matching": len(filtered),
	}).Debug("Meals filtered by diet")
	return filtered, nil
}
