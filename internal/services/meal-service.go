package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MealService owns the meals table and keeps meal totals consistent with the dishes they reference
type MealService interface {
	// GetAllMeals returns every meal, including degraded ones, in insertion order
	GetAllMeals(ctx context.Context) ([]models.Meal, error)
	// CreateMeal stores a meal whose totals are summed from the three referenced dishes
	CreateMeal(ctx context.Context, name string, appetizerID, mainID, dessertID int) (models.Meal, error)
	// ReplaceMeal overwrites the name, references and totals of an existing meal, keeping its id
	ReplaceMeal(ctx context.Context, id int, name string, appetizerID, mainID, dessertID int) (models.Meal, error)
	// GetMealByID returns the meal and whether it exists
	GetMealByID(ctx context.Context, id int) (models.Meal, bool, error)
	// GetMealByName returns the meal with exactly this name and whether it exists
	GetMealByName(ctx context.Context, name string) (models.Meal, bool, error)
	// DeleteMealByID removes the meal and returns its id
	DeleteMealByID(ctx context.Context, id int) (int, bool, error)
	// DeleteMealByName removes the meal with exactly this name
	DeleteMealByName(ctx context.Context, name string) (int, bool, error)
	// InvalidateReferencesTo clears every slot pointing at dishID and the totals of those meals
	InvalidateReferencesTo(ctx context.Context, dishID int) error
}

type mealService struct {
	mu     sync.RWMutex
	db     *gorm.DB
	dishes DishService
	seq    *database.Sequence
}

// NewMealService creates a MealService backed by db. It resolves dish
// references through dishes and subscribes to dish deletions so referencing
// meals are degraded in the same transaction as the deletion.
func NewMealService(db *gorm.DB, dishes DishService) (MealService, error) {
	seq, err := database.LoadSequence(db, "meals", &models.Meal{})
	if err != nil {
		return nil, err
	}
	s := &mealService{db: db, dishes: dishes, seq: seq}
	dishes.OnDelete(&s.mu, s.invalidate)
	return s, nil
}

func (s *mealService) GetAllMeals(ctx context.Context) ([]models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meals := []models.Meal{}
	if err := s.db.WithContext(ctx).Order("id").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// CreateMeal validates the references and inserts under one acquisition of
// both stores, so a dish cannot disappear between the check and the insert.
func (s *mealService) CreateMeal(ctx context.Context, name string, appetizerID, mainID, dessertID int) (models.Meal, error) {
	if strings.TrimSpace(name) == "" {
		return models.Meal{}, fmt.Errorf("%w: meal name is required", ErrInvalidRequest)
	}

	var meal models.Meal
	ids := []int{appetizerID, mainID, dessertID}
	err := s.dishes.ResolveDishes(ctx, ids, &s.mu, func(tx *gorm.DB, dishes []models.Dish) error {
		if _, found, err := findMeal(tx, "name = ?", name); err != nil {
			return err
		} else if found {
			return fmt.Errorf("%w: meal %q", ErrDuplicateName, name)
		}

		id, err := s.seq.Next(tx)
		if err != nil {
			return err
		}
		meal = models.NewMeal(id, name, dishes[0], dishes[1], dishes[2])
		return tx.Create(&meal).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Meal{}, fmt.Errorf("%w: meal %q", ErrDuplicateName, name)
	}
	if err != nil {
		return models.Meal{}, err
	}

	log.WithFields(logrus.Fields{
		"meal_id":   meal.ID,
		"meal":      meal.Name,
		"appetizer": appetizerID,
		"main":      mainID,
		"dessert":   dessertID,
	}).Info("Meal created")
	return meal, nil
}

// ReplaceMeal is a full overwrite: a degraded meal comes back active.
func (s *mealService) ReplaceMeal(ctx context.Context, id int, name string, appetizerID, mainID, dessertID int) (models.Meal, error) {
	if strings.TrimSpace(name) == "" {
		return models.Meal{}, fmt.Errorf("%w: meal name is required", ErrInvalidRequest)
	}

	var meal models.Meal
	ids := []int{appetizerID, mainID, dessertID}
	err := s.dishes.ResolveDishes(ctx, ids, &s.mu, func(tx *gorm.DB, dishes []models.Dish) error {
		existing, found, err := findMeal(tx, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: meal %d", ErrNotFound, id)
		}

		if other, found, err := findMeal(tx, "name = ?", name); err != nil {
			return err
		} else if found && other.ID != existing.ID {
			return fmt.Errorf("%w: meal %q", ErrDuplicateName, name)
		}

		meal = models.NewMeal(existing.ID, name, dishes[0], dishes[1], dishes[2])
		return tx.Save(&meal).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Meal{}, fmt.Errorf("%w: meal %q", ErrDuplicateName, name)
	}
	if err != nil {
		return models.Meal{}, err
	}

	log.WithFields(logrus.Fields{
		"meal_id": meal.ID,
		"meal":    meal.Name,
	}).Info("Meal replaced")
	return meal, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id int) (models.Meal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findMeal(s.db.WithContext(ctx), "id = ?", id)
}

func (s *mealService) GetMealByName(ctx context.Context, name string) (models.Meal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findMeal(s.db.WithContext(ctx), "name = ?", name)
}

func (s *mealService) DeleteMealByID(ctx context.Context, id int) (int, bool, error) {
	return s.deleteMeal(ctx, "id = ?", id)
}

func (s *mealService) DeleteMealByName(ctx context.Context, name string) (int, bool, error) {
	return s.deleteMeal(ctx, "name = ?", name)
}

func (s *mealService) deleteMeal(ctx context.Context, query string, arg interface{}) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		deleted models.Meal
		found   bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, found, err = findMeal(tx, query, arg)
		if err != nil || !found {
			return err
		}
		return tx.Delete(&models.Meal{}, deleted.ID).Error
	})
	if err != nil || !found {
		return 0, false, err
	}

	log.WithFields(logrus.Fields{
		"meal_id": deleted.ID,
		"meal":    deleted.Name,
	}).Info("Meal deleted")
	return deleted.ID, true, nil
}

func (s *mealService) InvalidateReferencesTo(ctx context.Context, dishID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.invalidate(tx, dishID)
	})
}

// invalidate degrades every meal referencing dishID. It runs with the meal
// lock held, either from InvalidateReferencesTo or from a dish deletion.
func (s *mealService) invalidate(tx *gorm.DB, dishID int) error {
	var meals []models.Meal
	err := tx.Where("appetizer = ? OR main = ? OR dessert = ?", dishID, dishID, dishID).
		Order("id").Find(&meals).Error
	if err != nil {
		return err
	}

	for i := range meals {
		if !meals[i].Invalidate(dishID) {
			continue
		}
		if err := tx.Save(&meals[i]).Error; err != nil {
			return fmt.Errorf("invalidating meal %d: %w", meals[i].ID, err)
		}
		log.WithFields(logrus.Fields{
			"meal_id": meals[i].ID,
			"dish_id": dishID,
		}).Info("Meal degraded after dish deletion")
	}
	return nil
}

// findMeal returns the first meal matching query; a missing row is not an error
func findMeal(db *gorm.DB, query string, arg interface{}) (models.Meal, bool, error) {
	var meals []models.Meal
	if err := db.Where(query, arg).Limit(1).Find(&meals).Error; err != nil {
		return models.Meal{}, false, err
	}
	if len(meals) == 0 {
		return models.Meal{}, false, nil
	}
	return meals[0], true, nil
}
