package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/nutrition"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DishDeletedHook runs inside the transaction that deletes a dish.
// Returning an error rolls the deletion back.
type DishDeletedHook func(tx *gorm.DB, dishID int) error

// Lock order is dish store, then any guard passed in by a collaborating
// store, then the database connection. No mutex is ever acquired while a
// connection is held; SQLite runs on a single pooled connection.
type deleteHook struct {
	guard sync.Locker
	fn    DishDeletedHook
}

// DishService owns the dishes table
type DishService interface {
	// GetAllDishes returns every dish in insertion order
	GetAllDishes(ctx context.Context) ([]models.Dish, error)
	// CreateDish looks name up upstream and stores the summed nutrition values
	CreateDish(ctx context.Context, name string) (models.Dish, error)
	// GetDishByID returns the dish and whether it exists
	GetDishByID(ctx context.Context, id int) (models.Dish, bool, error)
	// GetDishByName returns the dish with exactly this name and whether it exists
	GetDishByName(ctx context.Context, name string) (models.Dish, bool, error)
	// DeleteDishByID removes the dish and runs the deletion hooks in the same transaction
	DeleteDishByID(ctx context.Context, id int) (int, bool, error)
	// DeleteDishByName removes the dish with exactly this name
	DeleteDishByName(ctx context.Context, name string) (int, bool, error)
	// DishesExist reports whether every id refers to a stored dish
	DishesExist(ctx context.Context, ids []int) (bool, error)
	// ResolveDishes loads the dishes for ids, in order, and runs fn with them
	// inside one transaction while dish writes are blocked and guard is held.
	// Fails with ErrDishReferenceInvalid when any id is missing.
	ResolveDishes(ctx context.Context, ids []int, guard sync.Locker, fn func(tx *gorm.DB, dishes []models.Dish) error) error
	// OnDelete registers a hook run for every deleted dish while guard is held
	OnDelete(guard sync.Locker, hook DishDeletedHook)
}

type dishService struct {
	mu     sync.RWMutex
	db     *gorm.DB
	lookup nutrition.Client
	seq    *database.Sequence
	hooks  []deleteHook
}

// NewDishService creates a DishService backed by db that resolves new dishes through lookup
func NewDishService(db *gorm.DB, lookup nutrition.Client) (DishService, error) {
	seq, err := database.LoadSequence(db, "dishes", &models.Dish{})
	if err != nil {
		return nil, err
	}
	return &dishService{db: db, lookup: lookup, seq: seq}, nil
}

func (s *dishService) OnDelete(guard sync.Locker, hook DishDeletedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, deleteHook{guard: guard, fn: hook})
}

func (s *dishService) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dishes := []models.Dish{}
	if err := s.db.WithContext(ctx).Order("id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// CreateDish holds the write lock across the duplicate check, the upstream
// call and the insert, so two concurrent creates of one name cannot both succeed.
func (s *dishService) CreateDish(ctx context.Context, name string) (models.Dish, error) {
	if strings.TrimSpace(name) == "" {
		return models.Dish{}, fmt.Errorf("%w: dish name is required", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Checked before the upstream call so duplicates never reach it
	if _, found, err := findDish(s.db.WithContext(ctx), "name = ?", name); err != nil {
		return models.Dish{}, err
	} else if found {
		log.WithField("dish", name).Info("Dish already exists")
		return models.Dish{}, fmt.Errorf("%w: dish %q", ErrDuplicateName, name)
	}

	records, err := s.lookup.Lookup(ctx, name)
	if err != nil {
		return models.Dish{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(records) == 0 {
		log.WithField("dish", name).Info("Nutrition lookup does not recognize dish")
		return models.Dish{}, fmt.Errorf("%w: %q", ErrNotRecognized, name)
	}

	dish := models.NewDishFromRecords(name, records)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.seq.Next(tx)
		if err != nil {
			return err
		}
		dish.ID = id
		return tx.Create(&dish).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Dish{}, fmt.Errorf("%w: dish %q", ErrDuplicateName, name)
	}
	if err != nil {
		return models.Dish{}, err
	}

	log.WithFields(logrus.Fields{
		"dish_id": dish.ID,
		"dish":    dish.Name,
		"records": len(records),
	}).Info("Dish created")
	return dish, nil
}

func (s *dishService) GetDishByID(ctx context.Context, id int) (models.Dish, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findDish(s.db.WithContext(ctx), "id = ?", id)
}

func (s *dishService) GetDishByName(ctx context.Context, name string) (models.Dish, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findDish(s.db.WithContext(ctx), "name = ?", name)
}

func (s *dishService) DeleteDishByID(ctx context.Context, id int) (int, bool, error) {
	return s.deleteDish(ctx, "id = ?", id)
}

func (s *dishService) DeleteDishByName(ctx context.Context, name string) (int, bool, error) {
	return s.deleteDish(ctx, "name = ?", name)
}

// deleteDish removes a single dish and runs every hook in the same
// transaction, so referencing meals are invalidated before the caller sees success.
func (s *dishService) deleteDish(ctx context.Context, query string, arg interface{}) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, hook := range s.hooks {
		hook.guard.Lock()
		defer hook.guard.Unlock()
	}

	var (
		deleted models.Dish
		found   bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, found, err = findDish(tx, query, arg)
		if err != nil || !found {
			return err
		}
		if err := tx.Delete(&models.Dish{}, deleted.ID).Error; err != nil {
			return err
		}
		for _, hook := range s.hooks {
			if err := hook.fn(tx, deleted.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}

	log.WithFields(logrus.Fields{
		"dish_id": deleted.ID,
		"dish":    deleted.Name,
	}).Info("Dish deleted")
	return deleted.ID, true, nil
}

func (s *dishService) DishesExist(ctx context.Context, ids []int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, missing, err := loadDishes(s.db.WithContext(ctx), ids)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

func (s *dishService) ResolveDishes(ctx context.Context, ids []int, guard sync.Locker, fn func(tx *gorm.DB, dishes []models.Dish) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guard.Lock()
	defer guard.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dishes, missing, err := loadDishes(tx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %v", ErrDishReferenceInvalid, missing)
		}
		return fn(tx, dishes)
	})
}

// findDish returns the first dish matching query; a missing row is not an error
func findDish(db *gorm.DB, query string, arg interface{}) (models.Dish, bool, error) {
	var dishes []models.Dish
	if err := db.Where(query, arg).Limit(1).Find(&dishes).Error; err != nil {
		return models.Dish{}, false, err
	}
	if len(dishes) == 0 {
		return models.Dish{}, false, nil
	}
	return dishes[0], true, nil
}

// loadDishes returns the dishes for ids in the order given, plus the ids that do not exist
func loadDishes(db *gorm.DB, ids []int) ([]models.Dish, []int, error) {
	var rows []models.Dish
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
	}
	byID := make(map[int]models.Dish, len(rows))
	for _, d := range rows {
		byID[d.ID] = d
	}

	dishes := make([]models.Dish, 0, len(ids))
	var missing []int
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		dishes = append(dishes, d)
	}
	return dishes, missing, nil
}
