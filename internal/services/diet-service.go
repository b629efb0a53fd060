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

// DietLookup resolves a diet by name. found is false when no such diet
// exists; an error means the lookup itself could not be completed.
type DietLookup interface {
	GetDietByName(ctx context.Context, name string) (models.Diet, bool, error)
}

// DietService owns the diets table. Diets are immutable once created.
type DietService interface {
	DietLookup
	// GetAllDiets returns every diet in insertion order
	GetAllDiets(ctx context.Context) ([]models.Diet, error)
	// CreateDiet stores a diet with caller supplied ceilings
	CreateDiet(ctx context.Context, name string, calories, sodium, sugar float64) (models.Diet, error)
}

type dietService struct {
	mu  sync.RWMutex
	db  *gorm.DB
	seq *database.Sequence
}

// NewDietService creates a DietService backed by db
func NewDietService(db *gorm.DB) (DietService, error) {
	seq, err := database.LoadSequence(db, "diets", &models.Diet{})
	if err != nil {
		return nil, err
	}
	return &dietService{db: db, seq: seq}, nil
}

func (s *dietService) GetAllDiets(ctx context.Context) ([]models.Diet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diets := []models.Diet{}
	if err := s.db.WithContext(ctx).Order("id").Find(&diets).Error; err != nil {
		return nil, err
	}
	return diets, nil
}

func (s *dietService) CreateDiet(ctx context.Context, name string, calories, sodium, sugar float64) (models.Diet, error) {
	if strings.TrimSpace(name) == "" {
		return models.Diet{}, fmt.Errorf("%w: diet name is required", ErrInvalidRequest)
	}
	// Diets are addressed as /diets/{name}
	if strings.Contains(name, "/") {
		return models.Diet{}, fmt.Errorf("%w: diet name %q must not contain '/'", ErrInvalidRequest, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	diet := models.Diet{Name: name, Calories: calories, Sodium: sodium, Sugar: sugar}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, found, err := findDiet(tx, name); err != nil {
			return err
		} else if found {
			return fmt.Errorf("%w: diet %q", ErrDuplicateName, name)
		}

		id, err := s.seq.Next(tx)
		if err != nil {
			return err
		}
		diet.ID = id
		return tx.Create(&diet).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Diet{}, fmt.Errorf("%w: diet %q", ErrDuplicateName, name)
	}
	if err != nil {
		return models.Diet{}, err
	}

	log.WithFields(logrus.Fields{
		"diet_id": diet.ID,
		"diet":    diet.Name,
	}).Info("Diet created")
	return diet, nil
}

func (s *dietService) GetDietByName(ctx context.Context, name string) (models.Diet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findDiet(s.db.WithContext(ctx), name)
}

func findDiet(db *gorm.DB, name string) (models.Diet, bool, error) {
	var diets []models.Diet
	if err := db.Where("name = ?", name).Limit(1).Find(&diets).Error; err != nil {
		return models.Diet{}, false, err
	}
	if len(diets) == 0 {
		return models.Diet{}, false, nil
	}
	return diets[0], true, nil
}
