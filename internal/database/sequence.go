package database

import (
	"fmt"
	"sync/atomic"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence hands out monotonically increasing ids for one entity kind.
// The last id handed out is persisted in the sequences table inside the
// caller's transaction, so ids are never reused across restarts.
type Sequence struct {
	name    string
	current atomic.Int64
}

// LoadSequence initializes a sequence from the highest of the persisted
// counter and the highest id already stored in model's table.
func LoadSequence(db *gorm.DB, name string, model interface{}) (*Sequence, error) {
	var stored models.Sequence
	if err := db.Where("name = ?", name).Limit(1).Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("loading sequence %s: %w", name, err)
	}

	var maxID int64
	if err := db.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return nil, fmt.Errorf("reading max id for sequence %s: %w", name, err)
	}

	seq := &Sequence{name: name}
	seq.current.Store(max(int64(stored.Value), maxID))

	log.WithFields(logrus.Fields{
		"sequence": name,
		"current":  seq.Current(),
	}).Debug("Sequence loaded")
	return seq, nil
}

// Next reserves the next id and records it using tx.
// A reserved id is never handed out again, even if tx is rolled back.
func (s *Sequence) Next(tx *gorm.DB) (int, error) {
	id := s.current.Add(1)
	row := models.Sequence{Name: s.name, Value: int(id)}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("advancing sequence %s: %w", s.name, err)
	}
	return int(id), nil
}

// Current returns the last id handed out
func (s *Sequence) Current() int {
	return int(s.current.Load())
}
