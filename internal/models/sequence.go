package models

// Sequence persists the last id handed out for an entity kind so ids
// are never reused, even after the highest row has been deleted.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int    `gorm:"not null"`
}

func (Sequence) TableName() string {
	return "sequences"
}
