package models

// Diet holds nutrition ceilings used to filter meals.
// The id is internal and never serialized.
type Diet struct {
	ID       int     `json:"-" gorm:"primaryKey;autoIncrement:false"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	Calories float64 `json:"cal"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

func (Diet) TableName() string {
	return "diets"
}
