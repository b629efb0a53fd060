package models

// Dish is a named food item whose nutrition values are a snapshot of the
// upstream lookup taken when the dish was created.
type Dish struct {
	ID       int     `json:"ID" gorm:"primaryKey;autoIncrement:false"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	Calories float64 `json:"cal"`
	Size     float64 `json:"size"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

func (Dish) TableName() string {
	return "dishes"
}

// NutritionRecord is a single record returned by the nutrition lookup API
type NutritionRecord struct {
	Name         string  `json:"name"`
	Calories     float64 `json:"calories"`
	ServingSizeG float64 `json:"serving_size_g"`
	SodiumMg     float64 `json:"sodium_mg"`
	SugarG       float64 `json:"sugar_g"`
}

// NewDishFromRecords builds a dish by summing every upstream record.
// Multi-word dishes ("apple pie") resolve to one record per ingredient.
func NewDishFromRecords(name string, records []NutritionRecord) Dish {
	dish := Dish{Name: name}
	for _, r := range records {
		dish.Calories += r.Calories
		dish.Size += r.ServingSizeG
		dish.Sodium += r.SodiumMg
		dish.Sugar += r.SugarG
	}
	return dish
}
