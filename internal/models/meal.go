package models

// MealState describes whether a meal's totals can still be trusted
type MealState string

const (
	// MealActive meals reference three existing dishes and carry numeric totals
	MealActive MealState = "ACTIVE"
	// MealDegraded meals lost at least one dish; their totals are unknown
	MealDegraded MealState = "DEGRADED"
)

// Meal is a named composite of an appetizer, a main and a dessert.
// Dish references and totals are nullable: deleting a referenced dish
// clears the slot and all three totals.
type Meal struct {
	ID        int      `json:"ID" gorm:"primaryKey;autoIncrement:false"`
	Name      string   `json:"name" gorm:"uniqueIndex;not null"`
	Appetizer *int     `json:"appetizer" gorm:"index"`
	Main      *int     `json:"main" gorm:"index"`
	Dessert   *int     `json:"dessert" gorm:"index"`
	Calories  *float64 `json:"cal"`
	Sodium    *float64 `json:"sodium"`
	Sugar     *float64 `json:"sugar"`
}

func (Meal) TableName() string {
	return "meals"
}

// State reports Active only when every reference and every total is known
func (m Meal) State() MealState {
	if m.Appetizer == nil || m.Main == nil || m.Dessert == nil ||
		m.Calories == nil || m.Sodium == nil || m.Sugar == nil {
		return MealDegraded
	}
	return MealActive
}

// IsActive is shorthand for State() == MealActive
func (m Meal) IsActive() bool {
	return m.State() == MealActive
}

// NewMeal composes a meal and computes its totals from the three dishes
func NewMeal(id int, name string, appetizer, main, dessert Dish) Meal {
	meal := Meal{ID: id, Name: name}
	meal.SetCourses(appetizer, main, dessert)
	return meal
}

// SetCourses overwrites all three references and recomputes the totals
func (m *Meal) SetCourses(appetizer, main, dessert Dish) {
	cal := appetizer.Calories + main.Calories + dessert.Calories
	sodium := appetizer.Sodium + main.Sodium + dessert.Sodium
	sugar := appetizer.Sugar + main.Sugar + dessert.Sugar

	m.Appetizer = intPtr(appetizer.ID)
	m.Main = intPtr(main.ID)
	m.Dessert = intPtr(dessert.ID)
	m.Calories = &cal
	m.Sodium = &sodium
	m.Sugar = &sugar
}

// Invalidate clears every slot that points at dishID. When any slot matched,
// the totals are cleared too and true is returned. All three slots are
// checked on every call.
func (m *Meal) Invalidate(dishID int) bool {
	matched := false
	for _, slot := range []**int{&m.Appetizer, &m.Main, &m.Dessert} {
		if *slot != nil && **slot == dishID {
			*slot = nil
			matched = true
		}
	}
	if matched {
		m.Calories, m.Sodium, m.Sugar = nil, nil, nil
	}
	return matched
}

// FitsDiet reports whether an active meal stays within every ceiling of the diet.
// Degraded meals never fit.
func (m Meal) FitsDiet(diet Diet) bool {
	if !m.IsActive() {
		return false
	}
	return *m.Calories <= diet.Calories && *m.Sodium <= diet.Sodium && *m.Sugar <= diet.Sugar
}

func intPtr(v int) *int {
	return &v
}
