package model

// All returns every persisted model, in dependency order.
func All() []any {
	return []any{
		&FoodModel{},
		&GoalModel{},
		&MealModel{},
		&MealItemModel{},
	}
}
