//go:build integration

package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
	"github.com/nutritrack/backend/internal/integration/persistence"
	"github.com/nutritrack/backend/test/integration/mock"
)

const foodCacheKeyPrefix = "nutritrack:food:"

func registerNutritionSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^a food "([^"]*)" exists with calories "([^"]*)", protein "([^"]*)", carbs "([^"]*)" and fat "([^"]*)"$`, t.aFoodExistsWith)
	ctx.Given(`^the user has daily targets of calories "([^"]*)", protein "([^"]*)", carbs "([^"]*)" and fat "([^"]*)"$`, t.theUserHasDailyTargets)
	ctx.Given(`^the user has only a daily goal with calories "([^"]*)", protein "([^"]*)", carbs "([^"]*)" and fat "([^"]*)"$`, t.theUserHasOnlyADailyGoal)
	ctx.Given(`^the user logged a "([^"]*)" with "([^"]*)" grams of "([^"]*)" at "([^"]*)"$`, t.theUserLoggedAMeal)
	ctx.Then(`^the food "([^"]*)" should be cached$`, t.theFoodShouldBeCached)
	ctx.Then(`^the food "([^"]*)" should not be cached$`, t.theFoodShouldNotBeCached)
}

func parseNutrients(calories, protein, carbs, fat string) (entity.Nutrients, error) {
	values := make([]decimal.Decimal, 4)
	for i, raw := range []string{calories, protein, carbs, fat} {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return entity.Nutrients{}, fmt.Errorf("invalid nutrient value %q: %w", raw, err)
		}
		values[i] = d
	}
	return entity.Nutrients{
		Calories: values[0],
		Protein:  values[1],
		Carbs:    values[2],
		Fat:      values[3],
	}, nil
}

func (t *testContext) aFoodExistsWith(name, calories, protein, carbs, fat string) error {
	nutrients, err := parseNutrients(calories, protein, carbs, fat)
	if err != nil {
		return err
	}

	food := entity.NewFood(name, nutrients, t.timeMock.Now())
	if err := persistence.NewFoodRepository(t.db.DbConn).Create(context.Background(), food); err != nil {
		return err
	}

	t.foodIDs[name] = food.ID
	t.lastFoodID = food.ID
	return nil
}

func (t *testContext) theUserHasDailyTargets(calories, protein, carbs, fat string) error {
	targets, err := parseNutrients(calories, protein, carbs, fat)
	if err != nil {
		return err
	}

	goals := entity.NewGoalHierarchy(t.userID, targets, t.timeMock.Now())
	if err := persistence.NewGoalRepository(t.db.DbConn).CreateAll(context.Background(), goals); err != nil {
		return err
	}

	for _, g := range goals {
		t.goalIDs[string(g.Type)] = g.ID
	}
	return nil
}

func (t *testContext) theUserHasOnlyADailyGoal(calories, protein, carbs, fat string) error {
	targets, err := parseNutrients(calories, protein, carbs, fat)
	if err != nil {
		return err
	}

	daily := entity.NewGoal(t.userID, entity.GoalTypeDaily, targets, t.timeMock.Now())
	if err := persistence.NewGoalRepository(t.db.DbConn).Create(context.Background(), daily); err != nil {
		return err
	}

	t.goalIDs[string(entity.GoalTypeDaily)] = daily.ID
	return nil
}

func (t *testContext) theUserLoggedAMeal(mealType, quantity, foodName, occurredAt string) error {
	foodID, ok := t.foodIDs[foodName]
	if !ok {
		return fmt.Errorf("food %q was not created in this scenario", foodName)
	}

	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}

	at, err := time.Parse(time.RFC3339, occurredAt)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", occurredAt, err)
	}

	meal := entity.NewMeal(t.userID, entity.MealType(mealType), at, "", []entity.MealItem{{
		FoodID:   foodID,
		Quantity: qty,
		Unit:     entity.UnitGram,
	}}, t.timeMock.Now())
	if err := persistence.NewMealRepository(t.db.DbConn).Create(context.Background(), meal); err != nil {
		return err
	}

	t.lastMealID = meal.ID
	return nil
}

func (t *testContext) theFoodShouldBeCached(name string) error {
	id, ok := t.foodIDs[name]
	if !ok {
		return fmt.Errorf("unknown food %q", name)
	}
	if !mock.RedisKeyExists(foodCacheKeyPrefix + id.String()) {
		return fmt.Errorf("expected food %q to be cached", name)
	}
	return nil
}

func (t *testContext) theFoodShouldNotBeCached(name string) error {
	id, ok := t.foodIDs[name]
	if !ok {
		return fmt.Errorf("unknown food %q", name)
	}
	if mock.RedisKeyExists(foodCacheKeyPrefix + id.String()) {
		return fmt.Errorf("expected food %q not to be cached", name)
	}
	return nil
}
