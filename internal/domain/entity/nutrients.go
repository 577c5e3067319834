// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// NutrientScale is the number of fractional digits kept for every nutrient value.
const NutrientScale int32 = 3

// MaxCatalogValue is the largest food nutrient value or item quantity a DECIMAL(10,3) column holds.
var MaxCatalogValue = decimal.RequireFromString("9999999.999")

// portionBase is the quantity a food's catalog values refer to (100 g / 100 ml).
var portionBase = decimal.NewFromInt(100)

// Nutrients holds the four tracked macro values.
type Nutrients struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Carbs    decimal.Decimal
	Fat      decimal.Decimal
}

// ZeroNutrients returns a Nutrients value with all fields set to zero.
func ZeroNutrients() Nutrients {
	return Nutrients{
		Calories: decimal.Zero,
		Protein:  decimal.Zero,
		Carbs:    decimal.Zero,
		Fat:      decimal.Zero,
	}
}

// Add returns the elementwise sum of n and other.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories.Add(other.Calories),
		Protein:  n.Protein.Add(other.Protein),
		Carbs:    n.Carbs.Add(other.Carbs),
		Fat:      n.Fat.Add(other.Fat),
	}
}

// Scale multiplies every value by factor and rounds half-up to NutrientScale.
func (n Nutrients) Scale(factor decimal.Decimal) Nutrients {
	return Nutrients{
		Calories: n.Calories.Mul(factor).Round(NutrientScale),
		Protein:  n.Protein.Mul(factor).Round(NutrientScale),
		Carbs:    n.Carbs.Mul(factor).Round(NutrientScale),
		Fat:      n.Fat.Mul(factor).Round(NutrientScale),
	}
}

// Rounded returns n rounded half-up to NutrientScale.
func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Calories: n.Calories.Round(NutrientScale),
		Protein:  n.Protein.Round(NutrientScale),
		Carbs:    n.Carbs.Round(NutrientScale),
		Fat:      n.Fat.Round(NutrientScale),
	}
}

// IsNegative reports whether any of the values is below zero.
func (n Nutrients) IsNegative() bool {
	return n.Calories.IsNegative() ||
		n.Protein.IsNegative() ||
		n.Carbs.IsNegative() ||
		n.Fat.IsNegative()
}

// Exceeds reports whether any of the values is greater than limit.
func (n Nutrients) Exceeds(limit decimal.Decimal) bool {
	return n.Calories.GreaterThan(limit) ||
		n.Protein.GreaterThan(limit) ||
		n.Carbs.GreaterThan(limit) ||
		n.Fat.GreaterThan(limit)
}

// Equal reports whether both values are numerically equal, field by field.
func (n Nutrients) Equal(other Nutrients) bool {
	return n.Calories.Equal(other.Calories) &&
		n.Protein.Equal(other.Protein) &&
		n.Carbs.Equal(other.Carbs) &&
		n.Fat.Equal(other.Fat)
}

// NutrientsForPortion returns what a quantity of a food contributes.
// Catalog values are authored per 100 units, so the contribution is value * quantity / 100.
// This is the only conversion used for both meal totals and goal progress.
func NutrientsForPortion(perBase Nutrients, quantity decimal.Decimal) Nutrients {
	return perBase.Scale(quantity.Div(portionBase))
}
