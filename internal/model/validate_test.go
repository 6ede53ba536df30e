package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		Name:     "Творог 5%",
		Category: CategoryDairy,
		Calories: 121,
		Protein:  17,
		Fat:      5,
		Carbs:    1.8,
	}
}

func TestValidateProductAcceptsValid(t *testing.T) {
	assert.Nil(t, ValidateProduct(validProduct()))

	withUnits := validProduct()
	withUnits.MeasurementUnits = []MeasurementUnit{PieceMedium, Tablespoon}
	assert.Nil(t, ValidateProduct(withUnits))
}

func TestValidateProductName(t *testing.T) {
	p := validProduct()
	p.Name = "   "
	fields := ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "name")

	p.Name = strings.Repeat("я", 101)
	fields = ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "name")
}

func TestValidateProductCategory(t *testing.T) {
	p := validProduct()
	p.Category = "SWEETS"
	fields := ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "category")
}

func TestValidateProductNutrientRanges(t *testing.T) {
	p := validProduct()
	p.Calories = -1
	fields := ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "calories")

	p = validProduct()
	p.Calories = 2001
	assert.Contains(t, ValidateProduct(p), "calories")

	p = validProduct()
	p.Protein = 101
	assert.Contains(t, ValidateProduct(p), "protein")
}

func TestValidateProductNutrientSum(t *testing.T) {
	p := validProduct()
	p.Protein = 60
	p.Fat = 40
	p.Carbs = 30
	fields := ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "protein")

	// Exactly at the limit is allowed
	p.Protein = 50
	p.Fat = 40
	p.Carbs = 20
	assert.Nil(t, ValidateProduct(p))
}

func TestValidateProductUnits(t *testing.T) {
	p := validProduct()
	p.MeasurementUnits = []MeasurementUnit{
		{Type: "liters", WeightInGrams: 10, DisplayName: "1л"},
	}
	fields := ValidateProduct(p)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "measurementUnits")

	p.MeasurementUnits = []MeasurementUnit{
		{Type: UnitPieces, Size: SizeTeaspoon, WeightInGrams: 10, DisplayName: "1шт"},
	}
	assert.Contains(t, ValidateProduct(p), "measurementUnits")

	p.MeasurementUnits = []MeasurementUnit{
		{Type: UnitGrams, WeightInGrams: 0, DisplayName: "0г"},
	}
	assert.Contains(t, ValidateProduct(p), "measurementUnits")

	p.MeasurementUnits = make([]MeasurementUnit, MaxMeasurementUnits+1)
	for i := range p.MeasurementUnits {
		p.MeasurementUnits[i] = MeasurementUnit{Type: UnitGrams, WeightInGrams: float64(i + 1), DisplayName: "г"}
	}
	assert.Contains(t, ValidateProduct(p), "measurementUnits")
}

func TestValidSizeForType(t *testing.T) {
	// Absent size is always acceptable
	assert.True(t, ValidSizeForType(UnitPieces, ""))
	assert.True(t, ValidSizeForType(UnitGrams, ""))

	assert.True(t, ValidSizeForType(UnitPieces, SizeMedium))
	assert.True(t, ValidSizeForType(UnitSpoons, SizeTeaspoon))
	assert.False(t, ValidSizeForType(UnitPieces, SizeTeaspoon))
	assert.False(t, ValidSizeForType(UnitGrams, SizeMedium))
	assert.False(t, ValidSizeForType(UnitSlices, SizeLarge))
}
