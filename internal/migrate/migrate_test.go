package migrate

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"calorie-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "550e8400-e29b-41d4-a716-446655440001"

func validRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":               validID,
		"name":             "Творог 5%",
		"category":         model.CategoryDairy,
		"calories":         float64(121),
		"protein":          float64(17),
		"fat":              float64(5),
		"carbs":            float64(1.8),
		"measurementUnits": []interface{}{},
	}
}

func countType(issues []Issue, issueType IssueType) int {
	n := 0
	for _, issue := range issues {
		if issue.Type == issueType {
			n++
		}
	}
	return n
}

func TestProductsValidInputUntouched(t *testing.T) {
	data, err := json.Marshal([]interface{}{validRecord()})
	require.NoError(t, err)

	result := Products(data)

	assert.False(t, result.HasChanges)
	assert.Empty(t, result.Issues)
	require.Len(t, result.Products, 1)
	assert.Equal(t, validID, result.Products[0].ID)
	assert.Equal(t, "Творог 5%", result.Products[0].Name)
	assert.Equal(t, 121.0, result.Products[0].Calories)
}

func TestProductsUndecodableBytes(t *testing.T) {
	result := Products([]byte("{not json"))

	assert.True(t, result.HasChanges)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, IssueInvalidValue, result.Issues[0].Type)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
}

func TestProductsNonArrayValue(t *testing.T) {
	for _, input := range []string{`{"id":"x"}`, `"hello"`, `42`, `null`} {
		result := Products([]byte(input))

		assert.True(t, result.HasChanges, input)
		require.Len(t, result.Issues, 1, input)
		assert.Equal(t, IssueInvalidValue, result.Issues[0].Type, input)
		assert.Empty(t, result.Products, input)
	}
}

func TestProductsDropsNonObjectElements(t *testing.T) {
	data := []byte(`[42, "text", null]`)
	result := Products(data)

	assert.True(t, result.HasChanges)
	assert.Empty(t, result.Products)
	assert.Equal(t, 3, countType(result.Issues, IssueInvalidValue))
}

func TestProductsRepairsBrokenRecord(t *testing.T) {
	data := []byte(`[{"id":"bad-id","name":123,"category":"NOPE","calories":-5}]`)
	result := Products(data)

	require.Len(t, result.Products, 1)
	p := result.Products[0]

	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "bad-id", p.ID)
	assert.Equal(t, "123", p.Name)
	assert.Equal(t, model.CategoryUncategorized, p.Category)
	assert.Equal(t, 0.0, p.Calories)
	assert.Equal(t, 0.0, p.Protein)
	assert.Equal(t, 0.0, p.Fat)
	assert.Equal(t, 0.0, p.Carbs)
	assert.NotNil(t, p.MeasurementUnits)
	assert.Empty(t, p.MeasurementUnits)

	assert.Equal(t, 1, countType(result.Issues, IssueInvalidID))
	assert.Equal(t, 1, countType(result.Issues, IssueInvalidCategory))
	// protein, fat, carbs and measurementUnits were absent
	assert.Equal(t, 4, countType(result.Issues, IssueMissingField))
	// name coercion and negative calories
	assert.GreaterOrEqual(t, countType(result.Issues, IssueInvalidValue), 2)
}

func TestProductsRejectsNonV4IDs(t *testing.T) {
	record := validRecord()
	// Valid UUID, wrong version
	record["id"] = "550e8400-e29b-11d4-a716-446655440001"
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)
	require.Len(t, result.Products, 1)
	assert.NotEqual(t, record["id"], result.Products[0].ID)
	assert.Equal(t, 1, countType(result.Issues, IssueInvalidID))
}

func TestProductsDeduplicatesIDs(t *testing.T) {
	first := validRecord()
	second := validRecord()
	second["name"] = "Дубликат"
	data, err := json.Marshal([]interface{}{first, second})
	require.NoError(t, err)

	result := Products(data)

	require.Len(t, result.Products, 2)
	assert.Equal(t, validID, result.Products[0].ID)
	assert.NotEqual(t, validID, result.Products[1].ID)
	assert.Equal(t, 1, countType(result.Issues, IssueInvalidID))
	assert.Equal(t, "Дубликат", result.Issues[0].ProductName)
}

func TestProductsStripsExtraFields(t *testing.T) {
	record := validRecord()
	record["rating"] = float64(5)
	record["comment"] = "вкусно"
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)

	assert.Equal(t, 2, countType(result.Issues, IssueExtraField))
	out, err := json.Marshal(result.Products[0])
	require.NoError(t, err)
	assert.NotContains(t, string(out), "rating")
	assert.NotContains(t, string(out), "comment")
}

func TestProductsSanitizesUnits(t *testing.T) {
	record := validRecord()
	record["measurementUnits"] = []interface{}{
		// Kept
		map[string]interface{}{
			"type":          "pieces",
			"size":          "medium",
			"weightInGrams": float64(50),
			"displayName":   "1шт (нормальный)",
		},
		// Redundant default, dropped
		map[string]interface{}{
			"type":          "grams",
			"weightInGrams": float64(100),
			"displayName":   "100г",
		},
		// Broken entries, dropped
		map[string]interface{}{"type": "liters", "weightInGrams": float64(10), "displayName": "x"},
		map[string]interface{}{"type": "pieces", "weightInGrams": float64(-3), "displayName": "x"},
		map[string]interface{}{"type": "pieces", "weightInGrams": float64(50), "displayName": ""},
		"not an object",
	}
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)

	require.Len(t, result.Products, 1)
	units := result.Products[0].MeasurementUnits
	require.Len(t, units, 1)
	assert.Equal(t, model.UnitPieces, units[0].Type)
	assert.Equal(t, model.SizeMedium, units[0].Size)
	assert.Equal(t, 50.0, units[0].WeightInGrams)
	assert.True(t, result.HasChanges)
}

func TestProductsMigratesLegacyUnitFields(t *testing.T) {
	record := validRecord()
	record["unit"] = "шт"
	record["pieceWeight"] = float64(45)
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)

	require.Len(t, result.Products, 1)
	units := result.Products[0].MeasurementUnits
	require.Len(t, units, 1)
	assert.Equal(t, model.UnitPieces, units[0].Type)
	assert.Equal(t, 45.0, units[0].WeightInGrams)
	assert.Equal(t, "шт", units[0].DisplayName)
	// Legacy keys are migrated, not reported as extra fields
	assert.Equal(t, 0, countType(result.Issues, IssueExtraField))
}

func TestProductsLegacyUnitRespectsUnitCap(t *testing.T) {
	record := validRecord()
	units := make([]interface{}, 0, model.MaxMeasurementUnits)
	for i := 0; i < model.MaxMeasurementUnits; i++ {
		units = append(units, map[string]interface{}{
			"type":          "pieces",
			"weightInGrams": float64(10 + i),
			"displayName":   fmt.Sprintf("1шт вариант %d", i),
		})
	}
	record["measurementUnits"] = units
	record["unit"] = "шт"
	record["pieceWeight"] = float64(40)
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	first := Products(data)

	require.Len(t, first.Products, 1)
	assert.LessOrEqual(t, len(first.Products[0].MeasurementUnits), model.MaxMeasurementUnits)

	// A second pass over the engine's own output changes nothing
	repaired, err := json.Marshal(first.Products)
	require.NoError(t, err)
	second := Products(repaired)
	assert.False(t, second.HasChanges)
	assert.Empty(t, second.Issues)
	assert.Equal(t, first.Products, second.Products)
}

func TestProductsDropsUnusableLegacyFields(t *testing.T) {
	record := validRecord()
	record["unit"] = "шт"
	record["pieceWeight"] = float64(-10)
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)

	require.Len(t, result.Products, 1)
	assert.Empty(t, result.Products[0].MeasurementUnits)
	assert.True(t, result.HasChanges)
	assert.Equal(t, 0, countType(result.Issues, IssueExtraField))
}

func TestProductsKeepsImplausibleNutrients(t *testing.T) {
	// The migration engine repairs structure, not plausibility: a record
	// whose nutrient sum exceeds 100g stays as stored.
	record := validRecord()
	record["protein"] = float64(60)
	record["fat"] = float64(40)
	record["carbs"] = float64(30)
	data, err := json.Marshal([]interface{}{record})
	require.NoError(t, err)

	result := Products(data)

	assert.False(t, result.HasChanges)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 60.0, result.Products[0].Protein)
}

func TestProductsIdempotentOnOwnOutput(t *testing.T) {
	data := []byte(`[
		{"id":"bad-id","name":123,"category":"NOPE","calories":-5},
		{"id":"` + validID + `","name":"Хлеб","category":"` + model.CategoryCereals + `",
		 "calories":250,"protein":8,"fat":3,"carbs":48,
		 "measurementUnits":[{"type":"grams","weightInGrams":100,"displayName":"100г"}],
		 "unit":"ломтик","pieceWeight":25}
	]`)

	first := Products(data)
	require.True(t, first.HasChanges)

	repaired, err := json.Marshal(first.Products)
	require.NoError(t, err)

	second := Products(repaired)
	assert.False(t, second.HasChanges)
	assert.Empty(t, second.Issues)
	assert.Equal(t, first.Products, second.Products)
}

func TestFormatReportGroupsIssues(t *testing.T) {
	issues := []Issue{
		{Type: IssueInvalidID, Message: "заменен ID"},
		{Type: IssueMissingField, Message: "добавлено поле"},
		{Type: IssueMissingField, Message: "добавлено ещё поле"},
	}

	report := FormatReport(issues)

	assert.True(t, strings.HasPrefix(report, "Обнаружено и исправлено проблем: 3"))
	assert.Contains(t, report, "заменен ID")
	assert.Contains(t, report, "добавлено поле")
}
