// Package migrate repairs untrusted persisted product data. Whatever shape
// the stored value has, the engine returns a list of records satisfying every
// product invariant plus a structured list of the problems it fixed. It
// never fails.
package migrate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"calorie-service/internal/model"

	"github.com/google/uuid"
)

// DefaultProductName is inserted when a record has no usable name
const DefaultProductName = "Новый продукт"

// allowedFields is the closed set of product record keys; anything else is
// stripped with an extra_field issue
var allowedFields = map[string]bool{
	"id":               true,
	"name":             true,
	"category":         true,
	"calories":         true,
	"protein":          true,
	"fat":              true,
	"carbs":            true,
	"measurementUnits": true,
}

var numericFields = []string{"calories", "protein", "fat", "carbs"}

// requiredFields lists fields every record must carry, in repair order
var requiredFields = []string{"name", "category", "calories", "protein", "fat", "carbs", "measurementUnits"}

// Result is the outcome of one migration run
type Result struct {
	Products   []model.Product `json:"products"`
	Issues     []Issue         `json:"issues"`
	HasChanges bool            `json:"hasChanges"`
}

// Products parses stored bytes and repairs the decoded value. Undecodable
// bytes degrade to an empty list with one issue, exactly like a non-array
// value.
func Products(data []byte) Result {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{
			Products: []model.Product{},
			Issues: []Issue{{
				Type:    IssueInvalidValue,
				Message: "Сохранённые данные не удалось разобрать, создан пустой список продуктов",
			}},
			HasChanges: true,
		}
	}
	return ProductsFromValue(raw)
}

// ProductsFromValue repairs an already-decoded value expected to be a list of
// product-like objects
func ProductsFromValue(raw interface{}) Result {
	list, ok := raw.([]interface{})
	if !ok {
		return Result{
			Products: []model.Product{},
			Issues: []Issue{{
				Type:          IssueInvalidValue,
				OriginalValue: raw,
				Message:       fmt.Sprintf("Данные пользователя не являются массивом (%T), создан пустой список продуктов", raw),
			}},
			HasChanges: true,
		}
	}

	products := make([]model.Product, 0, len(list))
	var issues []Issue

	for _, element := range list {
		record, ok := element.(map[string]interface{})
		if !ok {
			issues = append(issues, Issue{
				Type:          IssueInvalidValue,
				OriginalValue: element,
				Message:       fmt.Sprintf("Пропущен некорректный элемент: %v", element),
			})
			continue
		}

		product, recordIssues := migrateProduct(record)
		products = append(products, product)
		issues = append(issues, recordIssues...)
	}

	issues = append(issues, dedupIDs(products)...)

	return Result{
		Products:   products,
		Issues:     issues,
		HasChanges: len(issues) > 0,
	}
}

// migrateProduct repairs one record. Repairs apply in a fixed order so that
// later steps see the earlier fixes (e.g. the name used in issue messages).
func migrateProduct(original map[string]interface{}) (model.Product, []Issue) {
	var issues []Issue

	record := make(map[string]interface{}, len(original))
	for k, v := range original {
		record[k] = v
	}

	// ID repair
	id, isString := record["id"].(string)
	if !isString || !isValidUUID(id) {
		newID := uuid.NewString()
		originalID := ""
		if v, present := record["id"]; present {
			originalID = fmt.Sprintf("%v", v)
		}
		issues = append(issues, Issue{
			Type:        IssueInvalidID,
			ProductName: recordName(record),
			OriginalID:  originalID,
			NewID:       newID,
			Message:     fmt.Sprintf("Заменен некорректный ID %q на валидный UUID %q", originalID, newID),
		})
		record["id"] = newID
	}

	// Required-field repair
	for _, field := range requiredFields {
		if _, present := record[field]; present {
			continue
		}
		var defaultValue interface{}
		switch field {
		case "name":
			defaultValue = DefaultProductName
		case "category":
			defaultValue = model.CategoryUncategorized
		case "measurementUnits":
			defaultValue = []interface{}{}
		default:
			defaultValue = float64(0)
		}
		record[field] = defaultValue
		issues = append(issues, Issue{
			Type:        IssueMissingField,
			ProductName: recordName(record),
			Field:       field,
			NewValue:    defaultValue,
			Message:     fmt.Sprintf("Добавлено отсутствующее поле %q со значением по умолчанию %q", field, fmt.Sprintf("%v", defaultValue)),
		})
	}

	// Type repair for name
	if _, isString := record["name"].(string); !isString {
		originalName := record["name"]
		newName := coerceName(originalName)
		issues = append(issues, Issue{
			Type:          IssueInvalidValue,
			ProductName:   newName,
			Field:         "name",
			OriginalValue: originalName,
			NewValue:      newName,
			Message:       fmt.Sprintf("Исправлено некорректное значение поля \"name\": %v → %q", originalName, newName),
		})
		record["name"] = newName
	}

	// Category repair
	if category, isString := record["category"].(string); !isString || !model.ValidCategory(category) {
		originalCategory := record["category"]
		record["category"] = model.CategoryUncategorized
		issues = append(issues, Issue{
			Type:          IssueInvalidCategory,
			ProductName:   recordName(record),
			Field:         "category",
			OriginalValue: originalCategory,
			NewValue:      model.CategoryUncategorized,
			Message:       fmt.Sprintf("Заменена несуществующая категория %v на категорию по умолчанию %q", originalCategory, model.CategoryName(model.CategoryUncategorized)),
		})
	}

	// Numeric repair
	for _, field := range numericFields {
		if isValidNumber(record[field]) {
			continue
		}
		originalValue := record[field]
		record[field] = float64(0)
		issues = append(issues, Issue{
			Type:          IssueInvalidValue,
			ProductName:   recordName(record),
			Field:         field,
			OriginalValue: originalValue,
			NewValue:      float64(0),
			Message:       fmt.Sprintf("Исправлено некорректное значение поля %q: %v → 0", field, originalValue),
		})
	}

	// Legacy-field migration: deprecated unit+pieceWeight become one pieces
	// unit, merged into the raw list so sanitization and the unit cap see it
	legacyUnit, legacyIssue := normalizeLegacyUnit(record)
	if legacyIssue != nil {
		issues = append(issues, *legacyIssue)
	}
	unitsInvalid := false
	if legacyUnit != nil {
		list, ok := record["measurementUnits"].([]interface{})
		if !ok {
			unitsInvalid = true
		}
		record["measurementUnits"] = append(list, legacyUnitValue(*legacyUnit))
	}

	// Measurement-unit repair
	units, unitsChanged := sanitizeUnits(record["measurementUnits"])
	if unitsChanged || unitsInvalid {
		issues = append(issues, Issue{
			Type:          IssueInvalidValue,
			ProductName:   recordName(record),
			Field:         "measurementUnits",
			OriginalValue: record["measurementUnits"],
			Message:       "Очищен список единиц измерения: некорректные записи удалены",
		})
	}

	// Extra-field stripping, in stable key order
	extraKeys := make([]string, 0)
	for key := range record {
		if !allowedFields[key] {
			extraKeys = append(extraKeys, key)
		}
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		issues = append(issues, Issue{
			Type:          IssueExtraField,
			ProductName:   recordName(record),
			Field:         key,
			OriginalValue: record[key],
			Message:       fmt.Sprintf("Удалено лишнее поле %q со значением %v", key, record[key]),
		})
		delete(record, key)
	}

	product := model.Product{
		ID:               record["id"].(string),
		Name:             record["name"].(string),
		Category:         record["category"].(string),
		Calories:         record["calories"].(float64),
		Protein:          record["protein"].(float64),
		Fat:              record["fat"].(float64),
		Carbs:            record["carbs"].(float64),
		MeasurementUnits: units,
	}
	return product, issues
}

// dedupIDs regenerates ids for every collision after the first occurrence
func dedupIDs(products []model.Product) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(products))
	for i := range products {
		if !seen[products[i].ID] {
			seen[products[i].ID] = true
			continue
		}
		newID := uuid.NewString()
		issues = append(issues, Issue{
			Type:        IssueInvalidID,
			ProductName: products[i].Name,
			OriginalID:  products[i].ID,
			NewID:       newID,
			Message:     fmt.Sprintf("Обнаружен дублированный ID %q, заменен на %q", products[i].ID, newID),
		})
		products[i].ID = newID
		seen[newID] = true
	}
	return issues
}

// normalizeLegacyUnit converts the deprecated unit+pieceWeight pair into one
// pieces measurement unit and removes the legacy keys so they are not
// reported as extra fields
func normalizeLegacyUnit(record map[string]interface{}) (*model.MeasurementUnit, *Issue) {
	pieceWeight, hasWeight := record["pieceWeight"]
	legacyUnit, hasUnit := record["unit"]
	if !hasWeight && !hasUnit {
		return nil, nil
	}

	delete(record, "pieceWeight")
	delete(record, "unit")

	weight, ok := pieceWeight.(float64)
	if !ok || weight <= 0 || weight > model.MaxUnitWeightGrams {
		// Legacy fields present but unusable: dropping them is still a repair
		return nil, &Issue{
			Type:          IssueInvalidValue,
			ProductName:   recordName(record),
			Field:         "pieceWeight",
			OriginalValue: pieceWeight,
			Message:       fmt.Sprintf("Удалены устаревшие поля unit/pieceWeight с некорректным весом %v", pieceWeight),
		}
	}

	displayName := "1шт"
	if s, ok := legacyUnit.(string); ok && strings.TrimSpace(s) != "" {
		displayName = strings.TrimSpace(s)
	}

	synthesized := model.MeasurementUnit{
		Type:          model.UnitPieces,
		WeightInGrams: weight,
		DisplayName:   displayName,
	}
	return &synthesized, &Issue{
		Type:          IssueInvalidValue,
		ProductName:   recordName(record),
		Field:         "measurementUnits",
		OriginalValue: pieceWeight,
		NewValue:      synthesized,
		Message:       fmt.Sprintf("Устаревшие поля unit/pieceWeight преобразованы в единицу измерения %q (%gг)", displayName, weight),
	}
}

// legacyUnitValue renders a synthesized unit in the raw map shape the
// sanitizer consumes
func legacyUnitValue(u model.MeasurementUnit) map[string]interface{} {
	return map[string]interface{}{
		"type":          string(u.Type),
		"weightInGrams": u.WeightInGrams,
		"displayName":   u.DisplayName,
	}
}

// sanitizeUnits validates the raw measurementUnits value element-by-element.
// Invalid entries and the redundant 100g grams default are dropped. The
// second return value reports whether the result differs from the input.
func sanitizeUnits(raw interface{}) ([]model.MeasurementUnit, bool) {
	units := []model.MeasurementUnit{}

	list, ok := raw.([]interface{})
	if !ok {
		return units, true
	}

	changed := false
	for _, element := range list {
		if len(units) >= model.MaxMeasurementUnits {
			changed = true
			break
		}
		unit, ok := sanitizeUnit(element)
		if !ok {
			changed = true
			continue
		}
		if model.IsDefaultGramsUnit(unit) {
			changed = true
			continue
		}
		if m, isMap := element.(map[string]interface{}); isMap {
			if unitHasExtraKeys(m) || unit.DisplayName != m["displayName"] {
				changed = true
			}
		}
		units = append(units, unit)
	}
	return units, changed
}

func sanitizeUnit(element interface{}) (model.MeasurementUnit, bool) {
	m, ok := element.(map[string]interface{})
	if !ok {
		return model.MeasurementUnit{}, false
	}

	typeStr, ok := m["type"].(string)
	if !ok || !model.ValidUnitType(model.UnitType(typeStr)) {
		return model.MeasurementUnit{}, false
	}
	unitType := model.UnitType(typeStr)

	weight, ok := m["weightInGrams"].(float64)
	if !ok || math.IsNaN(weight) || weight <= 0 || weight > model.MaxUnitWeightGrams {
		return model.MeasurementUnit{}, false
	}

	displayName, ok := m["displayName"].(string)
	if !ok {
		return model.MeasurementUnit{}, false
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" || len([]rune(displayName)) > 50 {
		return model.MeasurementUnit{}, false
	}

	var size model.UnitSize
	if rawSize, present := m["size"]; present {
		sizeStr, ok := rawSize.(string)
		if !ok {
			return model.MeasurementUnit{}, false
		}
		size = model.UnitSize(sizeStr)
		if !model.ValidSizeForType(unitType, size) {
			return model.MeasurementUnit{}, false
		}
	}

	return model.MeasurementUnit{
		Type:          unitType,
		Size:          size,
		WeightInGrams: weight,
		DisplayName:   displayName,
	}, true
}

var unitKeys = map[string]bool{
	"type":          true,
	"size":          true,
	"weightInGrams": true,
	"displayName":   true,
}

func unitHasExtraKeys(m map[string]interface{}) bool {
	for key := range m {
		if !unitKeys[key] {
			return true
		}
	}
	return false
}

// isValidUUID accepts canonical UUID v4 strings only
func isValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

// isValidNumber accepts finite numbers >= 0
func isValidNumber(value interface{}) bool {
	f, ok := value.(float64)
	if !ok {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// coerceName mirrors loose string conversion: empty-ish values fall back to
// the default name, everything else is formatted as text
func coerceName(value interface{}) string {
	if value == nil {
		return DefaultProductName
	}
	s := fmt.Sprintf("%v", value)
	if strings.TrimSpace(s) == "" {
		return DefaultProductName
	}
	return s
}

func recordName(record map[string]interface{}) string {
	if name, ok := record["name"].(string); ok && name != "" {
		return name
	}
	return "Неизвестный продукт"
}
