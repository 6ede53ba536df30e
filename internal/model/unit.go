package model

import "fmt"

// UnitType identifies the kind of measurement unit
type UnitType string

const (
	UnitGrams  UnitType = "grams"
	UnitPieces UnitType = "pieces"
	UnitSpoons UnitType = "spoons"
	UnitSlices UnitType = "slices"
)

// UnitSize refines pieces (small/medium/large) and spoons (teaspoon/tablespoon)
type UnitSize string

const (
	SizeSmall      UnitSize = "small"
	SizeMedium     UnitSize = "medium"
	SizeLarge      UnitSize = "large"
	SizeTeaspoon   UnitSize = "teaspoon"
	SizeTablespoon UnitSize = "tablespoon"
)

// MaxUnitWeightGrams is the upper bound for a single unit's gram equivalent
const MaxUnitWeightGrams = 10000

// MeasurementUnit describes one way to measure a product, with its gram
// equivalent. The implicit 100g default is synthesized at use time and never
// stored in a product's unit list.
type MeasurementUnit struct {
	Type          UnitType `json:"type"`
	Size          UnitSize `json:"size,omitempty"`
	WeightInGrams float64  `json:"weightInGrams"`
	DisplayName   string   `json:"displayName"`
}

// Predefined measurement units from the seeded catalog
var (
	Grams100 = MeasurementUnit{Type: UnitGrams, WeightInGrams: 100, DisplayName: "100г"}

	PieceSmall  = MeasurementUnit{Type: UnitPieces, Size: SizeSmall, WeightInGrams: 30, DisplayName: "1шт (маленький)"}
	PieceMedium = MeasurementUnit{Type: UnitPieces, Size: SizeMedium, WeightInGrams: 50, DisplayName: "1шт (нормальный)"}
	PieceLarge  = MeasurementUnit{Type: UnitPieces, Size: SizeLarge, WeightInGrams: 70, DisplayName: "1шт (большой)"}

	Teaspoon   = MeasurementUnit{Type: UnitSpoons, Size: SizeTeaspoon, WeightInGrams: 5, DisplayName: "1 ч.л."}
	Tablespoon = MeasurementUnit{Type: UnitSpoons, Size: SizeTablespoon, WeightInGrams: 15, DisplayName: "1 ст.л."}

	SliceThin   = MeasurementUnit{Type: UnitSlices, WeightInGrams: 20, DisplayName: "1 кусок (тонкий)"}
	SliceMedium = MeasurementUnit{Type: UnitSlices, WeightInGrams: 25, DisplayName: "1 кусок (средний)"}
	SliceThick  = MeasurementUnit{Type: UnitSlices, WeightInGrams: 30, DisplayName: "1 кусок (толстый)"}
)

// ValidUnitType reports whether t is a known unit type
func ValidUnitType(t UnitType) bool {
	switch t {
	case UnitGrams, UnitPieces, UnitSpoons, UnitSlices:
		return true
	}
	return false
}

// ValidSizeForType reports whether size may accompany the given type. An
// absent size is always accepted; a set size must belong to the type's scope
// (pieces: small/medium/large, spoons: teaspoon/tablespoon, others: none).
func ValidSizeForType(t UnitType, size UnitSize) bool {
	if size == "" {
		return true
	}
	switch t {
	case UnitPieces:
		return size == SizeSmall || size == SizeMedium || size == SizeLarge
	case UnitSpoons:
		return size == SizeTeaspoon || size == SizeTablespoon
	}
	return false
}

// IsDefaultGramsUnit reports whether u is the redundant 100g default that is
// synthesized at use time and must not be persisted
func IsDefaultGramsUnit(u MeasurementUnit) bool {
	return u.Type == UnitGrams && u.WeightInGrams == 100
}

// FormatUnitDisplay renders a unit label with its gram equivalent
func FormatUnitDisplay(u MeasurementUnit) string {
	return fmt.Sprintf("%s (%gг)", u.DisplayName, u.WeightInGrams)
}
