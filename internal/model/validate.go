package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxNutrientSum bounds protein+fat+carbs per 100g. Slightly above 100 to
// leave room for rounding error and fiber.
const MaxNutrientSum = 110

// MaxMeasurementUnits bounds the number of units per product
const MaxMeasurementUnits = 10

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return ValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterStructValidation(productStructLevel, productInput{})
	return v
}

// productInput mirrors Product with the strict create/update rules attached.
// The migration engine deliberately does NOT apply these rules; they guard
// user-submitted data only.
type productInput struct {
	Name             string                 `validate:"notblank,max=100"`
	Category         string                 `validate:"category"`
	Calories         float64                `validate:"min=0,max=2000"`
	Protein          float64                `validate:"min=0,max=100"`
	Fat              float64                `validate:"min=0,max=100"`
	Carbs            float64                `validate:"min=0,max=100"`
	MeasurementUnits []measurementUnitInput `validate:"max=10,dive"`
}

type measurementUnitInput struct {
	Type          UnitType `validate:"required"`
	Size          UnitSize
	WeightInGrams float64 `validate:"gt=0,max=10000"`
	DisplayName   string  `validate:"notblank,max=50"`
}

func productStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(productInput)

	if p.Protein+p.Fat+p.Carbs > MaxNutrientSum {
		sl.ReportError(p.Protein, "Protein", "Protein", "nutrientsum", "")
	}

	for _, u := range p.MeasurementUnits {
		if !ValidUnitType(u.Type) {
			sl.ReportError(u.Type, "MeasurementUnits", "MeasurementUnits", "unittype", "")
			break
		}
		if !ValidSizeForType(u.Type, u.Size) {
			sl.ReportError(u.Size, "MeasurementUnits", "MeasurementUnits", "unitsize", "")
			break
		}
	}
}

// ValidateProduct applies the strict create/update rules to p. It returns nil
// when p is valid, otherwise a field-to-message map. It never panics on any
// input.
func ValidateProduct(p Product) map[string]string {
	in := productInput{
		Name:     p.Name,
		Category: p.Category,
		Calories: p.Calories,
		Protein:  p.Protein,
		Fat:      p.Fat,
		Carbs:    p.Carbs,
	}
	for _, u := range p.MeasurementUnits {
		in.MeasurementUnits = append(in.MeasurementUnits, measurementUnitInput{
			Type:          u.Type,
			Size:          u.Size,
			WeightInGrams: u.WeightInGrams,
			DisplayName:   u.DisplayName,
		})
	}

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"general": "validation failed"}
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field, message := describeFieldError(fe)
		if _, seen := fieldErrors[field]; !seen {
			fieldErrors[field] = message
		}
	}
	return fieldErrors
}

func describeFieldError(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "notblank":
		if strings.HasPrefix(fe.Namespace(), "productInput.MeasurementUnits") {
			return "measurementUnits", "unit display name must not be empty"
		}
		return "name", "name must not be empty"
	case "category":
		return "category", "unknown category"
	case "nutrientsum":
		return "protein", fmt.Sprintf("protein+fat+carbs must not exceed %dg per 100g", MaxNutrientSum)
	case "unittype":
		return "measurementUnits", "unknown measurement unit type"
	case "unitsize":
		return "measurementUnits", "unit size does not match unit type"
	}

	switch fe.Field() {
	case "Name":
		return "name", "name is too long (100 characters max)"
	case "Category":
		return "category", "unknown category"
	case "Calories":
		return "calories", "calories must be between 0 and 2000 per 100g"
	case "Protein":
		return "protein", "protein must be between 0 and 100g per 100g"
	case "Fat":
		return "fat", "fat must be between 0 and 100g per 100g"
	case "Carbs":
		return "carbs", "carbs must be between 0 and 100g per 100g"
	case "MeasurementUnits":
		return "measurementUnits", fmt.Sprintf("at most %d measurement units allowed", MaxMeasurementUnits)
	case "WeightInGrams":
		return "measurementUnits", "unit weight must be between 0 and 10000 grams"
	case "DisplayName":
		return "measurementUnits", "unit display name is too long (50 characters max)"
	case "Type":
		return "measurementUnits", "measurement unit type is required"
	}
	return strings.ToLower(fe.Field()), "invalid value"
}
