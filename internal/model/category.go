package model

// Category keys for the fixed product category enum
const (
	CategoryUncategorized = "UNCATEGORIZED"
	CategoryDairy         = "DAIRY"
	CategoryMeatFish      = "MEAT_FISH"
	CategoryCereals       = "CEREALS"
	CategoryVegetables    = "VEGETABLES"
	CategoryFruits        = "FRUITS"
	CategoryNutsSeeds     = "NUTS_SEEDS"
	CategoryFatsOils      = "FATS_OILS"
)

// ProductCategory pairs a category key with its display name
type ProductCategory struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Categories lists all product categories in display order
var Categories = []ProductCategory{
	{Key: CategoryUncategorized, Name: "Без категории"},
	{Key: CategoryDairy, Name: "Молочные продукты"},
	{Key: CategoryMeatFish, Name: "Мясо и рыба"},
	{Key: CategoryCereals, Name: "Крупы, хлеб, мука"},
	{Key: CategoryVegetables, Name: "Овощи и зелень"},
	{Key: CategoryFruits, Name: "Фрукты и ягоды"},
	{Key: CategoryNutsSeeds, Name: "Орехи и семена"},
	{Key: CategoryFatsOils, Name: "Жиры и масла"},
}

// ValidCategory reports whether key names a known category
func ValidCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// CategoryName returns the display name for a category key, or the key itself
// when unknown
func CategoryName(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}
