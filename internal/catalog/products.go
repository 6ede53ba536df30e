package catalog

import "calorie-service/internal/model"

// Products is the code-shipped product database, per 100g. Ids are fixed at
// authoring time and never change.
var Products = []model.Product{
	// Молочные продукты
	{ID: "550e8400-e29b-41d4-a716-446655440001", Name: "Молоко 1%", Category: model.CategoryDairy, Calories: 40, Protein: 3, Fat: 1, Carbs: 4},
	{ID: "550e8400-e29b-41d4-a716-446655440002", Name: "Молоко 3,2%", Category: model.CategoryDairy, Calories: 59, Protein: 2.9, Fat: 3.2, Carbs: 3.8},
	{ID: "550e8400-e29b-41d4-a716-446655440003", Name: "Молоко козье", Category: model.CategoryDairy, Calories: 77, Protein: 2.8, Fat: 3.2, Carbs: 8.6},
	{ID: "550e8400-e29b-41d4-a716-446655440004", Name: "Молоко сгущенное", Category: model.CategoryDairy, Calories: 313, Protein: 0, Fat: 0, Carbs: 53.9, MeasurementUnits: []model.MeasurementUnit{model.Teaspoon, model.Tablespoon}},
	{ID: "550e8400-e29b-41d4-a716-446655440005", Name: "Кефир 2,5%", Category: model.CategoryDairy, Calories: 53, Protein: 2.9, Fat: 2.5, Carbs: 4.1},
	{ID: "550e8400-e29b-41d4-a716-446655440006", Name: "Кефир 1,5%", Category: model.CategoryDairy, Calories: 57, Protein: 4.1, Fat: 1.5, Carbs: 5.9},
	{ID: "550e8400-e29b-41d4-a716-446655440007", Name: "Ряженка 3,2%", Category: model.CategoryDairy, Calories: 68, Protein: 5, Fat: 3.2, Carbs: 3.5},
	{ID: "550e8400-e29b-41d4-a716-446655440008", Name: "Ряженка 6%", Category: model.CategoryDairy, Calories: 92, Protein: 5, Fat: 6, Carbs: 3.5},
	{ID: "550e8400-e29b-41d4-a716-446655440009", Name: "Сметана 15%", Category: model.CategoryDairy, Calories: 162, Protein: 2.6, Fat: 15, Carbs: 3.6},
	{ID: "550e8400-e29b-41d4-a716-446655440010", Name: "Сметана 25%", Category: model.CategoryDairy, Calories: 250, Protein: 2.4, Fat: 25, Carbs: 3.2},
	{ID: "550e8400-e29b-41d4-a716-446655440011", Name: "Творог 9%", Category: model.CategoryDairy, Calories: 169, Protein: 18, Fat: 9, Carbs: 3},
	{ID: "550e8400-e29b-41d4-a716-446655440012", Name: "Творог обезжиренный", Category: model.CategoryDairy, Calories: 86, Protein: 18, Fat: 0.6, Carbs: 1.5},
	{ID: "550e8400-e29b-41d4-a716-446655440013", Name: "Сыр голландский", Category: model.CategoryDairy, Calories: 356, Protein: 24.9, Fat: 27.4, Carbs: 2.2},
	{ID: "550e8400-e29b-41d4-a716-446655440014", Name: "Сыр российский", Category: model.CategoryDairy, Calories: 337, Protein: 23.2, Fat: 29.5, Carbs: 0},

	// Мясо и рыба
	{ID: "550e8400-e29b-41d4-a716-446655440015", Name: "Говядина отварная", Category: model.CategoryMeatFish, Calories: 254, Protein: 26, Fat: 16.8, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440016", Name: "Свинина отварная", Category: model.CategoryMeatFish, Calories: 351, Protein: 22.6, Fat: 28.0, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440017", Name: "Курица отварная", Category: model.CategoryMeatFish, Calories: 137, Protein: 25.2, Fat: 4.2, Carbs: 0.7},
	{ID: "550e8400-e29b-41d4-a716-446655440018", Name: "Куриная грудка", Category: model.CategoryMeatFish, Calories: 113, Protein: 23.6, Fat: 1.9, Carbs: 0.4},
	{ID: "550e8400-e29b-41d4-a716-446655440019", Name: "Индейка", Category: model.CategoryMeatFish, Calories: 197, Protein: 21.6, Fat: 12.0, Carbs: 0.8},
	{ID: "550e8400-e29b-41d4-a716-446655440020", Name: "Треска", Category: model.CategoryMeatFish, Calories: 75, Protein: 17.5, Fat: 0.6, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440021", Name: "Лосось", Category: model.CategoryMeatFish, Calories: 142, Protein: 19.8, Fat: 6.3, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440022", Name: "Тунец", Category: model.CategoryMeatFish, Calories: 96, Protein: 23.0, Fat: 1.0, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440023", Name: "Скумбрия", Category: model.CategoryMeatFish, Calories: 191, Protein: 18.0, Fat: 13.2, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440024", Name: "Креветки", Category: model.CategoryMeatFish, Calories: 95, Protein: 18.9, Fat: 2.2, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440025", Name: "Яйцо куриное", Category: model.CategoryMeatFish, Calories: 155, Protein: 12.7, Fat: 11.5, Carbs: 0.7, MeasurementUnits: []model.MeasurementUnit{model.PieceSmall, model.PieceMedium, model.PieceLarge}},

	// Крупы, хлеб, мука
	{ID: "550e8400-e29b-41d4-a716-446655440026", Name: "Хлеб ржаной", Category: model.CategoryCereals, Calories: 210, Protein: 6.6, Fat: 1.2, Carbs: 43.0, MeasurementUnits: []model.MeasurementUnit{model.SliceThin, model.SliceMedium, model.SliceThick}},
	{ID: "550e8400-e29b-41d4-a716-446655440027", Name: "Хлеб белый", Category: model.CategoryCereals, Calories: 266, Protein: 8.1, Fat: 3.2, Carbs: 50.0, MeasurementUnits: []model.MeasurementUnit{model.SliceThin, model.SliceMedium, model.SliceThick}},
	{ID: "550e8400-e29b-41d4-a716-446655440028", Name: "Рис отварной", Category: model.CategoryCereals, Calories: 116, Protein: 2.2, Fat: 0.5, Carbs: 24.9},
	{ID: "550e8400-e29b-41d4-a716-446655440029", Name: "Гречка отварная", Category: model.CategoryCereals, Calories: 132, Protein: 4.5, Fat: 2.3, Carbs: 21.6},
	{ID: "550e8400-e29b-41d4-a716-446655440030", Name: "Овсянка на воде", Category: model.CategoryCereals, Calories: 88, Protein: 3.0, Fat: 1.7, Carbs: 15.0},
	{ID: "550e8400-e29b-41d4-a716-446655440031", Name: "Макароны отварные", Category: model.CategoryCereals, Calories: 113, Protein: 3.5, Fat: 0.4, Carbs: 23.2},
	{ID: "550e8400-e29b-41d4-a716-446655440032", Name: "Мука пшеничная", Category: model.CategoryCereals, Calories: 342, Protein: 12.6, Fat: 1.1, Carbs: 66.9},

	// Овощи и зелень
	{ID: "550e8400-e29b-41d4-a716-446655440033", Name: "Картофель отварной", Category: model.CategoryVegetables, Calories: 82, Protein: 2.0, Fat: 0.4, Carbs: 16.7},
	{ID: "550e8400-e29b-41d4-a716-446655440034", Name: "Морковь", Category: model.CategoryVegetables, Calories: 35, Protein: 1.3, Fat: 0.1, Carbs: 6.9},
	{ID: "550e8400-e29b-41d4-a716-446655440035", Name: "Свёкла", Category: model.CategoryVegetables, Calories: 40, Protein: 1.5, Fat: 0.1, Carbs: 8.8},
	{ID: "550e8400-e29b-41d4-a716-446655440036", Name: "Капуста белокочанная", Category: model.CategoryVegetables, Calories: 27, Protein: 1.8, Fat: 0.1, Carbs: 4.7},
	{ID: "550e8400-e29b-41d4-a716-446655440037", Name: "Капуста цветная", Category: model.CategoryVegetables, Calories: 30, Protein: 2.5, Fat: 0.3, Carbs: 4.2},
	{ID: "550e8400-e29b-41d4-a716-446655440038", Name: "Помидоры", Category: model.CategoryVegetables, Calories: 20, Protein: 1.1, Fat: 0.2, Carbs: 3.8},
	{ID: "550e8400-e29b-41d4-a716-446655440039", Name: "Огурцы", Category: model.CategoryVegetables, Calories: 15, Protein: 0.8, Fat: 0.1, Carbs: 2.8},
	{ID: "550e8400-e29b-41d4-a716-446655440040", Name: "Перец болгарский", Category: model.CategoryVegetables, Calories: 27, Protein: 1.3, Fat: 0.1, Carbs: 5.3},
	{ID: "550e8400-e29b-41d4-a716-446655440041", Name: "Лук репчатый", Category: model.CategoryVegetables, Calories: 41, Protein: 1.4, Fat: 0.2, Carbs: 8.2},
	{ID: "550e8400-e29b-41d4-a716-446655440042", Name: "Чеснок", Category: model.CategoryVegetables, Calories: 143, Protein: 6.5, Fat: 0.5, Carbs: 29.9},
	{ID: "550e8400-e29b-41d4-a716-446655440043", Name: "Укроп", Category: model.CategoryVegetables, Calories: 38, Protein: 2.5, Fat: 0.5, Carbs: 6.3},
	{ID: "550e8400-e29b-41d4-a716-446655440044", Name: "Петрушка", Category: model.CategoryVegetables, Calories: 47, Protein: 3.7, Fat: 0.4, Carbs: 7.6},
	{ID: "550e8400-e29b-41d4-a716-446655440045", Name: "Салат", Category: model.CategoryVegetables, Calories: 12, Protein: 1.2, Fat: 0.3, Carbs: 1.3},

	// Фрукты и ягоды
	{ID: "550e8400-e29b-41d4-a716-446655440046", Name: "Яблоки", Category: model.CategoryFruits, Calories: 47, Protein: 0.4, Fat: 0.4, Carbs: 9.8, MeasurementUnits: []model.MeasurementUnit{
		{Type: model.UnitPieces, WeightInGrams: 120, DisplayName: "1шт (маленькое)"},
		{Type: model.UnitPieces, WeightInGrams: 180, DisplayName: "1шт (среднее)"},
		{Type: model.UnitPieces, WeightInGrams: 250, DisplayName: "1шт (большое)"},
	}},
	{ID: "550e8400-e29b-41d4-a716-446655440047", Name: "Груши", Category: model.CategoryFruits, Calories: 42, Protein: 0.4, Fat: 0.3, Carbs: 10.3},
	{ID: "550e8400-e29b-41d4-a716-446655440048", Name: "Бананы", Category: model.CategoryFruits, Calories: 95, Protein: 1.5, Fat: 0.2, Carbs: 21.8},
	{ID: "550e8400-e29b-41d4-a716-446655440049", Name: "Апельсины", Category: model.CategoryFruits, Calories: 43, Protein: 0.9, Fat: 0.2, Carbs: 8.1},
	{ID: "550e8400-e29b-41d4-a716-446655440050", Name: "Мандарины", Category: model.CategoryFruits, Calories: 33, Protein: 0.8, Fat: 0.2, Carbs: 7.5},
	{ID: "550e8400-e29b-41d4-a716-446655440051", Name: "Лимоны", Category: model.CategoryFruits, Calories: 16, Protein: 0.9, Fat: 0.1, Carbs: 3.0},
	{ID: "550e8400-e29b-41d4-a716-446655440052", Name: "Виноград", Category: model.CategoryFruits, Calories: 65, Protein: 0.6, Fat: 0.2, Carbs: 16.8},
	{ID: "550e8400-e29b-41d4-a716-446655440053", Name: "Клубника", Category: model.CategoryFruits, Calories: 41, Protein: 0.8, Fat: 0.4, Carbs: 7.5},
	{ID: "550e8400-e29b-41d4-a716-446655440054", Name: "Малина", Category: model.CategoryFruits, Calories: 46, Protein: 0.8, Fat: 0.5, Carbs: 8.3},
	{ID: "550e8400-e29b-41d4-a716-446655440055", Name: "Черника", Category: model.CategoryFruits, Calories: 44, Protein: 1.1, Fat: 0.4, Carbs: 7.6},

	// Орехи и семена
	{ID: "550e8400-e29b-41d4-a716-446655440056", Name: "Грецкие орехи", Category: model.CategoryNutsSeeds, Calories: 654, Protein: 15.2, Fat: 65.2, Carbs: 7.0},
	{ID: "550e8400-e29b-41d4-a716-446655440057", Name: "Миндаль", Category: model.CategoryNutsSeeds, Calories: 579, Protein: 18.6, Fat: 53.7, Carbs: 13.0},
	{ID: "550e8400-e29b-41d4-a716-446655440058", Name: "Семена подсолнечника", Category: model.CategoryNutsSeeds, Calories: 601, Protein: 20.7, Fat: 52.9, Carbs: 10.5},
	{ID: "550e8400-e29b-41d4-a716-446655440059", Name: "Тыквенные семечки", Category: model.CategoryNutsSeeds, Calories: 559, Protein: 30.2, Fat: 49.0, Carbs: 10.7},

	// Жиры и масла
	{ID: "550e8400-e29b-41d4-a716-446655440060", Name: "Масло подсолнечное", Category: model.CategoryFatsOils, Calories: 899, Protein: 0, Fat: 99.9, Carbs: 0, MeasurementUnits: []model.MeasurementUnit{model.Teaspoon, model.Tablespoon}},
	{ID: "550e8400-e29b-41d4-a716-446655440061", Name: "Масло оливковое", Category: model.CategoryFatsOils, Calories: 898, Protein: 0, Fat: 99.8, Carbs: 0},
	{ID: "550e8400-e29b-41d4-a716-446655440062", Name: "Масло сливочное", Category: model.CategoryFatsOils, Calories: 717, Protein: 0.5, Fat: 78.0, Carbs: 0.8},
}
