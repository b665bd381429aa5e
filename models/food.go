package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category taxonomy for catalog items. The planner's role buckets are built on
// top of these values.
const (
	CategoryProteinAnimal = "protein-animal"
	CategoryProteinPlant  = "protein-plant"
	CategoryCarbohydrate  = "carbohydrate"
	CategoryVegetable     = "vegetable"
	CategoryFruit         = "fruit"
	CategoryDairySnack    = "dairy-or-snack"
	CategoryOther         = "other"
)

func FoodCategories() []string {
	return []string{
		CategoryProteinAnimal,
		CategoryProteinPlant,
		CategoryCarbohydrate,
		CategoryVegetable,
		CategoryFruit,
		CategoryDairySnack,
		CategoryOther,
	}
}

// FoodItem is a catalog entry. Macro values are defined per exactly one
// serving (ServingQuantity of ServingUnit); any consumed amount is a serving
// multiplier on top of these values.
type FoodItem struct {
	gorm.Model
	Name     string  `gorm:"index;not null" json:"name"`
	Category string  `gorm:"index" json:"category"`
	Calories float64 `gorm:"not null" json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	ServingQuantity float64 `gorm:"default:1" json:"servingQuantity"` // e.g. 100
	ServingUnit     string  `gorm:"size:32;default:serving" json:"servingUnit"`

	// Comma-separated: diet labels the item satisfies ("vegan,halal,keto").
	DietaryTags string `gorm:"type:text" json:"dietaryTags"`
	// Comma-separated: allergens the item contains ("gluten,milk,peanut").
	Allergens string `gorm:"type:text" json:"allergens"`
}

func (f *FoodItem) DietaryTagList() []string { return SplitTags(f.DietaryTags) }
func (f *FoodItem) AllergenList() []string   { return SplitTags(f.Allergens) }

// SplitTags splits a comma-separated tag column into trimmed, lowercased tags.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinTags(tags []string) string { return strings.Join(tags, ",") }
