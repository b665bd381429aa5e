package services

import (
	"strings"

	"github.com/irsyadst/nutri-balance-backend/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// FoodQuery filters the catalog. Category and Search are pushed down to the
// store; tag and allergen matching happens on the CSV columns in memory.
type FoodQuery struct {
	Category          string
	Search            string
	RequiredTags      []string // item's dietaryTags must be a superset
	ExcludedAllergens []string // item's allergens must not intersect
}

func (s *FoodService) Search(q FoodQuery) ([]models.FoodItem, error) {
	query := s.db.Model(&models.FoodItem{})
	if q.Category != "" {
		query = query.Where("category = ?", strings.ToLower(q.Category))
	}
	if q.Search != "" {
		query = query.Where("name ILIKE ?", "%"+q.Search+"%")
	}

	var foods []models.FoodItem
	if err := query.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}

	if len(q.RequiredTags) == 0 && len(q.ExcludedAllergens) == 0 {
		return foods, nil
	}
	out := foods[:0]
	for _, f := range foods {
		if matchesConstraints(f, q.RequiredTags, q.ExcludedAllergens) {
			out = append(out, f)
		}
	}
	return out, nil
}

// matchesConstraints reports whether the item satisfies every required diet
// tag and contains none of the excluded allergens.
func matchesConstraints(f models.FoodItem, requiredTags, excludedAllergens []string) bool {
	tags := toSet(f.DietaryTagList())
	for _, want := range requiredTags {
		if _, ok := tags[strings.ToLower(want)]; !ok {
			return false
		}
	}
	allergens := toSet(f.AllergenList())
	for _, avoid := range excludedAllergens {
		if _, ok := allergens[strings.ToLower(avoid)]; ok {
			return false
		}
	}
	return true
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// EligibleForProfile returns the catalog filtered by the profile's dietary
// restrictions and allergies, i.e. the pool the plan generator draws from.
func (s *FoodService) EligibleForProfile(p *models.UserProfile) ([]models.FoodItem, error) {
	return s.Search(FoodQuery{
		RequiredTags:      p.RestrictionList(),
		ExcludedAllergens: p.AllergyList(),
	})
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.First(&food, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := s.db.Order("name ASC").Find(&foods).Error
	return foods, err
}

// ---------- admin CRUD ----------

func (s *FoodService) Create(food *models.FoodItem) error {
	normalizeFood(food)
	return s.db.Create(food).Error
}

func (s *FoodService) Update(id uint, in *models.FoodItem) (*models.FoodItem, error) {
	food, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	normalizeFood(in)
	food.Name = in.Name
	food.Category = in.Category
	food.Calories = in.Calories
	food.Proteins = in.Proteins
	food.Carbs = in.Carbs
	food.Fats = in.Fats
	food.ServingQuantity = in.ServingQuantity
	food.ServingUnit = in.ServingUnit
	food.DietaryTags = in.DietaryTags
	food.Allergens = in.Allergens
	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes the catalog row only. Historical log entries keep their
// snapshots; plan entries referencing it are null-skipped at display time.
func (s *FoodService) Delete(id uint) error {
	res := s.db.Delete(&models.FoodItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeFood(f *models.FoodItem) {
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.DietaryTags = models.JoinTags(models.SplitTags(f.DietaryTags))
	f.Allergens = models.JoinTags(models.SplitTags(f.Allergens))
	if f.ServingQuantity <= 0 {
		f.ServingQuantity = 1
	}
	if f.ServingUnit == "" {
		f.ServingUnit = "serving"
	}
}
