package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/grubline/grubline/internal/models"
)

var fake = faker.New()

var categories = []string{"Pizza", "Burgers", "Curry", "Salad", "Drinks", "Desserts", "Grill", "Breakfast"}

var spiceLevels = []models.SpiceLevel{models.SpiceMild, models.SpiceMedium, models.SpiceHot}

type FoodFactory struct{}

// CreateFood builds a fully populated listing for a vendor.
func (ff *FoodFactory) CreateFood(vendorID string) models.Food {
	variantCount := rand.Intn(3) + 1
	variants := make([]models.Variant, variantCount)
	for i := range variants {
		variants[i] = ff.CreateVariant()
	}

	return models.Food{
		ID:                    cuid.New(),
		VendorID:              vendorID,
		Name:                  generateDishName(),
		Description:           fake.Lorem().Sentence(10),
		Category:              categories[rand.Intn(len(categories))],
		Price:                 fake.Float64(2, 5, 50),
		DeliveryFee:           fake.Float64(2, 0, 8),
		EstimatedDeliveryTime: fake.RandomStringElement([]string{"15-25 min", "25-40 min", "40-60 min"}),
		Tags:                  generateTags(),
		Available:             true,
		Images:                []string{fake.Internet().URL() + "/cover.jpg"},
		Variants:              variants,
		Metadata: &models.Metadata{
			PortionSize: fake.RandomStringElement([]string{"Small", "Regular", "Large", "Family"}),
			SpiceLevel:  spiceLevels[rand.Intn(len(spiceLevels))],
			ChefSpecial: fake.Bool(),
		},
		Rating:       fake.Float64(1, 3, 5),
		TotalRatings: rand.Intn(500),
	}
}

// CreateVariant builds a persisted (ID-bearing) variant.
func (ff *FoodFactory) CreateVariant() models.Variant {
	return models.Variant{
		ID:    cuid.New(),
		Name:  fake.RandomStringElement([]string{"Small", "Medium", "Large", "Extra Large"}),
		Price: fake.Float64(2, 3, 30),
		Image: fake.Internet().URL() + "/variant.jpg",
	}
}

// CreateDraft builds an in-progress draft, the kind the draft store
// persists between edits.
func (ff *FoodFactory) CreateDraft() *models.FoodDraft {
	return &models.FoodDraft{
		Name:                  generateDishName(),
		Description:           fake.Lorem().Sentence(8),
		Category:              categories[rand.Intn(len(categories))],
		Price:                 fake.Float64(2, 5, 50),
		DeliveryFee:           fake.Float64(2, 0, 8),
		EstimatedDeliveryTime: "25-40 min",
		Tags:                  generateTags(),
		Available:             true,
		Variants: []models.Variant{
			{Name: "Regular", Price: fake.Float64(2, 5, 20)},
		},
	}
}

func generateDishName() string {
	dishes := map[string][]string{
		"Pizza":   {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
		"Burgers": {"Classic Cheeseburger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger"},
		"Curry":   {"Chicken Tikka Masala", "Vegetable Curry", "Beef Madras", "Paneer Butter Masala"},
		"Salad":   {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
		"Grill":   {"Grilled Chicken", "BBQ Ribs", "Grilled Salmon", "Mixed Grill Platter"},
	}
	category := categories[rand.Intn(len(categories))]
	if names, ok := dishes[category]; ok {
		return names[rand.Intn(len(names))]
	}
	return "Special of the Day"
}

func generateTags() []string {
	all := []string{"spicy", "vegan", "vegetarian", "gluten-free", "halal", "bestseller", "new", "chef-special"}
	count := rand.Intn(3) + 1
	tags := make([]string, 0, count)
	for i := 0; i < count; i++ {
		t := all[rand.Intn(len(all))]
		seen := false
		for _, existing := range tags {
			if existing == t {
				seen = true
				break
			}
		}
		if !seen {
			tags = append(tags, t)
		}
	}
	return tags
}
