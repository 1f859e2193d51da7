package factories

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/lucsky/cuid"

	"github.com/grubline/grubline/internal/models"
)

type VendorFactory struct {
	slugCache sync.Map // to track used slugs
}

func (vf *VendorFactory) CreateVendor() *models.Vendor {
	name := fake.Company().Name()

	cuisineCount := rand.Intn(2) + 1
	cuisines := make([]string, cuisineCount)
	for i := range cuisines {
		cuisines[i] = categories[rand.Intn(len(categories))]
	}

	return &models.Vendor{
		ID:            cuid.New(),
		Name:          name,
		SlugName:      vf.uniqueSlug(name),
		Email:         fake.Internet().Email(),
		Phone:         fake.Phone().Number(),
		Town:          fake.Address().City(),
		Address:       fake.Address().StreetAddress(),
		LogoURL:       fake.Internet().URL() + "/logo.png",
		CoverImageURL: fake.Internet().URL() + "/cover.jpg",
		Cuisines:      cuisines,
		Rating:        fake.Float64(1, 3, 5),
		TotalRatings:  float64(rand.Intn(2000)),
		KYCVerified:   fake.Bool(),
	}
}

func (vf *VendorFactory) uniqueSlug(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	slug := base
	for i := 2; ; i++ {
		if _, taken := vf.slugCache.LoadOrStore(slug, true); !taken {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
