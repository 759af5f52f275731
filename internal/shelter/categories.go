// Package shelter finds emergency shelters near a destination and guarantees that every
// known category has at least a curated referral entry.
package shelter

// Fixed shelter categories in display order.
const (
	CategoryGeneral  = "General"
	CategoryWomenDV  = "Women / Domestic-Violence"
	CategoryElderly  = "Elderly"
	CategoryDisabled = "Disabled / ADA"
	CategoryMental   = "Mental Health"
	CategoryVeterans = "Veterans"
	CategoryFamilies = "Families w/ Children"
	CategoryPets     = "Pet-Friendly"
	CategoryHospital = "Hospital / Medical"
)

// Categories returns the fixed category enumeration in display order.
func Categories() []string {
	return []string{
		CategoryGeneral,
		CategoryWomenDV,
		CategoryElderly,
		CategoryDisabled,
		CategoryMental,
		CategoryVeterans,
		CategoryFamilies,
		CategoryPets,
		CategoryHospital,
	}
}

// tagCategories maps social_facility and amenity tag values to a category label.
//
//nolint:gochecknoglobals // read-only lookup table
var tagCategories = map[string]string{
	"dv_shelter":        CategoryWomenDV,
	"elderly_care":      CategoryElderly,
	"disabled":          CategoryDisabled,
	"mental_health":     CategoryMental,
	"housing_emergency": "General Emergency",
	"food_bank":         "Food / Supply Distribution",
	"group_home":        "Group Home",
	"shelter":           CategoryGeneral,
	"social_centre":     "Social Centre",
	"hospital":          CategoryHospital,
	"veterinary":        "Pet-Friendly (Veterinary)",
}

// CategoryFor resolves a facility category from its tags: social_facility first, then
// amenity, else General.
func CategoryFor(tags map[string]string) string {
	if category, ok := tagCategories[tags["social_facility"]]; ok {
		return category
	}
	if category, ok := tagCategories[tags["amenity"]]; ok {
		return category
	}

	return CategoryGeneral
}
