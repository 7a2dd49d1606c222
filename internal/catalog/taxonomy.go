package catalog

// Taxonomy is the shared list of categories, subcategories and units used
// by every product form and filter.
type Taxonomy struct {
	Categories    []string            `json:"categories"`
	Subcategories map[string][]string `json:"subcategories"`
	Units         []string            `json:"units"`
}

var categories = []string{
	"Atta, Rice & Dal",
	"Bakery & Biscuits",
	"Chicken, Meat & Fish",
	"Dairy, Bread & Eggs",
	"Dry Fruits",
	"Oil, Ghee & Masala",
	"Vegetables & Fruits",
	"Chips & Namkeen",
	"Drinks & Juices",
	"Ice Creams & More",
	"Instant Food",
	"Sauces & Spreads",
	"Sweets & Chocolates",
	"Tea, Coffee & Milk Drinks",
	"Air Fresheners",
	"Cleaning Supplies",
	"Baby Care",
	"Pooja Essentials",
	"Personal Care",
	"Laundry Care",
	"Paper Products",
	"Toiletries",
}

var subcategories = map[string][]string{
	"Atta, Rice & Dal":          {"Atta", "Rice", "Dal & Pulses", "Besan & Sooji"},
	"Bakery & Biscuits":         {"Bread", "Biscuits", "Cakes & Rusks"},
	"Chicken, Meat & Fish":      {"Chicken", "Mutton", "Fish & Seafood", "Eggs"},
	"Dairy, Bread & Eggs":       {"Milk", "Curd & Yogurt", "Butter & Cheese", "Paneer", "Eggs"},
	"Dry Fruits":                {"Almonds", "Cashews", "Raisins", "Dates", "Mixed Dry Fruits"},
	"Oil, Ghee & Masala":        {"Cooking Oil", "Ghee", "Whole Spices", "Powdered Masala"},
	"Vegetables & Fruits":       {"Fresh Vegetables", "Fresh Fruits", "Herbs & Seasonings"},
	"Chips & Namkeen":           {"Chips", "Namkeen", "Popcorn"},
	"Drinks & Juices":           {"Soft Drinks", "Juices", "Energy Drinks", "Water"},
	"Ice Creams & More":         {"Ice Creams", "Frozen Desserts"},
	"Instant Food":              {"Noodles", "Pasta", "Ready to Cook", "Soups"},
	"Sauces & Spreads":          {"Ketchup", "Jams", "Spreads", "Pickles"},
	"Sweets & Chocolates":       {"Chocolates", "Indian Sweets", "Candies"},
	"Tea, Coffee & Milk Drinks": {"Tea", "Coffee", "Health Drinks"},
	"Air Fresheners":            {"Room Fresheners", "Car Fresheners"},
	"Cleaning Supplies":         {"Floor Cleaners", "Dishwash", "Toilet Cleaners"},
	"Baby Care":                 {"Diapers", "Baby Food", "Baby Skin Care"},
	"Pooja Essentials":          {"Agarbatti", "Camphor", "Diyas & Wicks"},
	"Personal Care":             {"Bath & Body", "Hair Care", "Skin Care", "Oral Care"},
	"Laundry Care":              {"Detergent Powder", "Liquid Detergent", "Fabric Conditioner"},
	"Paper Products":            {"Tissues", "Napkins", "Kitchen Rolls"},
	"Toiletries":                {"Soaps", "Shaving", "Deodorants"},
}

var units = []string{"gm", "kg", "ml", "l", "pack", "pieces"}

// DefaultTaxonomy returns a copy of the shared taxonomy.
func DefaultTaxonomy() Taxonomy {
	subs := make(map[string][]string, len(subcategories))
	for k, v := range subcategories {
		subs[k] = append([]string(nil), v...)
	}
	return Taxonomy{
		Categories:    append([]string(nil), categories...),
		Subcategories: subs,
		Units:         append([]string(nil), units...),
	}
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	return contains(categories, name)
}

// IsSubcategory reports whether sub belongs to category.
func IsSubcategory(category, sub string) bool {
	return contains(subcategories[category], sub)
}

// IsUnit reports whether unit is a known unit.
func IsUnit(unit string) bool {
	return contains(units, unit)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
