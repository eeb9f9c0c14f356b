package datagen

// ── Word pools ──

var firstNames = []string{
	"Avery", "Jordan", "Logan", "Riley", "Parker",
	"Quinn", "Hayden", "Morgan", "Sawyer", "Dakota",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
}

var cities = []string{
	"Austin", "Seattle", "Denver", "Boston", "Chicago",
	"Miami", "Atlanta", "Phoenix", "Portland", "Dallas",
}

var states = []string{"TX", "WA", "CO", "MA", "IL", "FL", "GA", "AZ", "OR", "TX"}

var loyaltyTiers = []string{"Bronze", "Silver", "Gold", "Platinum"}
var loyaltyWeights = []float64{0.45, 0.3, 0.2, 0.05}

// productCategory pairs a category with its base product names. Order is
// fixed: product IDs are assigned by walking categories in this order.
type productCategory struct {
	Name  string
	Items []string
}

var productCategories = []productCategory{
	{"Electronics", []string{"Bluetooth Speaker", "Wireless Earbuds", "Smart Watch", "Tablet", "Gaming Mouse"}},
	{"Home", []string{"Air Purifier", "Coffee Maker", "Blender", "Vacuum Cleaner", "Smart Lamp"}},
	{"Apparel", []string{"Running Shoes", "Denim Jacket", "Yoga Pants", "Baseball Cap", "Wool Scarf"}},
	{"Beauty", []string{"Moisturizer", "Serum", "Perfume", "Hair Dryer", "Shampoo"}},
	{"Outdoors", []string{"Camping Tent", "Hiking Backpack", "Travel Mug", "LED Lantern", "Water Bottle"}},
}

var orderStatuses = []string{"processing", "shipped", "delivered", "returned"}
var orderStatusWeights = []float64{0.2, 0.3, 0.45, 0.05}

var shippingMethods = []string{"standard", "expedited", "overnight"}

var paymentMethods = []string{"credit_card", "paypal", "apple_pay", "google_pay"}
