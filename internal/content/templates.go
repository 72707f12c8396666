package content

// DefaultIdea is substituted when a generation request carries no idea.
const DefaultIdea = "cool product"

const (
	titleSuffix = " — Premium Edition"
	logoURLBase = "https://placehold.co/200x200?text="
	maxBrandLen = 30
	priceFormat = "$%.2f"
)

// brandSuffixes are the decorative endings appended to the brand name;
// one is drawn uniformly per generation.
var brandSuffixes = [...]string{"Co", "Lab", "Works", "Craft", "Studio", "Goods", "Peak", "Root"}

// pricePoints are the only prices the mock storefront ever quotes.
var pricePoints = [...]float64{19.99, 24.99, 29.99, 49.99}

const descriptionTemplate = "Meet the all-new %s. This %s is crafted for everyday life, pairing thoughtful design with honest quality."

// adTemplates produce the three ad variants, returned in this order.
var adTemplates = [...]string{
	"Tired of ordinary? Meet the %s everyone keeps talking about.",
	"Upgrade your day with a %s. Limited stock, zero regrets.",
	"The %s you didn't know you needed. Free shipping this week only.",
}
