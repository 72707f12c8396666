package content

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"storeforge/internal/types"
	"storeforge/internal/utils"
)

// Generator builds mock storefront bundles from an idea phrase. The only
// non-determinism is the brand suffix and the price, both drawn uniformly
// from fixed tables.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from the given source. Tests
// pass a seeded source to pin the draws.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewDefaultGenerator returns a Generator seeded from the clock.
func NewDefaultGenerator() *Generator {
	return NewGenerator(rand.NewSource(time.Now().UnixNano()))
}

// Generate maps any phrase, including the empty string, to a bundle with
// one brand, one product and exactly three ads. It never fails.
func (g *Generator) Generate(phrase string) types.GenerationResponse {
	suffix, price := g.draw()

	return types.GenerationResponse{
		Brand: types.Brand{
			Name:    brandName(phrase, suffix),
			LogoURL: logoURL(phrase),
		},
		Product: types.Product{
			Title:       utils.Capitalize(phrase) + titleSuffix,
			Description: fmt.Sprintf(descriptionTemplate, phrase, phrase),
			Price:       fmt.Sprintf(priceFormat, price),
		},
		Ads: ads(phrase),
	}
}

// draw takes the random picks under the lock; *rand.Rand is not safe for
// concurrent use and handlers share one Generator.
func (g *Generator) draw() (suffix string, price float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	suffix = brandSuffixes[g.rng.Intn(len(brandSuffixes))]
	price = pricePoints[g.rng.Intn(len(pricePoints))]
	return suffix, price
}

// brandName joins the capitalized first token of the phrase with the drawn
// suffix and caps the result at 30 characters. An empty phrase yields the
// suffix alone.
func brandName(phrase, suffix string) string {
	name := suffix
	if first := utils.FirstField(phrase); first != "" {
		name = utils.Capitalize(first) + " " + suffix
	}
	return utils.TruncateRunes(name, maxBrandLen)
}

func logoURL(phrase string) string {
	return logoURLBase + strings.ReplaceAll(phrase, " ", "+")
}

func ads(phrase string) []string {
	out := make([]string, len(adTemplates))
	for i, tpl := range adTemplates {
		out[i] = fmt.Sprintf(tpl, phrase)
	}
	return out
}
