package types

// Brand is the mock brand identity derived from an idea phrase.
type Brand struct {
	Name    string `json:"name"`    // display name, at most 30 characters
	LogoURL string `json:"logoUrl"` // placeholder image URL, no real asset behind it
}

// Product is the mock product listing derived from an idea phrase.
type Product struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"` // formatted currency string, e.g. "$24.99"
}

// GenerationRequest is the body of POST /generate. Idea is a pointer so an
// absent field (default applies) can be told apart from an explicit "".
type GenerationRequest struct {
	Idea *string `json:"idea,omitempty"`
}

// GenerationResponse is the full bundle returned per generation call.
type GenerationResponse struct {
	Brand   Brand    `json:"brand"`
	Product Product  `json:"product"`
	Ads     []string `json:"ads"` // always exactly 3 entries, stable order
}
