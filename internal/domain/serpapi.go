package domain

// ShoppingListing is a raw Google Shopping listing from the SerpApi response.
// Only the allow-listed fields the pipeline uses are mapped.
type ShoppingListing struct {
	Title          string   `json:"title"`
	Source         string   `json:"source"`
	Price          string   `json:"price"`
	ExtractedPrice *float64 `json:"extracted_price"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Delivery       string   `json:"delivery"`
	ProductLink    string   `json:"product_link"`
}

// ShoppingSearchResponse is the SerpApi response envelope: either a list of
// listings or an error message, never both.
type ShoppingSearchResponse struct {
	ShoppingResults []ShoppingListing `json:"shopping_results"`
	Error           string            `json:"error"`
}
