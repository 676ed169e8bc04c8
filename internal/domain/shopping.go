package domain

// Item is a single product the user wants to buy.
type Item struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

// Constraints carries the budget, currency and location extracted from the
// user request. Budget, when set, is a canonical two-decimal string ("50.00").
type Constraints struct {
	Budget   *string `json:"budget"`
	Currency *string `json:"currency"`
	Location string  `json:"location"`
}

// ShoppingRequest is the structured form of a free-text shopping request.
type ShoppingRequest struct {
	Items       []Item      `json:"items"`
	Constraints Constraints `json:"constraints"`
	Raw         string      `json:"raw"`
}

// Candidate is one marketplace listing attached to a requested item.
// Rows with an unparseable price are dropped before they become Candidates,
// so UnitPrice is always set.
type Candidate struct {
	Product     string  `json:"product"`
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	Price       string  `json:"price,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	RowTotal    float64 `json:"row_total"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
	Delivery    string  `json:"delivery,omitempty"`
	ProductLink string  `json:"product_link"`
}

// SelectedOffer is the reduced row shape the selection model returns.
type SelectedOffer struct {
	Product     string  `json:"product"`
	Title       string  `json:"title"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	RowTotal    float64 `json:"row_total"`
	ProductLink string  `json:"product_link"`
}

// Selection is the model's chosen bundle. Total is the model's own arithmetic
// and is passed through without reconciliation against the rows.
type Selection struct {
	Selected []SelectedOffer `json:"selected"`
	Total    float64         `json:"total"`
}

// ShoppingPlan is the full pipeline output handed to the presentation layer.
type ShoppingPlan struct {
	Request        ShoppingRequest `json:"request"`
	CandidateCount int             `json:"candidateCount"`
	Selection      Selection       `json:"selection"`
}
