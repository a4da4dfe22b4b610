package models

// Reading is a single scraped snapshot of a product page. Scrapers are
// external and unreliable: any field may be empty and Price may be zero
// when the page could not be parsed.
type Reading struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	URL      string  `json:"url"`
	Image    string  `json:"image"`
	Site     string  `json:"site"`
}
