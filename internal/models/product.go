package models

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryLimit bounds the price history of a single product. When a new
// sample would exceed it, the oldest sample is dropped.
const HistoryLimit = 50

var (
	ErrAlreadyTracked = errors.New("product already tracked")
	ErrNotTracked     = errors.New("product not tracked")
)

type PricePoint struct {
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

type TrackedProduct struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	URL          string       `json:"url"`
	Image        string       `json:"image"`
	Site         string       `json:"site"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastChecked  time.Time    `json:"lastChecked"`
	LowestPrice  float64      `json:"lowestPrice"`
	HighestPrice float64      `json:"highestPrice"`
	PriceHistory []PricePoint `json:"priceHistory"`
}

// Observation is the result of applying a reading to a tracked product.
type Observation struct {
	Product     TrackedProduct
	PriceBefore float64
	PriceAfter  float64
}

// BaseURL strips the query string from a product URL. Tracking identity is
// the base URL, so the same page visited with different tracking params
// resolves to the same product.
func BaseURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}
	return u
}

// ProductStore owns the set of tracked products in insertion order.
// Thread-safe: all public methods acquire s.mu internally.
type ProductStore struct {
	mu       sync.RWMutex
	products []*TrackedProduct
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Register creates a new tracked product from a reading. The product is
// seeded with the reading's price as current, lowest and highest, and a
// single history sample. Fails with ErrAlreadyTracked when a product with
// the same base URL or id exists.
func (s *ProductStore) Register(r *Reading, now time.Time) (*TrackedProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(r) != nil {
		return nil, ErrAlreadyTracked
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	p := &TrackedProduct{
		ID:           id,
		Title:        r.Title,
		Price:        r.Price,
		Currency:     currencyOrDefault(r.Currency),
		URL:          r.URL,
		Image:        r.Image,
		Site:         r.Site,
		CreatedAt:    now,
		LastChecked:  now,
		LowestPrice:  r.Price,
		HighestPrice: r.Price,
		PriceHistory: []PricePoint{{Price: r.Price, Date: now}},
	}
	s.products = append(s.products, p)
	return copyProduct(p), nil
}

// Observe applies a fresh reading to an already-tracked product.
// LastChecked always advances. A zero price is a failed scrape and never
// touches the stored price, extrema or history. Title and image are
// refreshed when the reading carries them.
func (s *ProductStore) Observe(r *Reading, now time.Time) (*Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(r)
	if p == nil {
		return nil, ErrNotTracked
	}

	before := p.Price
	p.LastChecked = now
	if r.Title != "" {
		p.Title = r.Title
	}
	if r.Image != "" {
		p.Image = r.Image
	}

	if r.Price > 0 && r.Price != p.Price {
		p.Price = r.Price
		if r.Price < p.LowestPrice {
			p.LowestPrice = r.Price
		}
		if r.Price > p.HighestPrice {
			p.HighestPrice = r.Price
		}
		p.PriceHistory = append(p.PriceHistory, PricePoint{Price: r.Price, Date: now})
		if len(p.PriceHistory) > HistoryLimit {
			p.PriceHistory = p.PriceHistory[len(p.PriceHistory)-HistoryLimit:]
		}
	}

	return &Observation{Product: *copyProduct(p), PriceBefore: before, PriceAfter: p.Price}, nil
}

// Delete removes a product by id. Deleting an unknown id is a no-op.
func (s *ProductStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

func (s *ProductStore) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
}

// List returns the tracked products in insertion order as copies.
func (s *ProductStore) List() []*TrackedProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*TrackedProduct, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, copyProduct(p))
	}
	return result
}

func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// PutData replaces the store contents, used on snapshot restore.
func (s *ProductStore) PutData(products []*TrackedProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]*TrackedProduct, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		s.products = append(s.products, copyProduct(p))
	}
}

// find matches by base URL first, then by id. Caller must hold s.mu.
func (s *ProductStore) find(r *Reading) *TrackedProduct {
	base := BaseURL(r.URL)
	for _, p := range s.products {
		if base != "" && BaseURL(p.URL) == base {
			return p
		}
		if r.ID != "" && p.ID == r.ID {
			return p
		}
	}
	return nil
}

func copyProduct(p *TrackedProduct) *TrackedProduct {
	cp := *p
	cp.PriceHistory = make([]PricePoint, len(p.PriceHistory))
	copy(cp.PriceHistory, p.PriceHistory)
	return &cp
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "$"
	}
	return c
}
