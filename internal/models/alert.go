package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// AlertLimit bounds the ledger to the most recent alerts, newest first.
const AlertLimit = 100

const AlertTypePriceDrop = "price_drop"

// AlertRecord is a denormalized snapshot of a product at drop time. It
// survives deletion of the product it references.
type AlertRecord struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductTitle string    `json:"productTitle"`
	Type         string    `json:"type"`
	OldPrice     float64   `json:"oldPrice"`
	NewPrice     float64   `json:"newPrice"`
	Savings      string    `json:"savings"`
	SavedAmount  string    `json:"savedAmount"`
	Currency     string    `json:"currency"`
	URL          string    `json:"url"`
	Image        string    `json:"image"`
	Time         time.Time `json:"time"`
}

// Stats is the persisted aggregate view. TotalSaved is a 2-decimal string
// at the boundary; internally the ledger accumulates integer cents.
type Stats struct {
	TotalTracked    int    `json:"totalTracked"`
	TotalPriceDrops int    `json:"totalPriceDrops"`
	TotalSaved      string `json:"totalSaved"`
}

// AlertLedger owns the bounded, newest-first sequence of price-drop alerts
// and the running drop counters. Thread-safe.
type AlertLedger struct {
	mu              sync.RWMutex
	alerts          []*AlertRecord
	totalPriceDrops int
	totalSavedCents int64
}

func NewAlertLedger() *AlertLedger {
	return &AlertLedger{}
}

// RecordDrop appends an alert for a confirmed price drop and updates the
// running counters. Returns nil for any non-Dropped classification.
func (l *AlertLedger) RecordDrop(p *TrackedProduct, change PriceChange, now time.Time) *AlertRecord {
	if change.Outcome != Dropped {
		return nil
	}

	a := &AlertRecord{
		ID:           uuid.NewString(),
		ProductID:    p.ID,
		ProductTitle: p.Title,
		Type:         AlertTypePriceDrop,
		OldPrice:     change.OldPrice,
		NewPrice:     change.NewPrice,
		Savings:      change.SavingsPercent,
		SavedAmount:  change.SavedAmount,
		Currency:     p.Currency,
		URL:          p.URL,
		Image:        p.Image,
		Time:         now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.alerts = append([]*AlertRecord{a}, l.alerts...)
	if len(l.alerts) > AlertLimit {
		l.alerts = l.alerts[:AlertLimit]
	}
	l.totalPriceDrops++
	l.totalSavedCents += change.SavedCents

	cp := *a
	return &cp
}

// Clear empties the ledger and resets the drop counters. Only triggered by
// explicit user action.
func (l *AlertLedger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alerts = nil
	l.totalPriceDrops = 0
	l.totalSavedCents = 0
}

// Delete removes a single alert by id. Idempotent, and the counters are
// deliberately left untouched: they are running totals, not live aggregates.
func (l *AlertLedger) Delete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, a := range l.alerts {
		if a.ID == id {
			l.alerts = append(l.alerts[:i], l.alerts[i+1:]...)
			return
		}
	}
}

// Trim re-applies the ledger bound, returning how many records were cut.
// The bound already holds after every RecordDrop; this backs the periodic
// cleanup job and snapshot restores from oversized legacy files.
func (l *AlertLedger) Trim() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.alerts) <= AlertLimit {
		return 0
	}
	removed := len(l.alerts) - AlertLimit
	l.alerts = l.alerts[:AlertLimit]
	return removed
}

// RecentDropCount counts price-drop alerts within the trailing window.
func (l *AlertLedger) RecentDropCount(window time.Duration, now time.Time) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, a := range l.alerts {
		if a.Type == AlertTypePriceDrop && now.Sub(a.Time) < window {
			count++
		}
	}
	return count
}

// List returns the alerts newest first as copies.
func (l *AlertLedger) List() []*AlertRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]*AlertRecord, 0, len(l.alerts))
	for _, a := range l.alerts {
		cp := *a
		result = append(result, &cp)
	}
	return result
}

func (l *AlertLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.alerts)
}

func (l *AlertLedger) TotalPriceDrops() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalPriceDrops
}

func (l *AlertLedger) TotalSaved() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FormatCents(l.totalSavedCents)
}

// PutData replaces the ledger contents and counters on snapshot restore.
// The stored totalSaved string is parsed back to cents.
func (l *AlertLedger) PutData(alerts []*AlertRecord, totalPriceDrops int, totalSaved string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alerts = make([]*AlertRecord, 0, len(alerts))
	for _, a := range alerts {
		if a == nil {
			continue
		}
		cp := *a
		l.alerts = append(l.alerts, &cp)
	}
	if len(l.alerts) > AlertLimit {
		l.alerts = l.alerts[:AlertLimit]
	}
	l.totalPriceDrops = totalPriceDrops
	l.totalSavedCents = ParseCents(totalSaved)
}
