package services

import (
	"errors"
	"sync"
	"time"

	"ptd/internal/models"
	"ptd/internal/notify"
	"ptd/internal/structures"
)

const defaultBadgeWindow = 24 * time.Hour

// LicenseInterface is the entitlement oracle. The service only reads the
// unlimited flag at registration time; activation lives elsewhere.
type LicenseInterface interface {
	IsUnlimited() bool
	State() models.LicenseState
	Load(state models.LicenseState)
}

type TrackResult struct {
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	Message      string                 `json:"message,omitempty"`
	Product      *models.TrackedProduct `json:"product,omitempty"`
	CurrentCount int                    `json:"currentCount"`
	Limit        int                    `json:"limit"`
	IsUnlimited  bool                   `json:"isPro"`
}

type CheckResult struct {
	Success      bool    `json:"success"`
	Tracked      bool    `json:"tracked"`
	PriceDropped bool    `json:"priceDropped"`
	PriceChanged bool    `json:"priceChanged"`
	OldPrice     float64 `json:"oldPrice,omitempty"`
	NewPrice     float64 `json:"newPrice,omitempty"`
	Savings      string  `json:"savings,omitempty"`
}

type TrackerServiceInterface interface {
	TrackProduct(r *models.Reading) *TrackResult
	CheckPrice(r *models.Reading, foreground bool) *CheckResult
	DeleteProduct(id string)
	DeleteAllProducts()
	ClearAlerts()
	DeleteAlert(id string)
	CleanupAlerts() int
	Remind()
	GetProducts() []*models.TrackedProduct
	GetAlerts() []*models.AlertRecord
	GetStats() models.Stats
	GetSettings() models.Settings
	UpdateSettings(patch models.SettingsPatch) models.Settings
	Badge() notify.BadgeState
	ProductCount() int
	AlertCount() int
	GetSnapshot() *models.Snapshot
	PutSnapshot(s *models.Snapshot)
}

type TrackerService struct {
	store       *models.ProductStore
	ledger      *models.AlertLedger
	license     LicenseInterface
	dispatcher  notify.DispatcherInterface
	badgeWindow time.Duration

	settingsMu sync.RWMutex
	settings   models.Settings
}

func NewTrackerService(conf *structures.Config, license LicenseInterface, dispatcher notify.DispatcherInterface) TrackerServiceInterface {
	window := conf.Tracker.BadgeWindow * time.Second
	if window <= 0 {
		window = defaultBadgeWindow
	}
	return &TrackerService{
		store:       models.NewProductStore(),
		ledger:      models.NewAlertLedger(),
		license:     license,
		dispatcher:  dispatcher,
		badgeWindow: window,
		settings:    models.DefaultSettings(),
	}
}

// TrackProduct registers a brand-new product. The quota check runs strictly
// before registration and never applies to re-checks of existing products.
func (ts *TrackerService) TrackProduct(r *models.Reading) *TrackResult {
	decision := models.AuthorizeNewProduct(ts.store.Len(), ts.license.IsUnlimited())
	if !decision.Allowed {
		return &TrackResult{
			Success:      false,
			Error:        "limit_reached",
			Message:      "Free plan limit reached. Upgrade for unlimited tracking.",
			CurrentCount: decision.CurrentCount,
			Limit:        decision.Limit,
		}
	}

	p, err := ts.store.Register(r, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrAlreadyTracked) {
			return &TrackResult{Success: false, Error: "already_tracked", Limit: decision.Limit}
		}
		return &TrackResult{Success: false, Error: err.Error()}
	}

	return &TrackResult{
		Success:      true,
		Product:      p,
		CurrentCount: ts.store.Len(),
		Limit:        decision.Limit,
		IsUnlimited:  ts.license.IsUnlimited(),
	}
}

// CheckPrice applies a fresh reading to a tracked product, classifies the
// change and emits the side effects: alert record on drops, notification
// request via the dispatcher. An unknown URL reports tracked:false.
func (ts *TrackerService) CheckPrice(r *models.Reading, foreground bool) *CheckResult {
	now := time.Now()
	obs, err := ts.store.Observe(r, now)
	if err != nil {
		return &CheckResult{Success: true, Tracked: false}
	}

	change := models.Classify(obs.PriceBefore, r.Price)

	var alert *models.AlertRecord
	if change.Outcome == models.Dropped {
		alert = ts.ledger.RecordDrop(&obs.Product, change, now)
	}
	ts.dispatcher.Dispatch(&obs.Product, change, alert, foreground)

	res := &CheckResult{
		Success:  true,
		Tracked:  true,
		OldPrice: obs.PriceBefore,
		NewPrice: obs.PriceAfter,
	}
	switch change.Outcome {
	case models.Dropped:
		res.PriceDropped = true
		res.PriceChanged = true
		res.Savings = change.SavingsPercent
	case models.Increased:
		res.PriceChanged = true
	}
	return res
}

func (ts *TrackerService) DeleteProduct(id string) {
	ts.store.Delete(id)
}

func (ts *TrackerService) DeleteAllProducts() {
	ts.store.DeleteAll()
}

func (ts *TrackerService) ClearAlerts() {
	ts.ledger.Clear()
}

func (ts *TrackerService) DeleteAlert(id string) {
	ts.ledger.Delete(id)
}

func (ts *TrackerService) CleanupAlerts() int {
	return ts.ledger.Trim()
}

// Remind emits the periodic reminder when anything is tracked and
// notifications are enabled.
func (ts *TrackerService) Remind() {
	if !ts.GetSettings().EnableNotifications {
		return
	}
	ts.dispatcher.Remind(ts.store.Len())
}

func (ts *TrackerService) GetProducts() []*models.TrackedProduct {
	return ts.store.List()
}

func (ts *TrackerService) GetAlerts() []*models.AlertRecord {
	return ts.ledger.List()
}

func (ts *TrackerService) GetStats() models.Stats {
	return models.Stats{
		TotalTracked:    ts.store.Len(),
		TotalPriceDrops: ts.ledger.TotalPriceDrops(),
		TotalSaved:      ts.ledger.TotalSaved(),
	}
}

func (ts *TrackerService) GetSettings() models.Settings {
	ts.settingsMu.RLock()
	defer ts.settingsMu.RUnlock()
	return ts.settings
}

func (ts *TrackerService) UpdateSettings(patch models.SettingsPatch) models.Settings {
	ts.settingsMu.Lock()
	defer ts.settingsMu.Unlock()
	if patch.EnableNotifications != nil {
		ts.settings.EnableNotifications = *patch.EnableNotifications
	}
	if patch.EnableBadge != nil {
		ts.settings.EnableBadge = *patch.EnableBadge
	}
	if patch.CheckFrequency != nil && *patch.CheckFrequency > 0 {
		ts.settings.CheckFrequency = *patch.CheckFrequency
	}
	return ts.settings
}

func (ts *TrackerService) Badge() notify.BadgeState {
	recent := ts.ledger.RecentDropCount(ts.badgeWindow, time.Now())
	return notify.BadgeFor(recent, ts.store.Len(), ts.GetSettings().EnableBadge)
}

func (ts *TrackerService) ProductCount() int {
	return ts.store.Len()
}

func (ts *TrackerService) AlertCount() int {
	return ts.ledger.Len()
}

func (ts *TrackerService) GetSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Version:  models.SnapshotVersion,
		Products: ts.store.List(),
		Alerts:   ts.ledger.List(),
		Stats:    ts.GetStats(),
		Settings: ts.GetSettings(),
		License:  ts.license.State(),
	}
}

// PutSnapshot restores state from a persisted envelope. Missing sections
// fall back to empty defaults so legacy files load cleanly.
func (ts *TrackerService) PutSnapshot(s *models.Snapshot) {
	if s == nil {
		return
	}
	ts.store.PutData(s.Products)
	ts.ledger.PutData(s.Alerts, s.Stats.TotalPriceDrops, s.Stats.TotalSaved)

	settings := s.Settings
	if settings.CheckFrequency == 0 {
		settings = models.DefaultSettings()
	}
	ts.settingsMu.Lock()
	ts.settings = settings
	ts.settingsMu.Unlock()

	ts.license.Load(s.License)
}
