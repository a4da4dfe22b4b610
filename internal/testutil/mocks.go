package testutil

import (
	"sync"

	"ptd/internal/models"
	"ptd/internal/notify"
	"ptd/internal/providers"
	"ptd/internal/services"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockTrackerService implements services.TrackerServiceInterface with
// injectable canned data and call recording.
type MockTrackerService struct {
	mu sync.Mutex

	TrackCalls         []*models.Reading
	CheckCalls         []CheckCall
	DeletedProducts    []string
	DeletedAlerts      []string
	DeleteAllCalls     int
	ClearAlertsCalls   int
	CleanupCalls       int
	RemindCalls        int
	PutSnapshots       []*models.Snapshot
	UpdateSettingsCall []models.SettingsPatch

	TrackResult   *services.TrackResult
	CheckResult   *services.CheckResult
	Products      []*models.TrackedProduct
	Alerts        []*models.AlertRecord
	StatsData     models.Stats
	SettingsData  models.Settings
	BadgeState    notify.BadgeState
	SnapshotData  *models.Snapshot
	CleanupResult int
}

type CheckCall struct {
	Reading    *models.Reading
	Foreground bool
}

func (m *MockTrackerService) TrackProduct(r *models.Reading) *services.TrackResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrackCalls = append(m.TrackCalls, r)
	if m.TrackResult != nil {
		return m.TrackResult
	}
	return &services.TrackResult{Success: true}
}

func (m *MockTrackerService) CheckPrice(r *models.Reading, foreground bool) *services.CheckResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckCalls = append(m.CheckCalls, CheckCall{Reading: r, Foreground: foreground})
	if m.CheckResult != nil {
		return m.CheckResult
	}
	return &services.CheckResult{Success: true, Tracked: true}
}

func (m *MockTrackerService) DeleteProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletedProducts = append(m.DeletedProducts, id)
}

func (m *MockTrackerService) DeleteAllProducts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteAllCalls++
}

func (m *MockTrackerService) ClearAlerts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearAlertsCalls++
}

func (m *MockTrackerService) DeleteAlert(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletedAlerts = append(m.DeletedAlerts, id)
}

func (m *MockTrackerService) CleanupAlerts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CleanupCalls++
	return m.CleanupResult
}

func (m *MockTrackerService) Remind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemindCalls++
}

// CleanupCount and RemindCount read the call counters under the lock,
// for assertions that poll while scheduler goroutines are running.
func (m *MockTrackerService) CleanupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CleanupCalls
}

func (m *MockTrackerService) RemindCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RemindCalls
}

func (m *MockTrackerService) GetProducts() []*models.TrackedProduct {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Products
}

func (m *MockTrackerService) GetAlerts() []*models.AlertRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Alerts
}

func (m *MockTrackerService) GetStats() models.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.StatsData
}

func (m *MockTrackerService) GetSettings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SettingsData
}

func (m *MockTrackerService) UpdateSettings(patch models.SettingsPatch) models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateSettingsCall = append(m.UpdateSettingsCall, patch)
	return m.SettingsData
}

func (m *MockTrackerService) Badge() notify.BadgeState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.BadgeState
}

func (m *MockTrackerService) ProductCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Products)
}

func (m *MockTrackerService) AlertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Alerts)
}

func (m *MockTrackerService) GetSnapshot() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SnapshotData != nil {
		return m.SnapshotData
	}
	return &models.Snapshot{Version: models.SnapshotVersion}
}

func (m *MockTrackerService) PutSnapshot(s *models.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutSnapshots = append(m.PutSnapshots, s)
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockNotifier implements notify.NotifierInterface and records every request.
type MockNotifier struct {
	mu        sync.Mutex
	Drops     []*notify.PriceDropNotification
	Increases []*notify.PriceIncreaseInfo
	Reminders []*notify.ReminderNotification
}

func (m *MockNotifier) NotifyDrop(n *notify.PriceDropNotification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Drops = append(m.Drops, n)
}

func (m *MockNotifier) NotifyIncrease(n *notify.PriceIncreaseInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Increases = append(m.Increases, n)
}

func (m *MockNotifier) NotifyReminder(n *notify.ReminderNotification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reminders = append(m.Reminders, n)
}

// MockLicense implements services.LicenseInterface.
type MockLicense struct {
	mu        sync.Mutex
	Unlimited bool
	Loaded    []models.LicenseState
}

func (m *MockLicense) IsUnlimited() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Unlimited
}

func (m *MockLicense) State() models.LicenseState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.LicenseState{IsUnlimited: m.Unlimited}
}

func (m *MockLicense) Load(state models.LicenseState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unlimited = state.IsUnlimited
	m.Loaded = append(m.Loaded, state)
}
