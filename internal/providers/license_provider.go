package providers

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"

	"ptd/internal/models"
)

var ErrInvalidLicenseKey = errors.New("invalid license key format")

// keyPattern is a shape check only. Entitlement is an opaque boolean fact
// here; real key verification belongs to the external license service.
var keyPattern = regexp.MustCompile(`^[A-Z0-9]{4,}-[A-Z0-9]{4,}-[A-Z0-9]{4,}-[A-Z0-9]{4,}$`)

type LicenseProviderInterface interface {
	IsUnlimited() bool
	Activate(key string) (models.LicenseState, error)
	Deactivate()
	State() models.LicenseState
	Load(state models.LicenseState)
}

// LicenseProvider caches the unlimited flag in an atomic for the hot
// registration path; the full state is mutex-guarded.
type LicenseProvider struct {
	unlimited atomic.Bool

	mu    sync.RWMutex
	state models.LicenseState
}

func NewLicenseProvider(logger Logger) *LicenseProvider {
	logger.Infof(TypeApp, "License provider initialized (free tier)")
	return &LicenseProvider{}
}

func (lp *LicenseProvider) IsUnlimited() bool {
	return lp.unlimited.Load()
}

func (lp *LicenseProvider) Activate(key string) (models.LicenseState, error) {
	cleanKey := strings.ToUpper(strings.TrimSpace(key))
	if !keyPattern.MatchString(cleanKey) {
		return models.LicenseState{}, ErrInvalidLicenseKey
	}

	lp.mu.Lock()
	defer lp.mu.Unlock()
	lp.state = models.LicenseState{
		IsUnlimited: true,
		Key:         cleanKey,
		ActivatedAt: time.Now(),
	}
	lp.unlimited.Store(true)
	return lp.state, nil
}

func (lp *LicenseProvider) Deactivate() {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	lp.state = models.LicenseState{}
	lp.unlimited.Store(false)
}

func (lp *LicenseProvider) State() models.LicenseState {
	lp.mu.RLock()
	defer lp.mu.RUnlock()
	return lp.state
}

// Load restores entitlement from a snapshot.
func (lp *LicenseProvider) Load(state models.LicenseState) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	lp.state = state
	lp.unlimited.Store(state.IsUnlimited)
}
