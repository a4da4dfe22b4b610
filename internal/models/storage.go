package models

import "time"

// SnapshotVersion is the current persistence format. Version 1 files lack
// the version field, settings and license; they load with defaults.
const SnapshotVersion = 2

type Settings struct {
	EnableNotifications bool `json:"enableNotifications"`
	EnableBadge         bool `json:"enableBadge"`
	CheckFrequency      int  `json:"checkFrequency"`
}

func DefaultSettings() Settings {
	return Settings{
		EnableNotifications: true,
		EnableBadge:         true,
		CheckFrequency:      60,
	}
}

// SettingsPatch is a partial settings update; nil fields keep the current value.
type SettingsPatch struct {
	EnableNotifications *bool `json:"enableNotifications,omitempty"`
	EnableBadge         *bool `json:"enableBadge,omitempty"`
	CheckFrequency      *int  `json:"checkFrequency,omitempty"`
}

// LicenseState is the persisted entitlement fact. The key carries no
// cryptographic meaning here; the daemon treats entitlement as an opaque
// boolean set by the license surface.
type LicenseState struct {
	IsUnlimited bool      `json:"isPro"`
	Key         string    `json:"licenseKey,omitempty"`
	ActivatedAt time.Time `json:"activatedAt,omitempty"`
}

// Snapshot is the single persisted envelope: everything the daemon needs
// to restore its state after a restart.
type Snapshot struct {
	Version  int               `json:"version"`
	Products []*TrackedProduct `json:"products"`
	Alerts   []*AlertRecord    `json:"alerts"`
	Stats    Stats             `json:"stats"`
	Settings Settings          `json:"settings"`
	License  LicenseState      `json:"license"`
}
