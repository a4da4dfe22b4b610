package notify

import "strconv"

const (
	badgeColorDrop    = "#10B981"
	badgeColorTracked = "#ff6b35"
)

// BadgeState is what a client UI should render as its status indicator.
type BadgeState struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// BadgeFor computes the badge: recent drops win over the plain tracked
// count, and a disabled badge is always empty.
func BadgeFor(recentDrops, productCount int, enabled bool) BadgeState {
	if !enabled {
		return BadgeState{}
	}
	if recentDrops > 0 {
		return BadgeState{Text: strconv.Itoa(recentDrops), Color: badgeColorDrop}
	}
	if productCount > 0 {
		return BadgeState{Text: strconv.Itoa(productCount), Color: badgeColorTracked}
	}
	return BadgeState{}
}
