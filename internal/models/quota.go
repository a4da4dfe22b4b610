package models

// FreeProductLimit is the number of products a non-entitled user may track.
const FreeProductLimit = 5

type QuotaDecision struct {
	Allowed      bool
	CurrentCount int
	Limit        int
}

// AuthorizeNewProduct decides whether one more product may be registered.
// It must run before Register for brand-new products only; existing
// products are never revoked when entitlement is lost.
func AuthorizeNewProduct(currentCount int, isUnlimited bool) QuotaDecision {
	d := QuotaDecision{CurrentCount: currentCount, Limit: FreeProductLimit}
	d.Allowed = isUnlimited || currentCount < FreeProductLimit
	return d
}
