package outbound

import "context"

// GeocodedAddress is a best-effort address resolved from a map link.
type GeocodedAddress struct {
	Area     string `json:"area"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
}

// ReverseGeocodePort defines the interface for reverse geocoding a shared
// map link. Implementations are best-effort: a failure must leave the
// caller's address fields untouched.
type ReverseGeocodePort interface {
	Resolve(ctx context.Context, mapLink string) (*GeocodedAddress, error)
}
