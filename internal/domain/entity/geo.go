package entity

import "time"

// GeoLocation is the best-effort result of an IP geolocation lookup.
type GeoLocation struct {
	IP          string  `json:"ip" firestore:"ip"`
	Country     string  `json:"country" firestore:"country"`
	CountryCode string  `json:"country_code" firestore:"countryCode"`
	Region      string  `json:"region" firestore:"region"`
	RegionName  string  `json:"region_name" firestore:"regionName"`
	City        string  `json:"city" firestore:"city"`
	PostalCode  string  `json:"postal_code" firestore:"postalCode"`
	Lat         float64 `json:"lat" firestore:"lat"`
	Lon         float64 `json:"lon" firestore:"lon"`
	Timezone    string  `json:"timezone" firestore:"timezone"`
	ISP         string  `json:"isp" firestore:"isp"`
	Org         string  `json:"org" firestore:"org"`

	LookedUpAt time.Time `json:"looked_up_at" firestore:"lookedUpAt"`
}

// GeoState is the per-user slice: last result plus a bounded history of the
// most recent lookups.
type GeoState struct {
	UserID        string        `json:"user_id" firestore:"userId"`
	Last          *GeoLocation  `json:"last,omitempty" firestore:"last,omitempty"`
	History       []GeoLocation `json:"history" firestore:"history"` // capped at 10, newest first
	SchemaVersion int           `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time     `json:"updated_at" firestore:"updatedAt"`
}

const GeoHistoryLimit = 10
