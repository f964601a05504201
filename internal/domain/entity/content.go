package entity

import "time"

type HeroSection struct {
	Title    string `json:"title" firestore:"title"`
	Subtitle string `json:"subtitle" firestore:"subtitle"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
}

type Banner struct {
	Title    string `json:"title" firestore:"title"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
	LinkURL  string `json:"link_url" firestore:"linkUrl"`
}

type CategoryBanner struct {
	Category string `json:"category" firestore:"category"`
	Label    string `json:"label" firestore:"label"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
}

// SiteContent is externally managed configuration read at render time and
// writable only through the admin update call.
type SiteContent struct {
	Hero            HeroSection      `json:"hero" firestore:"hero"`
	PromoBanners    []Banner         `json:"promo_banners" firestore:"promoBanners"`
	CategoryBanners []CategoryBanner `json:"category_banners" firestore:"categoryBanners"`
	SchemaVersion   int              `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt       time.Time        `json:"updated_at" firestore:"updatedAt"`
}
