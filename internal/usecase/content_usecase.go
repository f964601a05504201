package usecase

import (
	"context"
	"sync"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/logger"
)

// ContentUseCase serves site content. A hardcoded default is shown until the
// stored document loads; a failed load silently keeps the default. Admin
// updates are optimistic: local state changes first and sticks even when the
// persist fails, with an error toast carrying the underlying message.
type ContentUseCase struct {
	contentRepo repository.SiteContentRepository
	notifier    Notifier

	mu      sync.RWMutex
	current entity.SiteContent
}

func NewContentUseCase(contentRepo repository.SiteContentRepository, notifier Notifier) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		notifier:    notifier,
		current:     defaultContent(),
	}
}

// LoadFromStore seeds the in-memory copy from the content store once at
// startup. Failure is not an error: the defaults keep rendering.
func (u *ContentUseCase) LoadFromStore(ctx context.Context) {
	stored, err := u.contentRepo.Get(ctx)
	if err != nil {
		logger.Warn("Site content fetch failed, keeping defaults: %v", err)
		return
	}
	if stored == nil {
		return
	}

	u.mu.Lock()
	u.current = *stored
	u.mu.Unlock()
}

func (u *ContentUseCase) Get() entity.SiteContent {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

// Update applies the new content locally, then persists. On persist failure
// the local state stays updated (no rollback) and the admin sees an error
// toast with the failure appended.
func (u *ContentUseCase) Update(ctx context.Context, adminUserID string, content entity.SiteContent) entity.SiteContent {
	u.mu.Lock()
	u.current = content
	u.mu.Unlock()

	if err := u.contentRepo.Save(ctx, &content); err != nil {
		logger.Error("Site content save failed: %v", err)
		u.notifier.Push(adminUserID, "Failed to save site content: "+err.Error(), entity.ToastError)
		return u.Get()
	}

	u.notifier.Push(adminUserID, "Site content updated", entity.ToastSuccess)
	return u.Get()
}

func defaultContent() entity.SiteContent {
	return entity.SiteContent{
		Hero: entity.HeroSection{
			Title:    "Genuine US Imports, Delivered to Thailand",
			Subtitle: "Shop authentic brands and try your luck on US lottery tickets",
			ImageURL: "/static/hero-default.jpg",
		},
		PromoBanners: []entity.Banner{
			{Title: "Flash Sale", ImageURL: "/static/banner-flash.jpg", LinkURL: "/flash-sale"},
			{Title: "Powerball Jackpot", ImageURL: "/static/banner-lotto.jpg", LinkURL: "/lottery"},
		},
		CategoryBanners: []entity.CategoryBanner{
			{Category: "electronics", Label: "Electronics", ImageURL: "/static/cat-electronics.jpg"},
			{Category: "fashion", Label: "Fashion", ImageURL: "/static/cat-fashion.jpg"},
			{Category: "beauty", Label: "Beauty", ImageURL: "/static/cat-beauty.jpg"},
			{Category: "supplements", Label: "Supplements", ImageURL: "/static/cat-supplements.jpg"},
			{Category: "toys", Label: "Toys & Games", ImageURL: "/static/cat-toys.jpg"},
			{Category: "home", Label: "Home & Kitchen", ImageURL: "/static/cat-home.jpg"},
		},
	}
}
