package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/internal/domain/entity"
)

func TestContentDefaultsUntilLoaded(t *testing.T) {
	uc := NewContentUseCase(&fakeContentRepo{}, &fakeNotifier{})

	content := uc.Get()
	assert.NotEmpty(t, content.Hero.Title)
	assert.Len(t, content.PromoBanners, 2)
	assert.Len(t, content.CategoryBanners, 6)
}

func TestLoadFromStoreReplacesDefaults(t *testing.T) {
	stored := &entity.SiteContent{Hero: entity.HeroSection{Title: "Stored hero"}}
	uc := NewContentUseCase(&fakeContentRepo{content: stored}, &fakeNotifier{})

	uc.LoadFromStore(context.Background())
	assert.Equal(t, "Stored hero", uc.Get().Hero.Title)
}

func TestLoadFromStoreKeepsDefaultsWhenEmpty(t *testing.T) {
	uc := NewContentUseCase(&fakeContentRepo{}, &fakeNotifier{})
	before := uc.Get()

	uc.LoadFromStore(context.Background())
	assert.Equal(t, before.Hero.Title, uc.Get().Hero.Title)
}

func TestUpdatePersistsAndToasts(t *testing.T) {
	repo := &fakeContentRepo{}
	notifier := &fakeNotifier{}
	uc := NewContentUseCase(repo, notifier)

	updated := uc.Update(context.Background(), "admin-1", entity.SiteContent{
		Hero: entity.HeroSection{Title: "New hero"},
	})

	assert.Equal(t, "New hero", updated.Hero.Title)
	require.NotNil(t, repo.content)
	assert.Equal(t, "New hero", repo.content.Hero.Title)
	assert.Equal(t, entity.ToastSuccess, notifier.last().Severity)
}

func TestUpdateKeepsLocalStateOnPersistFailure(t *testing.T) {
	repo := &fakeContentRepo{saveErr: errors.New("firestore unavailable")}
	notifier := &fakeNotifier{}
	uc := NewContentUseCase(repo, notifier)

	updated := uc.Update(context.Background(), "admin-1", entity.SiteContent{
		Hero: entity.HeroSection{Title: "Optimistic hero"},
	})

	// No rollback: local state keeps the change.
	assert.Equal(t, "Optimistic hero", updated.Hero.Title)
	assert.Equal(t, "Optimistic hero", uc.Get().Hero.Title)

	toast := notifier.last()
	require.NotNil(t, toast)
	assert.Equal(t, entity.ToastError, toast.Severity)
	assert.Contains(t, toast.Message, "firestore unavailable")
}
