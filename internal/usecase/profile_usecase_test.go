package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/pkg/errors"
)

func newProfileFixture() (*ProfileUseCase, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewProfileUseCase(newFakeProfileRepo(), notifier), notifier
}

func TestAddCardStoresLast4Only(t *testing.T) {
	uc, notifier := newProfileFixture()

	card, err := uc.AddCard(context.Background(), "u1", CardInput{
		Network:    "visa",
		Number:     "4111111111111234",
		HolderName: "Somchai P",
		Expiry:     "09/28",
	})
	require.NoError(t, err)

	assert.Equal(t, "1234", card.Last4)
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, "Card saved", notifier.last().Message)
}

func TestRemoveCard(t *testing.T) {
	uc, _ := newProfileFixture()
	ctx := context.Background()

	card, err := uc.AddCard(ctx, "u1", CardInput{Network: "visa", Number: "4111111111111234", HolderName: "A", Expiry: "01/27"})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveCard(ctx, "u1", card.ID))

	cards, err := uc.Cards(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cards)

	err = uc.RemoveCard(ctx, "u1", card.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestFirstPayoutAccountIsDefault(t *testing.T) {
	uc, _ := newProfileFixture()
	ctx := context.Background()

	first, err := uc.AddPayoutAccount(ctx, "u1", PayoutAccountInput{
		Type: "domestic_bank", Provider: "kbank", AccountName: "Somchai", AccountNumber: "1234567890",
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := uc.AddPayoutAccount(ctx, "u1", PayoutAccountInput{
		Type: "paypal", Provider: "paypal", AccountName: "Somchai", AccountNumber: "somchai@example.com",
	})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestDefaultIsNeverRecomputedAfterRemoval(t *testing.T) {
	uc, _ := newProfileFixture()
	ctx := context.Background()

	first, err := uc.AddPayoutAccount(ctx, "u1", PayoutAccountInput{
		Type: "domestic_bank", Provider: "scb", AccountName: "A", AccountNumber: "111",
	})
	require.NoError(t, err)
	_, err = uc.AddPayoutAccount(ctx, "u1", PayoutAccountInput{
		Type: "global_bank", Provider: "chase", AccountName: "A", AccountNumber: "222", SwiftCode: "CHASUS33",
	})
	require.NoError(t, err)

	// Removing the default leaves no default behind.
	require.NoError(t, uc.RemovePayoutAccount(ctx, "u1", first.ID))

	accounts, err := uc.PayoutAccounts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.False(t, accounts[0].IsDefault)

	// A later account still does not become default: the list is non-empty.
	third, err := uc.AddPayoutAccount(ctx, "u1", PayoutAccountInput{
		Type: "paypal", Provider: "paypal", AccountName: "A", AccountNumber: "a@b.c",
	})
	require.NoError(t, err)
	assert.False(t, third.IsDefault)
}

func TestRemovePayoutAccountNotFound(t *testing.T) {
	uc, _ := newProfileFixture()

	err := uc.RemovePayoutAccount(context.Background(), "u1", "ghost")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
