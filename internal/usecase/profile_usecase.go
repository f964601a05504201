package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type ProfileUseCase struct {
	profileRepo repository.PaymentProfileRepository
	notifier    Notifier
}

func NewProfileUseCase(profileRepo repository.PaymentProfileRepository, notifier Notifier) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

type CardInput struct {
	Network    string `json:"network" validate:"required"`
	Number     string `json:"number" validate:"required,min=12,max=19"`
	HolderName string `json:"holder_name" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
}

type PayoutAccountInput struct {
	Type          string `json:"type" validate:"required,oneof=domestic_bank global_bank paypal"`
	Provider      string `json:"provider" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	SwiftCode     string `json:"swift_code"`
	BankAddress   string `json:"bank_address"`
}

func (u *ProfileUseCase) Cards(ctx context.Context, userID string) ([]entity.SavedCard, error) {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Cards, nil
}

// AddCard stores a card reference. There is no update; replacing a card is
// remove then re-add.
func (u *ProfileUseCase) AddCard(ctx context.Context, userID string, input CardInput) (*entity.SavedCard, error) {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	number := input.Number
	card := entity.SavedCard{
		ID:         uuid.New().String(),
		Network:    input.Network,
		Last4:      number[len(number)-4:],
		HolderName: input.HolderName,
		Expiry:     input.Expiry,
		CreatedAt:  time.Now(),
	}

	profile.Cards = append(profile.Cards, card)
	if err := u.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	u.notifier.Push(userID, "Card saved", entity.ToastSuccess)
	return &card, nil
}

func (u *ProfileUseCase) RemoveCard(ctx context.Context, userID, cardID string) error {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	for i, card := range profile.Cards {
		if card.ID == cardID {
			profile.Cards = append(profile.Cards[:i], profile.Cards[i+1:]...)
			if err := u.profileRepo.Save(ctx, profile); err != nil {
				return err
			}
			u.notifier.Push(userID, "Card removed", entity.ToastInfo)
			return nil
		}
	}

	return errors.NotFound("Card", nil)
}

func (u *ProfileUseCase) PayoutAccounts(ctx context.Context, userID string) ([]entity.PayoutAccount, error) {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.PayoutAccounts, nil
}

// AddPayoutAccount marks the account default only when it is the first in
// the list. The flag is never recomputed on removal, so the list can end up
// with no default; at most one entry ever carries it.
func (u *ProfileUseCase) AddPayoutAccount(ctx context.Context, userID string, input PayoutAccountInput) (*entity.PayoutAccount, error) {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	account := entity.PayoutAccount{
		ID:            uuid.New().String(),
		Type:          input.Type,
		Provider:      input.Provider,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
		SwiftCode:     input.SwiftCode,
		BankAddress:   input.BankAddress,
		IsDefault:     len(profile.PayoutAccounts) == 0,
		CreatedAt:     time.Now(),
	}

	profile.PayoutAccounts = append(profile.PayoutAccounts, account)
	if err := u.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	u.notifier.Push(userID, "Payout account added", entity.ToastSuccess)
	return &account, nil
}

func (u *ProfileUseCase) RemovePayoutAccount(ctx context.Context, userID, accountID string) error {
	profile, err := u.profileRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	for i, account := range profile.PayoutAccounts {
		if account.ID == accountID {
			profile.PayoutAccounts = append(profile.PayoutAccounts[:i], profile.PayoutAccounts[i+1:]...)
			if err := u.profileRepo.Save(ctx, profile); err != nil {
				return err
			}
			u.notifier.Push(userID, "Payout account removed", entity.ToastInfo)
			return nil
		}
	}

	return errors.NotFound("Payout account", nil)
}
