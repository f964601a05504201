package usecase

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

const maxQuickPickBatch = 10

// LotteryUseCase builds rule-valid tickets manually or by quick pick, behind
// the one-time legal consent gate. The random source is injected so quick
// picks are reproducible under test.
type LotteryUseCase struct {
	ticketRepo repository.TicketRepository
	userRepo   repository.UserRepository
	notifier   Notifier

	mu  sync.Mutex
	rng *rand.Rand
}

func NewLotteryUseCase(
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	rng *rand.Rand,
) *LotteryUseCase {
	return &LotteryUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		rng:        rng,
	}
}

// Games returns the rule table in a stable order.
func (u *LotteryUseCase) Games() []entity.GameRule {
	return []entity.GameRule{
		entity.GameRules[entity.GamePowerball],
		entity.GameRules[entity.GameMegaMillions],
	}
}

// AcceptConsent persists the one-time legal consent flag. It never expires.
func (u *LotteryUseCase) AcceptConsent(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.LotteryConsent {
		return nil
	}

	now := time.Now()
	user.LotteryConsent = true
	user.LotteryConsentAt = &now
	if err := u.userRepo.Save(ctx, user); err != nil {
		return err
	}

	u.notifier.Push(userID, "Consent recorded", entity.ToastSuccess)
	return nil
}

func (u *LotteryUseCase) HasConsent(ctx context.Context, userID string) (bool, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.LotteryConsent, nil
}

func (u *LotteryUseCase) requireConsent(ctx context.Context, userID string) error {
	ok, err := u.HasConsent(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ConsentRequired("Legal consent is required before buying lottery tickets")
	}
	return nil
}

// AddTicket confirms a manual selection. The selection is rejected unless
// it has exactly 5 distinct in-range main numbers and one in-range special.
func (u *LotteryUseCase) AddTicket(ctx context.Context, userID, game string, mains []int, special int) (*entity.Ticket, error) {
	if err := u.requireConsent(ctx, userID); err != nil {
		return nil, err
	}

	rule, ok := entity.GameRules[game]
	if !ok {
		return nil, errors.BadRequest("Unknown game variant", nil)
	}

	if err := validateSelection(rule, mains, special); err != nil {
		return nil, err
	}

	sorted := append([]int(nil), mains...)
	sort.Ints(sorted)

	ticket := entity.Ticket{
		ID:          uuid.New().String(),
		Game:        game,
		MainNumbers: sorted,
		Special:     special,
		CreatedAt:   time.Now(),
	}

	if err := u.appendTickets(ctx, userID, ticket); err != nil {
		return nil, err
	}

	u.notifier.Push(userID, "Ticket added", entity.ToastSuccess)
	return &ticket, nil
}

// QuickPick generates count tickets by rejection-sampling distinct main
// numbers, sorted ascending, plus one independent special number.
func (u *LotteryUseCase) QuickPick(ctx context.Context, userID, game string, count int) ([]entity.Ticket, error) {
	if err := u.requireConsent(ctx, userID); err != nil {
		return nil, err
	}

	rule, ok := entity.GameRules[game]
	if !ok {
		return nil, errors.BadRequest("Unknown game variant", nil)
	}

	if count < 1 {
		count = 1
	}
	if count > maxQuickPickBatch {
		count = maxQuickPickBatch
	}

	tickets := make([]entity.Ticket, 0, count)
	for i := 0; i < count; i++ {
		mains, special := u.draw(rule)
		tickets = append(tickets, entity.Ticket{
			ID:          uuid.New().String(),
			Game:        game,
			MainNumbers: mains,
			Special:     special,
			CreatedAt:   time.Now(),
		})
	}

	if err := u.appendTickets(ctx, userID, tickets...); err != nil {
		return nil, err
	}

	u.notifier.Push(userID, "Quick pick added", entity.ToastSuccess)
	return tickets, nil
}

func (u *LotteryUseCase) draw(rule entity.GameRule) ([]int, int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	picked := make(map[int]bool, rule.MainCount)
	for len(picked) < rule.MainCount {
		picked[u.rng.Intn(rule.MainMax)+1] = true
	}

	mains := make([]int, 0, rule.MainCount)
	for n := range picked {
		mains = append(mains, n)
	}
	sort.Ints(mains)

	return mains, u.rng.Intn(rule.SpecialMax) + 1
}

func (u *LotteryUseCase) List(ctx context.Context, userID string) ([]entity.Ticket, error) {
	list, err := u.ticketRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return list.Tickets, nil
}

// Remove drops one ticket. Tickets are immutable; edit is remove and re-add.
func (u *LotteryUseCase) Remove(ctx context.Context, userID, ticketID string) error {
	list, err := u.ticketRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	for i, ticket := range list.Tickets {
		if ticket.ID == ticketID {
			list.Tickets = append(list.Tickets[:i], list.Tickets[i+1:]...)
			if err := u.ticketRepo.Save(ctx, list); err != nil {
				return err
			}
			u.notifier.Push(userID, "Ticket removed", entity.ToastInfo)
			return nil
		}
	}

	return errors.NotFound("Ticket", nil)
}

// Clear empties the working list without a toast; checkout uses it after a
// lottery order is placed.
func (u *LotteryUseCase) Clear(ctx context.Context, userID string) error {
	return u.ticketRepo.Save(ctx, &entity.TicketList{UserID: userID, Tickets: []entity.Ticket{}})
}

func (u *LotteryUseCase) appendTickets(ctx context.Context, userID string, tickets ...entity.Ticket) error {
	list, err := u.ticketRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	list.Tickets = append(list.Tickets, tickets...)
	return u.ticketRepo.Save(ctx, list)
}

func validateSelection(rule entity.GameRule, mains []int, special int) error {
	if len(mains) != rule.MainCount {
		return errors.BadRequest("Ticket must have exactly 5 main numbers", nil)
	}

	seen := make(map[int]bool, len(mains))
	for _, n := range mains {
		if n < 1 || n > rule.MainMax {
			return errors.BadRequest("Main number out of range", nil)
		}
		if seen[n] {
			return errors.BadRequest("Main numbers must be distinct", nil)
		}
		seen[n] = true
	}

	if special < 1 || special > rule.SpecialMax {
		return errors.BadRequest("Special number out of range", nil)
	}
	return nil
}
