package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

// CheckoutUseCase drives the three-step checkout state machine. Marketplace
// sessions walk address then payment; lottery sessions initialize directly
// at payment with a snapshot of the ticket working list.
type CheckoutUseCase struct {
	checkoutRepo   repository.CheckoutRepository
	cartUseCase    *CartUseCase
	lotteryUseCase *LotteryUseCase
	profileUseCase *ProfileUseCase
	orderUseCase   *OrderUseCase

	mu  sync.Mutex
	rng *rand.Rand
}

func NewCheckoutUseCase(
	checkoutRepo repository.CheckoutRepository,
	cartUseCase *CartUseCase,
	lotteryUseCase *LotteryUseCase,
	profileUseCase *ProfileUseCase,
	orderUseCase *OrderUseCase,
	rng *rand.Rand,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		checkoutRepo:   checkoutRepo,
		cartUseCase:    cartUseCase,
		lotteryUseCase: lotteryUseCase,
		profileUseCase: profileUseCase,
		orderUseCase:   orderUseCase,
		rng:            rng,
	}
}

type Totals struct {
	SubtotalTHB float64 `json:"subtotal_thb"`
	ShippingTHB float64 `json:"shipping_thb"`
	TotalTHB    float64 `json:"total_thb"`
}

type CheckoutView struct {
	Session *entity.CheckoutSession `json:"session"`
	Totals  Totals                  `json:"totals"`
}

type PaymentInput struct {
	Method      string          `json:"method" validate:"required,oneof=card truemoney promptpay bank_transfer"`
	SavedCardID string          `json:"saved_card_id"`
	NewCard     *entity.NewCard `json:"new_card"`
}

// Start opens a session. Lottery origin requires prior legal consent and a
// non-empty ticket list; marketplace requires a non-empty cart.
func (u *CheckoutUseCase) Start(ctx context.Context, userID, origin, couponCode string) (*CheckoutView, error) {
	session := &entity.CheckoutSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		Origin:     origin,
		CouponCode: couponCode,
		CreatedAt:  time.Now(),
	}

	switch origin {
	case entity.CheckoutOriginMarketplace:
		cart, err := u.cartUseCase.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(cart.Items) == 0 {
			return nil, errors.BadRequest("Cart is empty", nil)
		}
		session.Step = entity.CheckoutStepAddress

	case entity.CheckoutOriginLottery:
		if err := u.lotteryUseCase.requireConsent(ctx, userID); err != nil {
			return nil, err
		}
		tickets, err := u.lotteryUseCase.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(tickets) == 0 {
			return nil, errors.BadRequest("No tickets selected", nil)
		}
		session.Tickets = tickets
		session.Step = entity.CheckoutStepPayment

	default:
		return nil, errors.BadRequest("Unknown checkout origin", nil)
	}

	if err := u.checkoutRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return u.view(ctx, session)
}

func (u *CheckoutUseCase) Get(ctx context.Context, userID, sessionID string) (*CheckoutView, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, session)
}

// SetAddress records shipping fields and advances to payment. Fields are
// pass-through; there is no validation beyond requiring the step.
func (u *CheckoutUseCase) SetAddress(ctx context.Context, userID, sessionID string, address entity.ShippingAddress) (*CheckoutView, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Origin != entity.CheckoutOriginMarketplace {
		return nil, errors.BadRequest("Lottery checkout has no address step", nil)
	}
	if session.Confirmed || session.Step != entity.CheckoutStepAddress {
		return nil, errors.Conflict("Checkout is past the address step")
	}

	session.Address = &address
	session.Step = entity.CheckoutStepPayment
	if err := u.checkoutRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return u.view(ctx, session)
}

// SetPayment selects a payment method. For card payments the caller picks a
// saved card or enters a new one, optionally asking for it to be persisted
// on confirmation.
func (u *CheckoutUseCase) SetPayment(ctx context.Context, userID, sessionID string, input PaymentInput) (*CheckoutView, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Confirmed {
		return nil, errors.Conflict("Checkout already confirmed")
	}
	if session.Step < entity.CheckoutStepPayment {
		return nil, errors.BadRequest("Address step is not complete", nil)
	}

	if input.Method == entity.PaymentMethodCard {
		if input.SavedCardID != "" {
			cards, err := u.profileUseCase.Cards(ctx, userID)
			if err != nil {
				return nil, err
			}
			found := false
			for _, card := range cards {
				if card.ID == input.SavedCardID {
					found = true
					break
				}
			}
			if !found {
				return nil, errors.NotFound("Saved card", nil)
			}
		} else if input.NewCard == nil {
			return nil, errors.BadRequest("Card payment needs a saved card or a new card", nil)
		}
	}

	session.PaymentMethod = input.Method
	session.SavedCardID = input.SavedCardID
	session.NewCard = input.NewCard
	if err := u.checkoutRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return u.view(ctx, session)
}

// Confirm finalizes the session. Payment is simulated: the only guard is a
// selected payment method. Side effects run in order: persist the new card
// if requested, place the order, clear the source list, advance to the
// confirmation step.
func (u *CheckoutUseCase) Confirm(ctx context.Context, userID, sessionID string) (*CheckoutView, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Confirmed {
		return nil, errors.Conflict("Checkout already confirmed")
	}
	if session.PaymentMethod == "" {
		return nil, errors.BadRequest("Payment method is required", nil)
	}

	if session.NewCard != nil && session.NewCard.Save {
		_, err := u.profileUseCase.AddCard(ctx, userID, CardInput{
			Network:    session.NewCard.Network,
			Number:     session.NewCard.Number,
			HolderName: session.NewCard.HolderName,
			Expiry:     session.NewCard.Expiry,
		})
		if err != nil {
			return nil, err
		}
	}

	order, err := u.buildOrder(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := u.orderUseCase.Place(ctx, order); err != nil {
		return nil, err
	}

	if session.Origin == entity.CheckoutOriginMarketplace {
		if err := u.cartUseCase.Clear(ctx, userID); err != nil {
			return nil, err
		}
	} else {
		if err := u.lotteryUseCase.Clear(ctx, userID); err != nil {
			return nil, err
		}
	}

	session.Confirmed = true
	session.OrderID = order.ID
	session.Step = entity.CheckoutStepConfirmation
	if err := u.checkoutRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return u.view(ctx, session)
}

func (u *CheckoutUseCase) buildOrder(ctx context.Context, session *entity.CheckoutSession) (*entity.Order, error) {
	totals, lines, err := u.totalsAndLines(ctx, session)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:        session.UserID,
		Lines:         lines,
		SubtotalTHB:   totals.SubtotalTHB,
		ShippingTHB:   totals.ShippingTHB,
		TotalTHB:      totals.TotalTHB,
		PaymentMethod: session.PaymentMethod,
		CreatedAt:     time.Now(),
	}
	order.PlacedAt = order.CreatedAt.Format("2 Jan 2006 15:04")

	if session.Origin == entity.CheckoutOriginLottery {
		order.Type = entity.OrderTypeLotto
		order.Status = entity.OrderStatusWaitingForDraw
	} else {
		order.Type = entity.OrderTypeMarketplace
		order.Status = entity.OrderStatusPending
	}
	order.ID = u.orderID(order.Type)

	return order, nil
}

// orderID builds a caller-generated id with a random suffix. Collisions are
// theoretically possible and accepted at this scale. Lotto ids follow the
// LTO-<4digits>-<digits> shape the photo lookup matches on.
func (u *CheckoutUseCase) orderID(orderType string) string {
	u.mu.Lock()
	suffix := u.rng.Intn(10000)
	u.mu.Unlock()

	if orderType == entity.OrderTypeLotto {
		return fmt.Sprintf("LTO-%04d-%d", suffix, time.Now().Unix())
	}
	return fmt.Sprintf("TRV-%d-%04d", time.Now().Unix(), suffix)
}

func (u *CheckoutUseCase) totalsAndLines(ctx context.Context, session *entity.CheckoutSession) (Totals, []entity.OrderLine, error) {
	var totals Totals
	var lines []entity.OrderLine

	if session.Origin == entity.CheckoutOriginLottery {
		for i := range session.Tickets {
			ticket := session.Tickets[i]
			lines = append(lines, entity.OrderLine{Kind: entity.OrderLineTicket, Ticket: &ticket})
		}
		totals.SubtotalTHB = float64(len(session.Tickets)) * entity.TicketPriceTHB
		totals.ShippingTHB = 0
		totals.TotalTHB = totals.SubtotalTHB
		return totals, lines, nil
	}

	cart, err := u.cartUseCase.Get(ctx, session.UserID)
	if err != nil {
		return totals, nil, err
	}

	for i := range cart.Items {
		item := cart.Items[i]
		lines = append(lines, entity.OrderLine{Kind: entity.OrderLineProduct, Product: &item})
	}

	totals.SubtotalTHB = cart.SubtotalTHB()
	if totals.SubtotalTHB > entity.FreeShippingThresholdTHB {
		totals.ShippingTHB = 0
	} else {
		totals.ShippingTHB = entity.FlatShippingTHB
	}
	totals.TotalTHB = totals.SubtotalTHB + totals.ShippingTHB
	return totals, lines, nil
}

func (u *CheckoutUseCase) view(ctx context.Context, session *entity.CheckoutSession) (*CheckoutView, error) {
	// After confirmation the marketplace cart is empty, so report the
	// placed order's totals instead of recomputing.
	if session.Confirmed && session.OrderID != "" {
		order, err := u.orderUseCase.GetByID(ctx, session.UserID, session.OrderID)
		if err != nil {
			return nil, err
		}
		return &CheckoutView{
			Session: session,
			Totals: Totals{
				SubtotalTHB: order.SubtotalTHB,
				ShippingTHB: order.ShippingTHB,
				TotalTHB:    order.TotalTHB,
			},
		}, nil
	}

	totals, _, err := u.totalsAndLines(ctx, session)
	if err != nil {
		return nil, err
	}
	return &CheckoutView{Session: session, Totals: totals}, nil
}

func (u *CheckoutUseCase) ownedSession(ctx context.Context, userID, sessionID string) (*entity.CheckoutSession, error) {
	session, err := u.checkoutRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, errors.Forbidden("Checkout session belongs to another user", nil)
	}
	return session, nil
}
