package usecase

import (
	"context"
	"log"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/internal/infrastructure/events"
	"truvamate/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	notifier  Notifier
	publisher events.Publisher
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	notifier Notifier,
	publisher events.Publisher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Place prepends the order to the user's history, so the list stays
// most-recent-first. Orders are never mutated or deleted afterwards.
func (u *OrderUseCase) Place(ctx context.Context, order *entity.Order) error {
	history, err := u.orderRepo.Get(ctx, order.UserID)
	if err != nil {
		return err
	}

	history.Orders = append([]entity.Order{*order}, history.Orders...)
	if err := u.orderRepo.Save(ctx, history); err != nil {
		return err
	}

	log.Printf("Order placed: %s type=%s total=%.2f", order.ID, order.Type, order.TotalTHB)
	u.notifier.Push(order.UserID, "Order placed successfully", entity.ToastSuccess)
	u.publisher.OrderPlaced(order)
	return nil
}

func (u *OrderUseCase) List(ctx context.Context, userID string) ([]entity.Order, error) {
	history, err := u.orderRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return history.Orders, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	history, err := u.orderRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range history.Orders {
		if history.Orders[i].ID == orderID {
			return &history.Orders[i], nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}
