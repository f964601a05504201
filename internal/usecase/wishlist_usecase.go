package usecase

import (
	"context"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	notifier     Notifier
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	notifier Notifier,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

// Toggle flips membership: present removes, absent adds. Untouched entries
// keep their order.
func (u *WishlistUseCase) Toggle(ctx context.Context, userID, productID string) (*entity.Wishlist, error) {
	wishlist, err := u.wishlistRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wishlist.Contains(productID) {
		for i, p := range wishlist.Products {
			if p.ID == productID {
				wishlist.Products = append(wishlist.Products[:i], wishlist.Products[i+1:]...)
				break
			}
		}
		if err := u.wishlistRepo.Save(ctx, wishlist); err != nil {
			return nil, err
		}
		u.notifier.Push(userID, "Removed from wishlist", entity.ToastInfo)
		return wishlist, nil
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	wishlist.Products = append(wishlist.Products, *product)
	if err := u.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, err
	}
	u.notifier.Push(userID, "Added to wishlist", entity.ToastSuccess)
	return wishlist, nil
}

func (u *WishlistUseCase) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	return u.wishlistRepo.Get(ctx, userID)
}

func (u *WishlistUseCase) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	wishlist, err := u.wishlistRepo.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}
