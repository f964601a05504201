package usecase

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"truvamate/internal/adapter/cache"
	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cache       cache.CartCache
	notifier    Notifier
	sfg         singleflight.Group
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	cartCache cache.CartCache,
	notifier Notifier,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cache:       cartCache,
		notifier:    notifier,
	}
}

// Get reads through the cache; concurrent misses for the same user collapse
// into one repository read.
func (u *CartUseCase) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	v, err, _ := u.sfg.Do(userID, func() (interface{}, error) {
		if u.cache != nil {
			cart, err := u.cache.Get(ctx, userID)
			if err == nil {
				return cart, nil
			}
			if err != cache.ErrCacheMiss {
				log.Printf("cart cache get error: %v", err)
			}
		}

		cart, err := u.cartRepo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}

		if u.cache != nil {
			go func() {
				if err := u.cache.Set(context.Background(), userID, cart); err != nil {
					log.Printf("cart cache set error: %v", err)
				}
			}()
		}

		return cart, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*entity.Cart), nil
}

// AddToCart merges by product id: an existing line's quantity grows by
// quantity and its option is preserved, whatever option was passed.
// There is no stock validation and no error path beyond lookup failures.
func (u *CartUseCase) AddToCart(ctx context.Context, userID, productID string, quantity int, option string) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	if option == "" {
		option = entity.DefaultOption
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if line := cart.Line(productID); line != nil {
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID:        product.ID,
			Title:            product.Title,
			PriceUSD:         product.PriceUSD,
			PriceTHB:         product.PriceTHB,
			OriginalPriceTHB: product.OriginalPriceTHB,
			ImageURL:         product.ImageURL,
			Category:         product.Category,
			Quantity:         quantity,
			SelectedOption:   option,
		})
	}

	if err := u.saveAndInvalidate(ctx, cart); err != nil {
		return nil, err
	}

	u.notifier.Push(userID, "Added to cart", entity.ToastSuccess)
	return cart, nil
}

// RemoveFromCart drops the matching line if present. The info toast fires
// whether or not anything was removed; that matches the shipped storefront.
func (u *CartUseCase) RemoveFromCart(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	cart, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := u.saveAndInvalidate(ctx, cart); err != nil {
				return nil, err
			}
			break
		}
	}

	u.notifier.Push(userID, "Item removed from cart", entity.ToastInfo)
	return cart, nil
}

// UpdateQuantity applies a delta with a floor of 1; it never removes a line.
// Unknown product ids are a silent no-op.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, delta int) (*entity.Cart, error) {
	cart, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := cart.Line(productID)
	if line == nil {
		return cart, nil
	}

	line.Quantity += delta
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	if err := u.saveAndInvalidate(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	cart := &entity.Cart{UserID: userID, Items: []entity.CartItem{}}
	return u.saveAndInvalidate(ctx, cart)
}

func (u *CartUseCase) saveAndInvalidate(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	if err := u.cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, cart.UserID); err != nil {
			log.Printf("cart cache invalidate error: %v", err)
		}
	}
	return nil
}
