package impl

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// Fallback shipping policy when the config section is blank.
var (
	defaultFreeThreshold = decimal.NewFromInt(20)
	defaultFlatRate      = decimal.NewFromInt(5)
)

type cartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
	policy      entity.ShippingPolicy
}

// NewCartService creates a new cart service instance. The shipping policy is
// parsed from config once so every derived total uses the same pure function.
func NewCartService(cartStore repository.CartStore, productRepo repository.ProductRepository, cfg *config.Config) (usecase.CartUsecase, error) {
	policy, err := shippingPolicyFromConfig(cfg.Shipping)
	if err != nil {
		return nil, err
	}

	return &cartService{
		cartStore:   cartStore,
		productRepo: productRepo,
		policy:      policy,
	}, nil
}

func shippingPolicyFromConfig(cfg config.ShippingConfig) (entity.ShippingPolicy, error) {
	policy := entity.ShippingPolicy{
		FreeThreshold: defaultFreeThreshold,
		FlatRate:      defaultFlatRate,
	}

	if cfg.FreeThreshold != "" {
		threshold, err := decimal.NewFromString(cfg.FreeThreshold)
		if err != nil {
			return entity.ShippingPolicy{}, errors.Wrapf(err, "invalid shipping.freeThreshold %q", cfg.FreeThreshold)
		}
		policy.FreeThreshold = threshold
	}
	if cfg.FlatRate != "" {
		rate, err := decimal.NewFromString(cfg.FlatRate)
		if err != nil {
			return entity.ShippingPolicy{}, errors.Wrapf(err, "invalid shipping.flatRate %q", cfg.FlatRate)
		}
		policy.FlatRate = rate
	}

	return policy, nil
}

// View returns the session's cart, which may be empty.
func (s *cartService) View(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	cart, err := s.cartStore.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return s.view(cart), nil
}

// AddItem adds a product to the cart, summing quantities when the line
// already exists.
func (s *cartService) AddItem(ctx context.Context, sessionID string, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, storageError(err)
	}

	cart, err := s.cartStore.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(product.Snapshot(), input.Quantity)

	return s.view(cart), nil
}

// UpdateQuantity replaces a line's quantity, clamping values below 1 to 1.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, input *usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	cart, err := s.cartStore.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if !cart.UpdateQuantity(productID, input.Quantity) {
		return nil, domainerrors.ErrCartLineNotFound
	}

	return s.view(cart), nil
}

// RemoveItem deletes a line from the cart. Removing an absent line is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*usecase.CartView, error) {
	cart, err := s.cartStore.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.RemoveItem(productID)

	return s.view(cart), nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.cartStore.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// Policy returns the shipping policy applied to every cart.
func (s *cartService) Policy() entity.ShippingPolicy {
	return s.policy
}

func (s *cartService) view(cart *entity.Cart) *usecase.CartView {
	lines := cart.Lines()
	views := make([]usecase.CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, usecase.CartLineView{
			ProductID: line.Product.ProductID,
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			UnitPrice: line.Product.Price.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	return &usecase.CartView{
		Lines:       views,
		ItemCount:   cart.ItemCount(),
		Subtotal:    cart.Subtotal().StringFixed(2),
		ShippingFee: cart.ShippingFee(s.policy).StringFixed(2),
		GrandTotal:  cart.GrandTotal(s.policy).StringFixed(2),
	}
}
