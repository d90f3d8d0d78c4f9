package checkout

import (
	"context"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/coupon"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/pricing"

	"go.uber.org/zap"
)

type Service interface {
	Summary(ctx context.Context, sessionID string) (Summary, error)
	Complete(ctx context.Context, sessionID string) (Result, error)
}

type service struct {
	carts     cart.Service
	coupons   coupon.Service
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(carts cart.Service, coupons coupon.Service, publisher events.Publisher, logger *zap.Logger) Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.L().Named("checkout")
	}
	return &service{
		carts:     carts,
		coupons:   coupons,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	items, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	applied, err := s.coupons.Current(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	totalItems := 0
	for _, it := range items {
		totalItems += it.Quantity
	}
	return Summary{
		Items:      items,
		TotalItems: totalItems,
		Coupon:     applied,
		Totals:     pricing.ComputeTotals(items, applied),
	}, nil
}

// Complete quotes the cart, then clears the cart and the coupon before
// reporting success. Only a cart with no lines at all is rejected.
// Persistence problems are logged by the stores and do not fail the checkout.
func (s *service) Complete(ctx context.Context, sessionID string) (Result, error) {
	lines, err := s.carts.Count(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if lines == 0 {
		return Result{}, ErrCartEmpty
	}
	// Lines whose catalog entry is gone are not quoted but are still cleared.
	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return Result{}, err
	}
	if err := s.coupons.Clear(ctx, sessionID); err != nil {
		return Result{}, err
	}

	res := Result{
		Success:     true,
		CompletedAt: s.now().UTC(),
		Totals:      summary.Totals,
		Coupon:      summary.Coupon,
	}
	logger := s.logger.With(zap.String("session_id", sessionID))
	logger.Info("checkout completed",
		zap.Int("items", summary.TotalItems),
		zap.String("total", res.Totals.Total.StringFixed(2)),
	)
	s.publishCompleted(ctx, sessionID, summary, res, logger)
	return res, nil
}

func (s *service) publishCompleted(ctx context.Context, sessionID string, summary Summary, res Result, logger *zap.Logger) {
	payload := events.CheckoutCompletedPayload{
		SessionID:   sessionID,
		CompletedAt: res.CompletedAt,
		ItemCount:   summary.TotalItems,
		Subtotal:    res.Totals.Subtotal.StringFixed(2),
		Discount:    res.Totals.Discount.StringFixed(2),
		Total:       res.Totals.Total.StringFixed(2),
	}
	if summary.Coupon != nil {
		payload.CouponCode = summary.Coupon.Code
	}

	e, err := events.New(events.TypeCheckoutCompleted, sessionID, payload)
	if err != nil {
		logger.Warn("failed to build checkout event", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Warn("failed to publish checkout event", zap.Error(err))
	}
}
