package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/pricing"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// QuoteStore defines the database operations needed for pricing a package
type QuoteStore interface {
	GetCorePlan(ctx context.Context, id string) (*db.CorePlan, error)
	GetAddOns(ctx context.Context) ([]db.AddOn, error)
	GetOneTimeFees(ctx context.Context) ([]db.OneTimeFee, error)
	GetDiscounts(ctx context.Context) ([]db.Discount, error)
}

// QuoteRequest selects what goes into an enrollment package: a core plan,
// add-on quantities keyed by add-on ID (days per week for per-day add-ons,
// minutes for time-based ones), and discounts by ID.
type QuoteRequest struct {
	PlanID          string         `json:"plan_id" binding:"required"`
	AddOnQuantities map[string]int `json:"add_ons"`
	DiscountIDs     []string       `json:"discount_ids"`
	IncludeFees     bool           `json:"include_fees"`
}

// QuotePackage prices an enrollment package from configured plans, add-ons,
// discounts and fees. Inactive records are skipped; unknown add-on or
// discount IDs are rejected.
func QuotePackage(ctx context.Context, store QuoteStore, logger *zap.Logger, req QuoteRequest) (*pricing.Quote, error) {
	planRecord, err := store.GetCorePlan(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch core plan: %w", err)
	}
	if !planRecord.Active {
		return nil, fmt.Errorf("core plan %s is not active", req.PlanID)
	}

	plan := pricing.Plan{
		Name:          planRecord.Name,
		BasePrice:     planRecord.BasePrice,
		BillingPeriod: pricing.BillingPeriod(planRecord.BillingPeriod),
	}

	addOns, err := selectAddOns(ctx, store, req.AddOnQuantities)
	if err != nil {
		return nil, err
	}

	discounts, err := selectDiscounts(ctx, store, req.DiscountIDs)
	if err != nil {
		return nil, err
	}

	var fees []pricing.Fee
	if req.IncludeFees {
		feeRecords, err := store.GetOneTimeFees(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch one-time fees: %w", err)
		}
		for _, f := range feeRecords {
			if !f.Active {
				continue
			}
			fees = append(fees, pricing.Fee{Name: f.Name, Amount: f.Amount, Refundable: f.Refundable})
		}
	}

	quote, err := pricing.QuotePackage(plan, addOns, discounts, fees)
	if err != nil {
		return nil, fmt.Errorf("failed to price package: %w", err)
	}

	logger.Info("Package priced",
		zap.String("plan", planRecord.Name),
		zap.Int("add_ons", len(addOns)),
		zap.Float64("monthly_tuition", quote.MonthlyTuition))

	return quote, nil
}

func selectAddOns(ctx context.Context, store QuoteStore, quantities map[string]int) ([]pricing.AddOnCharge, error) {
	if len(quantities) == 0 {
		return nil, nil
	}

	records, err := store.GetAddOns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch add-ons: %w", err)
	}

	byID := make(map[string]db.AddOn, len(records))
	for _, a := range records {
		byID[a.ID] = a
	}

	var charges []pricing.AddOnCharge
	for id, qty := range quantities {
		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown add-on %s", id)
		}
		if !a.Active {
			return nil, fmt.Errorf("add-on %s is not active", id)
		}
		if qty < 0 {
			return nil, fmt.Errorf("add-on %s: quantity must not be negative, got %d", id, qty)
		}
		charges = append(charges, pricing.AddOnCharge{
			Name:        a.Name,
			Pricing:     pricing.AddOnPricing(a.Pricing),
			Price:       a.Price,
			MinutesUnit: a.MinutesUnit,
			Quantity:    qty,
		})
	}
	return charges, nil
}

func selectDiscounts(ctx context.Context, store QuoteStore, ids []string) ([]pricing.Discount, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := store.GetDiscounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discounts: %w", err)
	}

	byID := make(map[string]db.Discount, len(records))
	for _, d := range records {
		byID[d.ID] = d
	}

	var discounts []pricing.Discount
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown discount %s", id)
		}
		if !d.Active {
			return nil, fmt.Errorf("discount %s is not active", id)
		}
		discounts = append(discounts, pricing.Discount{
			Name:   d.Name,
			Type:   pricing.DiscountType(d.Type),
			Amount: d.Amount,
			Scope:  pricing.DiscountScope(d.AppliesTo),
		})
	}
	return discounts, nil
}
