package postgres

import (
	"context"
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/db"
)

// GetCorePlans retrieves all core plan records ordered by name
func (d *DB) GetCorePlans(ctx context.Context) ([]db.CorePlan, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, base_price, billing_period, schedule, pattern, band,
			is_fixed_plan, start_time, end_time, active, created_at
		FROM core_plans
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query core plans: %w", err)
	}
	defer rows.Close()

	var plans []db.CorePlan
	for rows.Next() {
		p, err := scanCorePlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating core plans: %w", err)
	}

	return plans, nil
}

// GetCorePlan retrieves a single core plan by ID
func (d *DB) GetCorePlan(ctx context.Context, id string) (*db.CorePlan, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, base_price, billing_period, schedule, pattern, band,
			is_fixed_plan, start_time, end_time, active, created_at
		FROM core_plans
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query core plan: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("core plan %s not found", id)
	}
	return scanCorePlan(rows)
}

// InsertCorePlan inserts a new core plan record
func (d *DB) InsertCorePlan(ctx context.Context, plan *db.CorePlan) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO core_plans (id, name, description, base_price, billing_period, schedule,
			pattern, band, is_fixed_plan, start_time, end_time, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, plan.ID, plan.Name, plan.Description, plan.BasePrice, plan.BillingPeriod, plan.Schedule,
		plan.Pattern, plan.Band, plan.IsFixedPlan, plan.StartTime, plan.EndTime, plan.Active)
	if err != nil {
		return fmt.Errorf("failed to insert core plan: %w", err)
	}
	return nil
}

// UpdateCorePlan updates an existing core plan record
func (d *DB) UpdateCorePlan(ctx context.Context, plan *db.CorePlan) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE core_plans
		SET name = $2, description = $3, base_price = $4, billing_period = $5, schedule = $6,
			pattern = $7, band = $8, is_fixed_plan = $9, start_time = $10, end_time = $11, active = $12
		WHERE id = $1
	`, plan.ID, plan.Name, plan.Description, plan.BasePrice, plan.BillingPeriod, plan.Schedule,
		plan.Pattern, plan.Band, plan.IsFixedPlan, plan.StartTime, plan.EndTime, plan.Active)
	if err != nil {
		return fmt.Errorf("failed to update core plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("core plan %s not found", plan.ID)
	}
	return nil
}

// DeleteCorePlan removes a core plan record
func (d *DB) DeleteCorePlan(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM core_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete core plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("core plan %s not found", id)
	}
	return nil
}

// GetAddOns retrieves all add-on records ordered by name
func (d *DB) GetAddOns(ctx context.Context) ([]db.AddOn, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, pricing, price, minutes_unit, active, created_at
		FROM add_ons
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query add-ons: %w", err)
	}
	defer rows.Close()

	var addOns []db.AddOn
	for rows.Next() {
		var a db.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Pricing, &a.Price, &a.MinutesUnit,
			&a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan add-on: %w", err)
		}
		addOns = append(addOns, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating add-ons: %w", err)
	}

	return addOns, nil
}

// GetAddOn retrieves a single add-on by ID
func (d *DB) GetAddOn(ctx context.Context, id string) (*db.AddOn, error) {
	var a db.AddOn
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, description, pricing, price, minutes_unit, active, created_at
		FROM add_ons
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Description, &a.Pricing, &a.Price, &a.MinutesUnit, &a.Active, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to query add-on %s: %w", id, err)
	}
	return &a, nil
}

// InsertAddOn inserts a new add-on record
func (d *DB) InsertAddOn(ctx context.Context, addOn *db.AddOn) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO add_ons (id, name, description, pricing, price, minutes_unit, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, addOn.ID, addOn.Name, addOn.Description, addOn.Pricing, addOn.Price, addOn.MinutesUnit, addOn.Active)
	if err != nil {
		return fmt.Errorf("failed to insert add-on: %w", err)
	}
	return nil
}

// UpdateAddOn updates an existing add-on record
func (d *DB) UpdateAddOn(ctx context.Context, addOn *db.AddOn) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE add_ons
		SET name = $2, description = $3, pricing = $4, price = $5, minutes_unit = $6, active = $7
		WHERE id = $1
	`, addOn.ID, addOn.Name, addOn.Description, addOn.Pricing, addOn.Price, addOn.MinutesUnit, addOn.Active)
	if err != nil {
		return fmt.Errorf("failed to update add-on: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", addOn.ID)
	}
	return nil
}

// DeleteAddOn removes an add-on record
func (d *DB) DeleteAddOn(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM add_ons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete add-on: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", id)
	}
	return nil
}

// GetOneTimeFees retrieves all one-time fee records ordered by name
func (d *DB) GetOneTimeFees(ctx context.Context) ([]db.OneTimeFee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, amount, fee_type, refundable, active, created_at
		FROM one_time_fees
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query one-time fees: %w", err)
	}
	defer rows.Close()

	var fees []db.OneTimeFee
	for rows.Next() {
		var f db.OneTimeFee
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Amount, &f.FeeType, &f.Refundable,
			&f.Active, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan one-time fee: %w", err)
		}
		fees = append(fees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating one-time fees: %w", err)
	}

	return fees, nil
}

// InsertOneTimeFee inserts a new one-time fee record
func (d *DB) InsertOneTimeFee(ctx context.Context, fee *db.OneTimeFee) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO one_time_fees (id, name, description, amount, fee_type, refundable, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, fee.ID, fee.Name, fee.Description, fee.Amount, fee.FeeType, fee.Refundable, fee.Active)
	if err != nil {
		return fmt.Errorf("failed to insert one-time fee: %w", err)
	}
	return nil
}

// UpdateOneTimeFee updates an existing one-time fee record
func (d *DB) UpdateOneTimeFee(ctx context.Context, fee *db.OneTimeFee) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE one_time_fees
		SET name = $2, description = $3, amount = $4, fee_type = $5, refundable = $6, active = $7
		WHERE id = $1
	`, fee.ID, fee.Name, fee.Description, fee.Amount, fee.FeeType, fee.Refundable, fee.Active)
	if err != nil {
		return fmt.Errorf("failed to update one-time fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("one-time fee %s not found", fee.ID)
	}
	return nil
}

// DeleteOneTimeFee removes a one-time fee record
func (d *DB) DeleteOneTimeFee(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM one_time_fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete one-time fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("one-time fee %s not found", id)
	}
	return nil
}

// GetDiscounts retrieves all discount records ordered by name
func (d *DB) GetDiscounts(ctx context.Context) ([]db.Discount, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, description, discount_type, amount, applies_to, conditions, active, created_at
		FROM discounts
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	defer rows.Close()

	var discounts []db.Discount
	for rows.Next() {
		var dc db.Discount
		if err := rows.Scan(&dc.ID, &dc.Name, &dc.Description, &dc.Type, &dc.Amount, &dc.AppliesTo,
			&dc.Conditions, &dc.Active, &dc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discounts: %w", err)
	}

	return discounts, nil
}

// InsertDiscount inserts a new discount record
func (d *DB) InsertDiscount(ctx context.Context, discount *db.Discount) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO discounts (id, name, description, discount_type, amount, applies_to, conditions, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, discount.ID, discount.Name, discount.Description, discount.Type, discount.Amount,
		discount.AppliesTo, discount.Conditions, discount.Active)
	if err != nil {
		return fmt.Errorf("failed to insert discount: %w", err)
	}
	return nil
}

// UpdateDiscount updates an existing discount record
func (d *DB) UpdateDiscount(ctx context.Context, discount *db.Discount) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE discounts
		SET name = $2, description = $3, discount_type = $4, amount = $5, applies_to = $6,
			conditions = $7, active = $8
		WHERE id = $1
	`, discount.ID, discount.Name, discount.Description, discount.Type, discount.Amount,
		discount.AppliesTo, discount.Conditions, discount.Active)
	if err != nil {
		return fmt.Errorf("failed to update discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("discount %s not found", discount.ID)
	}
	return nil
}

// DeleteDiscount removes a discount record
func (d *DB) DeleteDiscount(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("discount %s not found", id)
	}
	return nil
}

func scanCorePlan(row rowScanner) (*db.CorePlan, error) {
	var p db.CorePlan
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.BillingPeriod, &p.Schedule,
		&p.Pattern, &p.Band, &p.IsFixedPlan, &p.StartTime, &p.EndTime, &p.Active, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan core plan: %w", err)
	}
	return &p, nil
}
