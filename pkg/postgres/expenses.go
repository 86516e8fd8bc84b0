package postgres

import (
	"context"
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/db"
)

// GetFixedExpenses retrieves all fixed expense records ordered by category then name
func (d *DB) GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, category, monthly_amount, description, active, created_at
		FROM fixed_expenses
		ORDER BY category, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}
	defer rows.Close()

	var expenses []db.FixedExpense
	for rows.Next() {
		var e db.FixedExpense
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.MonthlyAmount, &e.Description,
			&e.Active, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed expenses: %w", err)
	}

	return expenses, nil
}

// InsertFixedExpense inserts a new fixed expense record
func (d *DB) InsertFixedExpense(ctx context.Context, expense *db.FixedExpense) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO fixed_expenses (id, name, category, monthly_amount, description, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, expense.ID, expense.Name, expense.Category, expense.MonthlyAmount, expense.Description, expense.Active)
	if err != nil {
		return fmt.Errorf("failed to insert fixed expense: %w", err)
	}
	return nil
}

// UpdateFixedExpense updates an existing fixed expense record
func (d *DB) UpdateFixedExpense(ctx context.Context, expense *db.FixedExpense) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE fixed_expenses
		SET name = $2, category = $3, monthly_amount = $4, description = $5, active = $6
		WHERE id = $1
	`, expense.ID, expense.Name, expense.Category, expense.MonthlyAmount, expense.Description, expense.Active)
	if err != nil {
		return fmt.Errorf("failed to update fixed expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fixed expense %s not found", expense.ID)
	}
	return nil
}

// DeleteFixedExpense removes a fixed expense record
func (d *DB) DeleteFixedExpense(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM fixed_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fixed expense %s not found", id)
	}
	return nil
}

// GetPerChildCosts retrieves all per-child cost records ordered by band then schedule
func (d *DB) GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, band, schedule, monthly_rate, description, active, created_at
		FROM per_child_costs
		ORDER BY band, schedule, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query per-child costs: %w", err)
	}
	defer rows.Close()

	var costs []db.PerChildCost
	for rows.Next() {
		var c db.PerChildCost
		if err := rows.Scan(&c.ID, &c.Name, &c.Band, &c.Schedule, &c.MonthlyRate, &c.Description,
			&c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan per-child cost: %w", err)
		}
		costs = append(costs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating per-child costs: %w", err)
	}

	return costs, nil
}

// InsertPerChildCost inserts a new per-child cost record
func (d *DB) InsertPerChildCost(ctx context.Context, cost *db.PerChildCost) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO per_child_costs (id, name, band, schedule, monthly_rate, description, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, cost.ID, cost.Name, cost.Band, cost.Schedule, cost.MonthlyRate, cost.Description, cost.Active)
	if err != nil {
		return fmt.Errorf("failed to insert per-child cost: %w", err)
	}
	return nil
}

// UpdatePerChildCost updates an existing per-child cost record
func (d *DB) UpdatePerChildCost(ctx context.Context, cost *db.PerChildCost) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE per_child_costs
		SET name = $2, band = $3, schedule = $4, monthly_rate = $5, description = $6, active = $7
		WHERE id = $1
	`, cost.ID, cost.Name, cost.Band, cost.Schedule, cost.MonthlyRate, cost.Description, cost.Active)
	if err != nil {
		return fmt.Errorf("failed to update per-child cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("per-child cost %s not found", cost.ID)
	}
	return nil
}

// DeletePerChildCost removes a per-child cost record
func (d *DB) DeletePerChildCost(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM per_child_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete per-child cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("per-child cost %s not found", id)
	}
	return nil
}
