package db

import "context"

// AgeGroupStore defines the interface for age group database operations.
type AgeGroupStore interface {
	GetAgeGroups(ctx context.Context) ([]AgeGroup, error)
	GetAgeGroup(ctx context.Context, id string) (*AgeGroup, error)
	InsertAgeGroup(ctx context.Context, group *AgeGroup) error
	UpdateAgeGroup(ctx context.Context, group *AgeGroup) error
	DeleteAgeGroup(ctx context.Context, id string) error
}

// StaffStore defines the interface for staff member database operations.
type StaffStore interface {
	GetStaffMembers(ctx context.Context) ([]StaffMember, error)
	GetStaffMember(ctx context.Context, id string) (*StaffMember, error)
	InsertStaffMember(ctx context.Context, staff *StaffMember) error
	UpdateStaffMember(ctx context.Context, staff *StaffMember) error
	ToggleStaffAvailability(ctx context.Context, id string) (*StaffMember, error)
	DeleteStaffMember(ctx context.Context, id string) error
}

// PlanStore defines the interface for core plan database operations.
type PlanStore interface {
	GetCorePlans(ctx context.Context) ([]CorePlan, error)
	GetCorePlan(ctx context.Context, id string) (*CorePlan, error)
	InsertCorePlan(ctx context.Context, plan *CorePlan) error
	UpdateCorePlan(ctx context.Context, plan *CorePlan) error
	DeleteCorePlan(ctx context.Context, id string) error
}

// AddOnStore defines the interface for add-on database operations.
type AddOnStore interface {
	GetAddOns(ctx context.Context) ([]AddOn, error)
	GetAddOn(ctx context.Context, id string) (*AddOn, error)
	InsertAddOn(ctx context.Context, addOn *AddOn) error
	UpdateAddOn(ctx context.Context, addOn *AddOn) error
	DeleteAddOn(ctx context.Context, id string) error
}

// FeeStore defines the interface for one-time fee database operations.
type FeeStore interface {
	GetOneTimeFees(ctx context.Context) ([]OneTimeFee, error)
	InsertOneTimeFee(ctx context.Context, fee *OneTimeFee) error
	UpdateOneTimeFee(ctx context.Context, fee *OneTimeFee) error
	DeleteOneTimeFee(ctx context.Context, id string) error
}

// DiscountStore defines the interface for discount database operations.
type DiscountStore interface {
	GetDiscounts(ctx context.Context) ([]Discount, error)
	InsertDiscount(ctx context.Context, discount *Discount) error
	UpdateDiscount(ctx context.Context, discount *Discount) error
	DeleteDiscount(ctx context.Context, id string) error
}

// ExpenseStore defines the interface for expense database operations.
type ExpenseStore interface {
	GetFixedExpenses(ctx context.Context) ([]FixedExpense, error)
	InsertFixedExpense(ctx context.Context, expense *FixedExpense) error
	UpdateFixedExpense(ctx context.Context, expense *FixedExpense) error
	DeleteFixedExpense(ctx context.Context, id string) error
	GetPerChildCosts(ctx context.Context) ([]PerChildCost, error)
	InsertPerChildCost(ctx context.Context, cost *PerChildCost) error
	UpdatePerChildCost(ctx context.Context, cost *PerChildCost) error
	DeletePerChildCost(ctx context.Context, id string) error
}

// CapacityStore defines the interface for capacity settings operations.
// The settings row is a singleton: GetCapacitySettings creates it with
// defaults when missing.
type CapacityStore interface {
	GetCapacitySettings(ctx context.Context) (*CapacitySettings, error)
	UpdateCapacitySettings(ctx context.Context, settings *CapacitySettings) error
}

// Database aggregates all store interfaces. The postgres.DB implements it.
type Database interface {
	AgeGroupStore
	StaffStore
	PlanStore
	AddOnStore
	FeeStore
	DiscountStore
	ExpenseStore
	CapacityStore
}
