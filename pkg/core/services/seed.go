package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// fixedPlanPrices holds the monthly price for each fixed plan combination.
var fixedPlanPrices = map[[3]string]float64{
	{"core", "full", "infant"}:     1800.00,
	{"core", "full", "child"}:      1550.00,
	{"core", "mwf", "infant"}:      1400.00,
	{"core", "mwf", "child"}:       1250.00,
	{"core", "tth", "infant"}:      1100.00,
	{"core", "tth", "child"}:       1000.00,
	{"extended", "full", "infant"}: 2500.00,
	{"extended", "full", "child"}:  2200.00,
	{"extended", "mwf", "infant"}:  1950.00,
	{"extended", "mwf", "child"}:   1800.00,
	{"extended", "tth", "infant"}:  1400.00,
	{"extended", "tth", "child"}:   1300.00,
}

// Seed populates an empty database with a working starter configuration:
// licensing age groups, the twelve fixed plans, a placeholder roster, and
// default pricing and expense records. Sections that already hold data are
// left alone, so re-running is safe.
func Seed(ctx context.Context, database db.Database, logger *zap.Logger) error {
	if err := seedAgeGroups(ctx, database, logger); err != nil {
		return err
	}
	if err := seedFixedPlans(ctx, database, logger); err != nil {
		return err
	}
	if err := seedStaff(ctx, database, logger); err != nil {
		return err
	}
	if err := seedPricing(ctx, database, logger); err != nil {
		return err
	}
	if err := seedExpenses(ctx, database, logger); err != nil {
		return err
	}

	// Ensure the capacity settings singleton exists.
	if _, err := database.GetCapacitySettings(ctx); err != nil {
		return fmt.Errorf("failed to initialise capacity settings: %w", err)
	}

	logger.Info("Database seeded")
	return nil
}

func seedAgeGroups(ctx context.Context, database db.Database, logger *zap.Logger) error {
	existing, err := database.GetAgeGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to check age groups: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Age groups already present, skipping")
		return nil
	}

	childEnhanced := []model.EnhancedRatio{
		{
			Ratio:            15,
			RequiresTeachers: 1,
			RequiresAides:    1,
			Description:      "1 teacher + 1 aide",
		},
		{
			Ratio:            18,
			RequiresTeachers: 1,
			RequiresAides:    1,
			AideMinECEUnits:  6,
			Description:      "1 teacher + 1 aide with 6+ ECE units",
		},
	}

	groups := []db.AgeGroup{
		{Name: "Infants (0-18 months)", MinAgeMonths: 0, MaxAgeMonths: 18, Ratio: 4},
		{Name: "Toddlers (18-30 months)", MinAgeMonths: 18, MaxAgeMonths: 30, Ratio: 6},
		{Name: "Child (2-6 years)", MinAgeMonths: 24, MaxAgeMonths: 72, Ratio: 12, EnhancedRatios: childEnhanced},
	}
	for i := range groups {
		groups[i].ID = uuid.NewString()
		if err := database.InsertAgeGroup(ctx, &groups[i]); err != nil {
			return fmt.Errorf("failed to seed age group %q: %w", groups[i].Name, err)
		}
	}
	logger.Info("Seeded age groups", zap.Int("count", len(groups)))
	return nil
}

func seedFixedPlans(ctx context.Context, database db.Database, logger *zap.Logger) error {
	existing, err := database.GetCorePlans(ctx)
	if err != nil {
		return fmt.Errorf("failed to check core plans: %w", err)
	}
	present := make(map[[3]string]bool)
	for _, p := range existing {
		if p.IsFixedPlan {
			present[[3]string{p.Schedule, p.Pattern, p.Band}] = true
		}
	}

	scheduleTimes := map[capacity.ScheduleType][2]string{
		capacity.ScheduleCore:     {"9:00 AM", "3:00 PM"},
		capacity.ScheduleExtended: {"7:30 AM", "5:30 PM"},
	}
	bandDescriptions := map[capacity.AgeBand]string{
		capacity.BandInfant: "4 months - 2 years",
		capacity.BandChild:  "2+ years",
	}

	created := 0
	for _, b := range capacity.PlanCombinations() {
		key := [3]string{string(b.Schedule), string(b.Pattern), string(b.Band)}
		if present[key] {
			continue
		}
		times := scheduleTimes[b.Schedule]
		plan := db.CorePlan{
			ID:   uuid.NewString(),
			Name: b.PlanName,
			Description: fmt.Sprintf("%s program (%s), %s, %s",
				b.BandName, bandDescriptions[b.Band], b.PatternName, b.ScheduleName),
			BasePrice:     fixedPlanPrices[key],
			BillingPeriod: "monthly",
			Schedule:      key[0],
			Pattern:       key[1],
			Band:          key[2],
			IsFixedPlan:   true,
			StartTime:     times[0],
			EndTime:       times[1],
			Active:        true,
		}
		if err := database.InsertCorePlan(ctx, &plan); err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", plan.Name, err)
		}
		created++
	}
	if created > 0 {
		logger.Info("Seeded fixed plans", zap.Int("count", created))
	}
	return nil
}

func seedStaff(ctx context.Context, database db.Database, logger *zap.Logger) error {
	existing, err := database.GetStaffMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check staff members: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Staff members already present, skipping")
		return nil
	}

	staff := []db.StaffMember{
		{Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), HourlyRate: 30.00,
			ECEUnits: 24, HasInfantSpecialization: true, FullyQualified: true},
		{Name: "Teacher 2", PermitLevel: string(model.LevelTeacher), HourlyRate: 28.00,
			ECEUnits: 18, FullyQualified: true},
		{Name: "Associate 1", PermitLevel: string(model.LevelAssociateTeacher), HourlyRate: 24.00,
			ECEUnits: 12, HasInfantSpecialization: true, FullyQualified: true},
		{Name: "Associate 2", PermitLevel: string(model.LevelAssociateTeacher), HourlyRate: 22.00,
			ECEUnits: 12, FullyQualified: true},
		{Name: "Assistant 1", PermitLevel: string(model.LevelAssistant), HourlyRate: 20.00,
			ECEUnits: 6},
		{Name: "Assistant 2", PermitLevel: string(model.LevelAssistant), HourlyRate: 18.00},
	}
	for i := range staff {
		staff[i].ID = uuid.NewString()
		staff[i].Available = true
		if err := database.InsertStaffMember(ctx, &staff[i]); err != nil {
			return fmt.Errorf("failed to seed staff member %q: %w", staff[i].Name, err)
		}
	}
	logger.Info("Seeded staff members", zap.Int("count", len(staff)))
	return nil
}

func seedPricing(ctx context.Context, database db.Database, logger *zap.Logger) error {
	addOns, err := database.GetAddOns(ctx)
	if err != nil {
		return fmt.Errorf("failed to check add-ons: %w", err)
	}
	if len(addOns) == 0 {
		addOn := db.AddOn{
			ID:          uuid.NewString(),
			Name:        "Kelly's Corner",
			Pricing:     "per_day",
			Price:       10.0,
			MinutesUnit: 1,
			Active:      true,
		}
		if err := database.InsertAddOn(ctx, &addOn); err != nil {
			return fmt.Errorf("failed to seed add-on: %w", err)
		}
	}

	fees, err := database.GetOneTimeFees(ctx)
	if err != nil {
		return fmt.Errorf("failed to check one-time fees: %w", err)
	}
	if len(fees) == 0 {
		fee := db.OneTimeFee{
			ID:          uuid.NewString(),
			Name:        "Registration",
			Description: "Annual registration fee",
			Amount:      100.0,
			FeeType:     "registration",
			Active:      true,
		}
		if err := database.InsertOneTimeFee(ctx, &fee); err != nil {
			return fmt.Errorf("failed to seed one-time fee: %w", err)
		}
	}

	discounts, err := database.GetDiscounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check discounts: %w", err)
	}
	if len(discounts) == 0 {
		discount := db.Discount{
			ID:          uuid.NewString(),
			Name:        "Sibling",
			Description: "Discount for additional siblings",
			Type:        "percentage",
			Amount:      10.0,
			AppliesTo:   "core_plan",
			Conditions:  "Applied to 2nd child and beyond",
			Active:      true,
		}
		if err := database.InsertDiscount(ctx, &discount); err != nil {
			return fmt.Errorf("failed to seed discount: %w", err)
		}
	}

	return nil
}

func seedExpenses(ctx context.Context, database db.Database, logger *zap.Logger) error {
	fixed, err := database.GetFixedExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to check fixed expenses: %w", err)
	}
	if len(fixed) == 0 {
		expenses := []db.FixedExpense{
			{Name: "Electric", Category: "utility", MonthlyAmount: 350.00, Description: "Monthly electric bill"},
			{Name: "Water", Category: "utility", MonthlyAmount: 120.00, Description: "Monthly water bill"},
			{Name: "Gas", Category: "utility", MonthlyAmount: 80.00, Description: "Monthly gas bill"},
			{Name: "Trash", Category: "utility", MonthlyAmount: 75.00, Description: "Monthly trash pickup"},
			{Name: "Internet", Category: "utility", MonthlyAmount: 100.00, Description: "Monthly internet service"},
			{Name: "Monthly Rent", Category: "lease", MonthlyAmount: 4500.00, Description: "Monthly facility lease"},
			{Name: "Bookkeeping", Category: "professional", MonthlyAmount: 500.00, Description: "Monthly bookkeeping service"},
		}
		for i := range expenses {
			expenses[i].ID = uuid.NewString()
			expenses[i].Active = true
			if err := database.InsertFixedExpense(ctx, &expenses[i]); err != nil {
				return fmt.Errorf("failed to seed fixed expense %q: %w", expenses[i].Name, err)
			}
		}
		logger.Info("Seeded fixed expenses", zap.Int("count", len(expenses)))
	}

	perChild, err := database.GetPerChildCosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check per-child costs: %w", err)
	}
	if len(perChild) == 0 {
		type rate struct {
			band     string
			schedule string
			amount   float64
		}
		supplies := []rate{
			{"infant", "core", 50.00}, {"infant", "extended", 65.00},
			{"child", "core", 40.00}, {"child", "extended", 50.00},
		}
		food := []rate{
			{"infant", "core", 75.00}, {"infant", "extended", 100.00},
			{"child", "core", 60.00}, {"child", "extended", 80.00},
		}
		insert := func(name, description string, rates []rate) error {
			for _, r := range rates {
				cost := db.PerChildCost{
					ID:          uuid.NewString(),
					Name:        name,
					Band:        r.band,
					Schedule:    r.schedule,
					MonthlyRate: r.amount,
					Description: description,
					Active:      true,
				}
				if err := database.InsertPerChildCost(ctx, &cost); err != nil {
					return fmt.Errorf("failed to seed per-child cost %q: %w", name, err)
				}
			}
			return nil
		}
		if err := insert("Supplies", "Classroom and art supplies", supplies); err != nil {
			return err
		}
		if err := insert("Snacks/Food", "Daily snacks and food", food); err != nil {
			return err
		}
	}

	return nil
}
