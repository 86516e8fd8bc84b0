package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/pkg/core/capacity"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// CapacityPlanStore defines the database operations needed for capacity planning
type CapacityPlanStore interface {
	GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error)
	GetStaffMembers(ctx context.Context) ([]db.StaffMember, error)
}

// CapacityPlan couples a capacity simulation with the settings that drove it.
type CapacityPlan struct {
	Settings *db.CapacitySettings
	Plan     *capacity.Plan
}

// PlanCapacity runs the capacity simulation from the stored settings: it
// distributes the planned enrollment across plan combinations, derives daily
// attendance and peak-day staffing, and costs out labor at rates averaged
// from the available roster.
func PlanCapacity(ctx context.Context, store CapacityPlanStore, logger *zap.Logger) (*CapacityPlan, error) {
	logger.Debug("Fetching capacity settings")
	settings, err := store.GetCapacitySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch capacity settings: %w", err)
	}

	logger.Debug("Fetching staff roster for labor rates")
	staffRecords, err := store.GetStaffMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}

	var available []model.StaffMember
	for _, s := range staffRecords {
		m := s.ToModel()
		if m.Available {
			available = append(available, m)
		}
	}

	mix := MixFromSettings(settings)
	plan, err := capacity.BuildPlan(mix, settings.TotalChildren, capacity.RatesFromRoster(available))
	if err != nil {
		return nil, fmt.Errorf("failed to build capacity plan: %w", err)
	}

	logger.Info("Capacity plan built",
		zap.Int("total_children", settings.TotalChildren),
		zap.String("peak_day", plan.Requirements.PeakDay),
		zap.Int("peak_attendance", plan.Requirements.PeakTotal),
		zap.Int("teachers_needed", plan.Requirements.TotalTeachers))

	return &CapacityPlan{Settings: settings, Plan: plan}, nil
}

// MixFromSettings converts a stored settings record to a capacity mix.
func MixFromSettings(s *db.CapacitySettings) capacity.Mix {
	return capacity.Mix{
		InfantPercent:   s.InfantPercent,
		ChildPercent:    s.ChildPercent,
		CorePercent:     s.CorePercent,
		ExtendedPercent: s.ExtendedPercent,
		FullPercent:     s.FullPercent,
		MWFPercent:      s.MWFPercent,
		TThPercent:      s.TThPercent,
	}
}
