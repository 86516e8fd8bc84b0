package staffing

import (
	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// LevelCapacity is the supervision capacity contributed by one permit level.
type LevelCapacity struct {
	Count    int // available staff at this level
	Capacity int // assistants they can supervise between them
}

// SupervisorCapacity describes how many Assistants the available roster can
// supervise, broken down by permit level.
type SupervisorCapacity struct {
	MaxAssistants int
	Breakdown     map[model.PermitLevel]LevelCapacity
}

// CalculateSupervisorCapacity sums the assistant supervision capacity of the
// given staff. Assistants themselves contribute nothing.
func CalculateSupervisorCapacity(available []model.StaffMember) SupervisorCapacity {
	out := SupervisorCapacity{
		Breakdown: make(map[model.PermitLevel]LevelCapacity),
	}

	for _, s := range available {
		if s.PermitLevel == model.LevelAssistant {
			continue
		}
		n := s.PermitLevel.MaxAssistants()
		out.MaxAssistants += n

		lc := out.Breakdown[s.PermitLevel]
		lc.Count++
		lc.Capacity += n
		out.Breakdown[s.PermitLevel] = lc
	}

	return out
}
