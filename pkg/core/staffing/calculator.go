package staffing

import (
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// GroupEnrollment pairs an age group with the number of children enrolled
// in it for one calculation.
type GroupEnrollment struct {
	Group    model.AgeGroup
	Children int
}

// EnhancedOption describes one enhanced ratio evaluated for a group,
// including whether the current roster can actually run it.
type EnhancedOption struct {
	Ratio            int
	StaffNeeded      int
	CanUse           bool
	Reason           string
	Description      string
	RequiredTeachers int
	RequiredAides    int
	AideMinECEUnits  int
}

// GroupResult is the staffing requirement for a single age group.
type GroupResult struct {
	GroupID         string
	GroupName       string
	Children        int
	Ratio           int // the ratio actually used
	StaffNeeded     int
	EnhancedUsed    bool
	EnhancedOptions []EnhancedOption
	Warnings        []string
}

// Result is the outcome of a staffing calculation.
type Result struct {
	Groups               []GroupResult
	TotalStaffNeeded     int
	AvailableStaff       int
	AdequatelyStaffed    bool
	CanUseAssistants     bool
	AvailableSupervisors int
	SupervisorCapacity   SupervisorCapacity
	Suggestions          []Assignment
	Costs                CostAnalysis
	Director             *DirectorInfo
	Warnings             []string
}

// DirectorInfo summarises the facility director on the available roster.
type DirectorInfo struct {
	Name              string
	Level             model.PermitLevel
	CountsTowardRatio bool
}

// RequiredStaff returns the minimum staff for children at the given ratio
// (children per one staff member), i.e. ceiling(children/ratio).
func RequiredStaff(children, ratio int) (int, error) {
	if children < 0 {
		return 0, fmt.Errorf("child count must not be negative, got %d", children)
	}
	if ratio <= 0 {
		return 0, fmt.Errorf("ratio must be positive, got %d", ratio)
	}
	return (children + ratio - 1) / ratio, nil
}

// Calculate computes per-group and total staffing requirements for the given
// enrollments against the given roster. Only available staff are counted.
// Empty enrollments or an empty roster yield a zero result, not an error;
// negative child counts and non-positive ratios are rejected.
func Calculate(enrollments []GroupEnrollment, roster []model.StaffMember) (*Result, error) {
	available := availableStaff(roster)

	res := &Result{
		SupervisorCapacity: CalculateSupervisorCapacity(available),
	}

	for _, e := range enrollments {
		if e.Children < 0 {
			return nil, fmt.Errorf("group %q: child count must not be negative, got %d", e.Group.Name, e.Children)
		}
		if e.Children == 0 {
			continue
		}

		needed, err := RequiredStaff(e.Children, e.Group.Ratio)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", e.Group.Name, err)
		}

		gr := GroupResult{
			GroupID:     e.Group.ID,
			GroupName:   e.Group.Name,
			Children:    e.Children,
			Ratio:       e.Group.Ratio,
			StaffNeeded: needed,
		}

		if e.Group.IsInfant() {
			qualified := infantQualifiedStaff(available)
			if len(qualified) < needed {
				gr.Warnings = append(gr.Warnings, fmt.Sprintf(
					"need %d infant-qualified teachers, only %d available", needed, len(qualified)))
			}
		}

		// Evaluate enhanced ratio options and take the best one the
		// roster can actually run.
		for _, enh := range e.Group.EnhancedRatios {
			opt, err := evaluateEnhancedOption(enh, e.Children, available)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", e.Group.Name, err)
			}
			gr.EnhancedOptions = append(gr.EnhancedOptions, opt)

			if opt.CanUse && opt.StaffNeeded < gr.StaffNeeded {
				gr.Ratio = opt.Ratio
				gr.StaffNeeded = opt.StaffNeeded
				gr.EnhancedUsed = true
			}
		}

		res.Groups = append(res.Groups, gr)
		res.TotalStaffNeeded += gr.StaffNeeded
	}

	res.AvailableStaff = len(available)
	res.AdequatelyStaffed = res.AvailableStaff >= res.TotalStaffNeeded

	// Assistants may only be deployed under an Associate Teacher or above.
	supervisors := 0
	assistants := 0
	for _, s := range available {
		if s.PermitLevel.AtLeast(model.LevelAssociateTeacher) {
			supervisors++
		} else {
			assistants++
		}
	}
	res.AvailableSupervisors = supervisors
	res.CanUseAssistants = supervisors > 0
	if assistants > 0 && supervisors == 0 {
		res.Warnings = append(res.Warnings,
			"available Assistants cannot be deployed without an Associate Teacher or above on shift")
	}
	if assistants > res.SupervisorCapacity.MaxAssistants {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"have %d assistants but can only supervise %d simultaneously",
			assistants, res.SupervisorCapacity.MaxAssistants))
	}

	if d := findDirector(available); d != nil {
		res.Director = &DirectorInfo{
			Name:              d.Name,
			Level:             d.PermitLevel,
			CountsTowardRatio: d.DirectorCountsTowardRatio,
		}
		if !d.DirectorCountsTowardRatio {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"director %s is not counted toward staffing ratios (administrative duties only)", d.Name))
		}
	}

	res.Suggestions = SuggestAssignments(enrollments, available)
	res.Costs = AnalyzeCosts(available)

	return res, nil
}

// availableStaff filters the roster down to members marked available.
func availableStaff(roster []model.StaffMember) []model.StaffMember {
	var out []model.StaffMember
	for _, s := range roster {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// findDirector returns the first director on the roster, or nil.
// One director per facility is assumed.
func findDirector(roster []model.StaffMember) *model.StaffMember {
	for i := range roster {
		if roster[i].IsDirector {
			return &roster[i]
		}
	}
	return nil
}
