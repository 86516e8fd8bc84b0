package staffing

import (
	"sort"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// SuggestedStaff is one roster member proposed for a group assignment.
type SuggestedStaff struct {
	Name   string
	Level  model.PermitLevel
	Reason string
}

// Assignment is a suggested set of staff for one age group.
type Assignment struct {
	GroupName string
	Children  int
	Staff     []SuggestedStaff
	Warnings  []string
}

// maxSuggestionsPerGroup caps how many staff are proposed per group.
const maxSuggestionsPerGroup = 4

// CheckInfantQualifications reports whether a staff member meets the infant
// care teacher requirements, with the reasons they fall short.
func CheckInfantQualifications(s model.StaffMember) (bool, []string) {
	var reasons []string
	if !s.FullyQualified {
		reasons = append(reasons, "not fully qualified (needs 12 ECE units + 6 months experience)")
	}
	if !s.HasInfantSpecialization {
		reasons = append(reasons, "missing 3+ units in infant care specialization")
	}
	return len(reasons) == 0, reasons
}

// infantQualifiedStaff filters for members who may teach infant groups.
func infantQualifiedStaff(available []model.StaffMember) []model.StaffMember {
	var out []model.StaffMember
	for _, s := range available {
		if ok, _ := CheckInfantQualifications(s); ok {
			out = append(out, s)
		}
	}
	return out
}

// SuggestAssignments proposes staff for each enrolled group based on
// qualifications. Infant groups only get infant-qualified staff; other
// groups get the highest-ranked fully qualified members. Admin-only
// directors are never suggested.
func SuggestAssignments(enrollments []GroupEnrollment, available []model.StaffMember) []Assignment {
	var teaching []model.StaffMember
	for _, s := range available {
		if s.CountsTowardRatio() {
			teaching = append(teaching, s)
		}
	}

	var assignments []Assignment
	for _, e := range enrollments {
		if e.Children == 0 {
			continue
		}

		a := Assignment{GroupName: e.Group.Name, Children: e.Children}

		if e.Group.IsInfant() {
			qualified := infantQualifiedStaff(teaching)
			if len(qualified) == 0 {
				a.Warnings = append(a.Warnings,
					"no staff with infant specialization available; all infant teachers must have 3+ units in infant care")
			}
			for _, s := range capStaff(qualified) {
				a.Staff = append(a.Staff, SuggestedStaff{Name: s.Name, Level: s.PermitLevel, Reason: "infant qualified"})
			}
		} else {
			var qualified []model.StaffMember
			for _, s := range teaching {
				if s.FullyQualified {
					qualified = append(qualified, s)
				}
			}
			sort.SliceStable(qualified, func(i, j int) bool {
				return qualified[i].PermitLevel.Rank() > qualified[j].PermitLevel.Rank()
			})
			for _, s := range capStaff(qualified) {
				a.Staff = append(a.Staff, SuggestedStaff{Name: s.Name, Level: s.PermitLevel, Reason: "qualified teacher"})
			}
		}

		assignments = append(assignments, a)
	}

	return assignments
}

func capStaff(staff []model.StaffMember) []model.StaffMember {
	if len(staff) > maxSuggestionsPerGroup {
		return staff[:maxSuggestionsPerGroup]
	}
	return staff
}
