package staffing

import (
	"fmt"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

// evaluateEnhancedOption works out the staffing requirement under an enhanced
// ratio and whether the available roster has the teacher/aide composition to
// run it.
func evaluateEnhancedOption(enh model.EnhancedRatio, children int, available []model.StaffMember) (EnhancedOption, error) {
	needed, err := RequiredStaff(children, enh.Ratio)
	if err != nil {
		return EnhancedOption{}, fmt.Errorf("enhanced ratio 1:%d: %w", enh.Ratio, err)
	}

	canUse, reason := CanUseEnhancedRatio(enh, available)

	return EnhancedOption{
		Ratio:            enh.Ratio,
		StaffNeeded:      needed,
		CanUse:           canUse,
		Reason:           reason,
		Description:      enh.Description,
		RequiredTeachers: enh.RequiresTeachers,
		RequiredAides:    enh.RequiresAides,
		AideMinECEUnits:  enh.AideMinECEUnits,
	}, nil
}

// CanUseEnhancedRatio checks whether the roster satisfies an enhanced ratio's
// staff composition: a minimum number of qualified teachers (Associate
// Teacher or above) and of aides (Assistants with enough ECE units).
func CanUseEnhancedRatio(enh model.EnhancedRatio, available []model.StaffMember) (bool, string) {
	teachers := 0
	aides := 0
	for _, s := range available {
		if s.PermitLevel.AtLeast(model.LevelAssociateTeacher) {
			teachers++
		} else if s.PermitLevel == model.LevelAssistant && s.ECEUnits >= enh.AideMinECEUnits {
			aides++
		}
	}

	if teachers < enh.RequiresTeachers {
		return false, fmt.Sprintf("need %d qualified teacher(s), have %d", enh.RequiresTeachers, teachers)
	}
	if aides < enh.RequiresAides {
		return false, fmt.Sprintf("need %d aide(s) with %d+ ECE units, have %d", enh.RequiresAides, enh.AideMinECEUnits, aides)
	}
	return true, "requirements met"
}
