package staffing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

func TestCheckInfantQualifications(t *testing.T) {
	tests := []struct {
		name        string
		staff       model.StaffMember
		wantOK      bool
		wantReasons int
	}{
		{
			name:   "fully qualified with specialization",
			staff:  model.StaffMember{FullyQualified: true, HasInfantSpecialization: true},
			wantOK: true,
		},
		{
			name:        "missing specialization",
			staff:       model.StaffMember{FullyQualified: true},
			wantOK:      false,
			wantReasons: 1,
		},
		{
			name:        "missing everything",
			staff:       model.StaffMember{},
			wantOK:      false,
			wantReasons: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reasons := CheckInfantQualifications(tt.staff)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, reasons, tt.wantReasons)
		})
	}
}

func TestSuggestAssignments_RanksByPermitLevel(t *testing.T) {
	roster := []model.StaffMember{
		{Name: "Ada", PermitLevel: model.LevelAssociateTeacher, Available: true, FullyQualified: true},
		{Name: "Ben", PermitLevel: model.LevelSiteSupervisor, Available: true, FullyQualified: true},
		{Name: "Cleo", PermitLevel: model.LevelTeacher, Available: true, FullyQualified: true},
	}

	got := SuggestAssignments([]GroupEnrollment{{Group: preschoolGroup(), Children: 10}}, roster)

	require.Len(t, got, 1)
	require.Len(t, got[0].Staff, 3)
	assert.Equal(t, "Ben", got[0].Staff[0].Name)
	assert.Equal(t, "Cleo", got[0].Staff[1].Name)
	assert.Equal(t, "Ada", got[0].Staff[2].Name)
}

func TestSuggestAssignments_InfantGroupNeedsSpecialization(t *testing.T) {
	roster := []model.StaffMember{
		{Name: "Ada", PermitLevel: model.LevelTeacher, Available: true, FullyQualified: true},
		{Name: "Ben", PermitLevel: model.LevelTeacher, Available: true, FullyQualified: true, HasInfantSpecialization: true},
	}

	got := SuggestAssignments([]GroupEnrollment{{Group: infantGroup(), Children: 4}}, roster)

	require.Len(t, got, 1)
	require.Len(t, got[0].Staff, 1)
	assert.Equal(t, "Ben", got[0].Staff[0].Name)
	assert.Equal(t, "infant qualified", got[0].Staff[0].Reason)
	assert.Empty(t, got[0].Warnings)
}

func TestSuggestAssignments_AdminDirectorExcluded(t *testing.T) {
	roster := []model.StaffMember{
		{Name: "Dee", PermitLevel: model.LevelProgramDirector, Available: true, FullyQualified: true, IsDirector: true},
		{Name: "Ada", PermitLevel: model.LevelTeacher, Available: true, FullyQualified: true},
	}

	got := SuggestAssignments([]GroupEnrollment{{Group: preschoolGroup(), Children: 10}}, roster)

	require.Len(t, got, 1)
	require.Len(t, got[0].Staff, 1)
	assert.Equal(t, "Ada", got[0].Staff[0].Name)
}

func TestSuggestAssignments_CapsSuggestions(t *testing.T) {
	var roster []model.StaffMember
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		roster = append(roster, model.StaffMember{
			Name: name, PermitLevel: model.LevelTeacher, Available: true, FullyQualified: true,
		})
	}

	got := SuggestAssignments([]GroupEnrollment{{Group: preschoolGroup(), Children: 10}}, roster)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Staff, maxSuggestionsPerGroup)
}
