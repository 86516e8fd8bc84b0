package staffing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cedarhouse/staffadmin/pkg/core/model"
)

func TestAnalyzeCosts(t *testing.T) {
	staff := []model.StaffMember{
		{Name: "Ada", PermitLevel: model.LevelTeacher, HourlyRate: 28.50},
		{Name: "Ivy", PermitLevel: model.LevelAssistant, HourlyRate: 18.25},
	}

	got := AnalyzeCosts(staff)

	assert.Equal(t, 46.75, got.TotalHourly)
	assert.Equal(t, 374.0, got.Daily)
	assert.Equal(t, 1870.0, got.Weekly)
	assert.Equal(t, 7480.0, got.Monthly)
	assert.Equal(t, 97240.0, got.Annual)
	assert.Equal(t, 23.38, got.AverageHourlyRate)
	assert.Len(t, got.Breakdown, 2)
}

func TestAnalyzeCosts_EmptyRoster(t *testing.T) {
	got := AnalyzeCosts(nil)

	assert.Equal(t, 0.0, got.TotalHourly)
	assert.Equal(t, 0.0, got.AverageHourlyRate)
	assert.Empty(t, got.Breakdown)
}
