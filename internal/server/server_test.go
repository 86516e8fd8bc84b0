package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/internal/config"
	"github.com/cedarhouse/staffadmin/pkg/core/model"
	"github.com/cedarhouse/staffadmin/pkg/db"
)

// mockDB implements the store methods the tests exercise. The embedded
// interface panics on anything unimplemented, which keeps the mock honest.
type mockDB struct {
	db.Database

	ageGroups []db.AgeGroup
	staff     []db.StaffMember
	settings  *db.CapacitySettings
	plans     []db.CorePlan
	fixed     []db.FixedExpense
	perChild  []db.PerChildCost

	insertedAgeGroups []db.AgeGroup
	updatedSettings   *db.CapacitySettings
}

func (m *mockDB) GetAgeGroups(ctx context.Context) ([]db.AgeGroup, error) {
	return m.ageGroups, nil
}

func (m *mockDB) InsertAgeGroup(ctx context.Context, group *db.AgeGroup) error {
	m.insertedAgeGroups = append(m.insertedAgeGroups, *group)
	return nil
}

func (m *mockDB) GetStaffMembers(ctx context.Context) ([]db.StaffMember, error) {
	return m.staff, nil
}

func (m *mockDB) ToggleStaffAvailability(ctx context.Context, id string) (*db.StaffMember, error) {
	for i := range m.staff {
		if m.staff[i].ID == id {
			m.staff[i].Available = !m.staff[i].Available
			return &m.staff[i], nil
		}
	}
	return nil, fmt.Errorf("staff member %s not found", id)
}

func (m *mockDB) GetCorePlans(ctx context.Context) ([]db.CorePlan, error) {
	return m.plans, nil
}

func (m *mockDB) GetFixedExpenses(ctx context.Context) ([]db.FixedExpense, error) {
	return m.fixed, nil
}

func (m *mockDB) GetPerChildCosts(ctx context.Context) ([]db.PerChildCost, error) {
	return m.perChild, nil
}

func (m *mockDB) GetCapacitySettings(ctx context.Context) (*db.CapacitySettings, error) {
	return m.settings, nil
}

func (m *mockDB) UpdateCapacitySettings(ctx context.Context, settings *db.CapacitySettings) error {
	m.updatedSettings = settings
	return nil
}

func newTestServer(t *testing.T, database db.Database) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Env: "test", HTTPAddr: "localhost:0", DatabaseURL: "postgres://test"}
	return New(cfg, database, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestCalculateEndpoint(t *testing.T) {
	database := &mockDB{
		ageGroups: []db.AgeGroup{
			{ID: "preschool", Name: "Child (2-6 years)", MinAgeMonths: 24, MaxAgeMonths: 72, Ratio: 12},
		},
		staff: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 30, FullyQualified: true},
			{ID: "s2", Name: "Teacher 2", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 28, FullyQualified: true},
			{ID: "s3", Name: "Teacher 3", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 28, FullyQualified: true},
		},
	}
	s := newTestServer(t, database)

	w := doRequest(t, s, http.MethodPost, "/api/calculate", `{"enrollments":{"preschool":25}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		TotalStaffNeeded  int  `json:"TotalStaffNeeded"`
		AvailableStaff    int  `json:"AvailableStaff"`
		AdequatelyStaffed bool `json:"AdequatelyStaffed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 3, result.TotalStaffNeeded)
	assert.Equal(t, 3, result.AvailableStaff)
	assert.True(t, result.AdequatelyStaffed)
}

func TestCalculateEndpointNegativeCount(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodPost, "/api/calculate", `{"enrollments":{"preschool":-5}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not be negative")
}

func TestCreateAgeGroupValidation(t *testing.T) {
	database := &mockDB{}
	s := newTestServer(t, database)

	// Missing ratio fails binding.
	w := doRequest(t, s, http.MethodPost, "/api/age-groups",
		`{"name":"Infants","min_age_months":0,"max_age_months":18}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, database.insertedAgeGroups)

	w = doRequest(t, s, http.MethodPost, "/api/age-groups",
		`{"name":"Infants","min_age_months":0,"max_age_months":18,"ratio":4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, database.insertedAgeGroups, 1)
	assert.Equal(t, 4, database.insertedAgeGroups[0].Ratio)
	assert.NotEmpty(t, database.insertedAgeGroups[0].ID)
}

func TestToggleStaffNotFound(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodPost, "/api/staff/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleStaff(t *testing.T) {
	database := &mockDB{
		staff: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true},
		},
	}
	s := newTestServer(t, database)

	w := doRequest(t, s, http.MethodPost, "/api/staff/s1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, database.staff[0].Available)
}

func TestUpdateCapacitySettingsInvalidMix(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodPut, "/api/capacity/settings", `{
		"total_children": 50, "max_capacity": 75,
		"infant_percent": 50, "child_percent": 80,
		"core_percent": 50, "extended_percent": 50,
		"full_percent": 60, "mwf_percent": 30, "tth_percent": 10
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must total 100%")
}

func TestUpdateCapacitySettingsOverCapacity(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodPut, "/api/capacity/settings", `{
		"total_children": 80, "max_capacity": 75,
		"infant_percent": 20, "child_percent": 80,
		"core_percent": 50, "extended_percent": 50,
		"full_percent": 60, "mwf_percent": 30, "tth_percent": 10
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "licensed capacity")
}

func TestUpdateCapacitySettings(t *testing.T) {
	database := &mockDB{}
	s := newTestServer(t, database)

	w := doRequest(t, s, http.MethodPut, "/api/capacity/settings", `{
		"total_children": 50, "max_capacity": 75,
		"infant_percent": 20, "child_percent": 80,
		"core_percent": 50, "extended_percent": 50,
		"full_percent": 60, "mwf_percent": 30, "tth_percent": 10
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, database.updatedSettings)
	assert.Equal(t, 50, database.updatedSettings.TotalChildren)
	assert.Equal(t, 75, database.updatedSettings.MaxCapacity)
}

func TestListAgeGroupsEmpty(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodGet, "/api/age-groups", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestDailyLaborEndpoint(t *testing.T) {
	database := &mockDB{
		staff: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true, HourlyRate: 30},
		},
	}
	s := newTestServer(t, database)

	// 4 core infants need 1 position; 24 extended children need 2 per shift.
	w := doRequest(t, s, http.MethodPost, "/api/capacity/daily-labor", `{
		"core_infants": 4, "core_children": 0,
		"extended_infants": 0, "extended_children": 24
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var day struct {
		CorePositions  int `json:"CorePositions"`
		TotalPositions int `json:"TotalPositions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	assert.Equal(t, 1, day.CorePositions)
	assert.Equal(t, 5, day.TotalPositions)
}

func TestDailyLaborRejectsNegativeCounts(t *testing.T) {
	s := newTestServer(t, &mockDB{})
	w := doRequest(t, s, http.MethodPost, "/api/capacity/daily-labor", `{"core_infants": -1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectionsEndpoint(t *testing.T) {
	database := &mockDB{
		settings: &db.CapacitySettings{
			TotalChildren: 12, MaxCapacity: 20,
			ChildPercent: 100, CorePercent: 100, FullPercent: 100,
		},
		staff: []db.StaffMember{
			{ID: "s1", Name: "Teacher 1", PermitLevel: string(model.LevelTeacher), Available: true,
				HourlyRate: 30, FullyQualified: true},
		},
		plans: []db.CorePlan{
			{ID: "p1", Name: "Child Mon-Fri Core Hours", BasePrice: 1550, BillingPeriod: "monthly",
				Schedule: "core", Pattern: "full", Band: "child", IsFixedPlan: true, Active: true},
		},
		fixed: []db.FixedExpense{
			{Name: "Internet", Category: "utility", MonthlyAmount: 1000, Active: true},
		},
	}
	s := newTestServer(t, database)

	w := doRequest(t, s, http.MethodGet, "/api/projections", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Summary struct {
			MonthlyRevenue float64 `json:"MonthlyRevenue"`
			Profitable     bool    `json:"Profitable"`
		} `json:"Summary"`
		Metrics struct {
			BreakEvenChildren int `json:"BreakEvenChildren"`
		} `json:"Metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 18600.0, result.Summary.MonthlyRevenue, 0.001)
	assert.True(t, result.Summary.Profitable)
	assert.Equal(t, 1, result.Metrics.BreakEvenChildren)
}

func TestProjectionsSensitivityEndpoint(t *testing.T) {
	database := &mockDB{
		settings: &db.CapacitySettings{
			TotalChildren: 12, MaxCapacity: 20,
			ChildPercent: 100, CorePercent: 100, FullPercent: 100,
		},
	}
	s := newTestServer(t, database)

	w := doRequest(t, s, http.MethodGet, "/api/projections/sensitivity", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Sensitivity []struct {
			Variable  string            `json:"Variable"`
			Scenarios []json.RawMessage `json:"Scenarios"`
		} `json:"sensitivity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Sensitivity, 4)
	assert.Equal(t, "enrollment", result.Sensitivity[0].Variable)
	for _, g := range result.Sensitivity {
		assert.Len(t, g.Scenarios, 5)
	}
}
