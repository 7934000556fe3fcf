// internal/server/handlers_test.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/engine/orchestrator"
	"fitplan-engine/internal/plan"
	"fitplan-engine/internal/store"
)

// ==========================================
// Test Fixtures
// ==========================================

type fakeGenerator struct {
	lastRequest orchestrator.Request
	result      *plan.GenerationResult
	err         error
}

func (f *fakeGenerator) Generate(_ context.Context, req orchestrator.Request) (*plan.GenerationResult, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakePlanStore struct {
	saved   map[string]*store.StoredPlan
	byID    map[string]*store.StoredPlan
	saveErr error
}

func newFakePlanStore() *fakePlanStore {
	return &fakePlanStore{saved: map[string]*store.StoredPlan{}, byID: map[string]*store.StoredPlan{}}
}

func (f *fakePlanStore) Save(_ context.Context, ownerID string, p *plan.GeneratedPlan) (*store.StoredPlan, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	stored := &store.StoredPlan{
		ID: fmt.Sprintf("plan-%d", len(f.byID)+1), OwnerID: ownerID,
		Flavor: p.Flavor, Source: p.Source, Plan: p, CreatedAt: p.CreatedAt,
	}
	f.saved[ownerID] = stored
	f.byID[stored.ID] = stored
	return stored, nil
}

func (f *fakePlanStore) Get(_ context.Context, id string) (*store.StoredPlan, error) {
	if stored, ok := f.byID[id]; ok {
		return stored, nil
	}
	return nil, errors.NewPlanNotFoundError(id)
}

func (f *fakePlanStore) Latest(_ context.Context, ownerID string, flavor plan.PlanFlavor) (*store.StoredPlan, error) {
	if stored, ok := f.saved[ownerID]; ok && stored.Flavor == flavor {
		return stored, nil
	}
	return nil, errors.NewPlanNotFoundError(ownerID)
}

type fakeCache struct {
	entries map[string]*store.StoredPlan
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*store.StoredPlan{}}
}

func (f *fakeCache) SetLatest(_ context.Context, ownerID string, stored *store.StoredPlan) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[ownerID+":"+string(stored.Flavor)] = stored
	return nil
}

func (f *fakeCache) GetLatest(_ context.Context, ownerID string, flavor plan.PlanFlavor) (*store.StoredPlan, error) {
	return f.entries[ownerID+":"+string(flavor)], nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func generationResult(flavor plan.PlanFlavor) *plan.GenerationResult {
	p := &plan.GeneratedPlan{
		Name:   "Plan",
		Flavor: flavor,
		Days: []plan.PlanDay{
			{Name: "Day 1", Focus: "Full Body", Items: []plan.PlanItem{{Name: "Bodyweight Squats", Sets: 3, Reps: "12-15"}}},
		},
		Source:    plan.SourceModel,
		CreatedAt: time.Now().UTC(),
	}
	return &plan.GenerationResult{
		Plan:    p,
		Metrics: plan.DerivedMetrics{BMI: 27.7, BMICategory: plan.BMIOverweight, TargetCalories: 1777},
		Source:  plan.SourceModel, Attempts: 1,
	}
}

type serverFixture struct {
	server    *Server
	generator *fakeGenerator
	plans     *fakePlanStore
	cache     *fakeCache
}

func newTestServer(t *testing.T) *serverFixture {
	t.Helper()
	f := &serverFixture{
		generator: &fakeGenerator{result: generationResult(plan.FlavorWorkout)},
		plans:     newFakePlanStore(),
		cache:     newFakeCache(),
	}
	cfg := config.ServerConfig{Address: ":0", ReadTimeout: 15000, WriteTimeout: 120000, AllowedOrigins: []string{"*"}}
	f.server = New(cfg, f.generator, f.plans, f.cache, fakePinger{}, fakePinger{}, nil, logger.NewTestLogger(t))
	return f
}

func validBody() string {
	return `{
		"ownerId": "user-1",
		"biometrics": {"age": 25, "weightLbs": 176, "heightInches": 67, "sex": "male"},
		"activityLevel": "sedentary",
		"goal": "weight_loss",
		"fitnessLevel": "beginner",
		"daysPerWeek": 3
	}`
}

func doRequest(f *serverFixture, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)
	return rec
}

// ==========================================
// Generation Route Tests
// ==========================================

func TestHandleGenerateWorkout(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "plan-1", resp.PlanID)
	assert.Equal(t, plan.SourceModel, resp.Source)
	assert.Equal(t, 1, resp.Attempts)

	// Imperial units are converted before the engine sees them.
	assert.InDelta(t, 79.8, f.generator.lastRequest.Profile.WeightKg, 0.1)
	assert.InDelta(t, 170.2, f.generator.lastRequest.Profile.HeightCm, 0.1)
	assert.Equal(t, plan.FlavorWorkout, f.generator.lastRequest.Flavor)
	assert.Equal(t, 3, f.generator.lastRequest.DaysPerWeek)

	// The saved plan becomes the owner's cached latest.
	assert.NotNil(t, f.cache.entries["user-1:workout"])
}

func TestHandleGenerateMeal(t *testing.T) {
	f := newTestServer(t)
	f.generator.result = generationResult(plan.FlavorMeal)
	body := `{
		"ownerId": "user-1",
		"biometrics": {"age": 30, "weightKg": 65, "heightCm": 165, "sex": "female"},
		"activityLevel": "moderate",
		"goal": "maintenance",
		"mealsPerDay": 4
	}`

	rec := doRequest(f, http.MethodPost, "/api/plans/meal", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plan.FlavorMeal, f.generator.lastRequest.Flavor)
	assert.Equal(t, 4, f.generator.lastRequest.MealsPerDay)
	assert.Equal(t, 65.0, f.generator.lastRequest.Profile.WeightKg)
}

func TestHandleGenerate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		body          string
		errorContains []string
	}{
		{
			name:          "not json",
			path:          "/api/plans/workout",
			body:          "not json",
			errorContains: []string{"not valid JSON"},
		},
		{
			name: "multiple violations aggregated",
			path: "/api/plans/workout",
			body: `{
				"biometrics": {"age": -1},
				"activityLevel": "extreme",
				"goal": "get_swole",
				"daysPerWeek": 9
			}`,
			errorContains: []string{"age", "activityLevel", "goal", "daysPerWeek"},
		},
		{
			name: "missing weight and height reported together",
			path: "/api/plans/workout",
			body: `{
				"biometrics": {"age": 30, "sex": "male"},
				"activityLevel": "moderate",
				"goal": "maintenance",
				"daysPerWeek": 3
			}`,
			errorContains: []string{"biometrics.weightKg|weightLbs", "biometrics.heightCm|heightInches"},
		},
		{
			name: "meals per day out of range",
			path: "/api/plans/meal",
			body: `{
				"biometrics": {"age": 30},
				"activityLevel": "moderate",
				"goal": "maintenance",
				"mealsPerDay": 8
			}`,
			errorContains: []string{"mealsPerDay"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestServer(t)

			rec := doRequest(f, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, string(errors.ErrCodeInvalidInput), resp.Code)
			joined := strings.Join(resp.Errors, " | ")
			for _, fragment := range tt.errorContains {
				assert.Contains(t, joined, fragment)
			}
			// Validation failures never reach the engine.
			assert.Equal(t, orchestrator.Request{}, f.generator.lastRequest)
		})
	}
}

func TestHandleGenerate_SaveFailureStillReturnsPlan(t *testing.T) {
	f := newTestServer(t)
	f.plans.saveErr = errors.NewPersistenceFailedError(fmt.Errorf("db down"))

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.PlanID)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "Plan", resp.Plan.Name)
}

func TestHandleGenerate_AnonymousRequestSkipsPersistence(t *testing.T) {
	f := newTestServer(t)
	body := strings.Replace(validBody(), `"ownerId": "user-1",`, "", 1)

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.plans.byID)
	assert.Empty(t, f.cache.entries)
}

// ==========================================
// Read Route Tests
// ==========================================

func TestHandleGetPlan(t *testing.T) {
	f := newTestServer(t)
	doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	rec := doRequest(f, http.MethodGet, "/api/plans/plan-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stored store.StoredPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, "plan-1", stored.ID)
	assert.Equal(t, "user-1", stored.OwnerID)
}

func TestHandleGetPlan_NotFound(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(f, http.MethodGet, "/api/plans/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLatestPlan(t *testing.T) {
	f := newTestServer(t)
	doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	rec := doRequest(f, http.MethodGet, "/api/plans/latest?ownerId=user-1&flavor=workout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stored store.StoredPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, "plan-1", stored.ID)
}

func TestHandleLatestPlan_FillsCacheFromStore(t *testing.T) {
	f := newTestServer(t)
	doRequest(f, http.MethodPost, "/api/plans/workout", validBody())
	delete(f.cache.entries, "user-1:workout")

	rec := doRequest(f, http.MethodGet, "/api/plans/latest?ownerId=user-1&flavor=workout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, f.cache.entries["user-1:workout"])
}

func TestHandleLatestPlan_BadQuery(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(f, http.MethodGet, "/api/plans/latest?flavor=workout", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ==========================================
// Health Route Tests
// ==========================================

func TestHandleHealth(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(f, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
}

func TestHandleHealth_DependencyDown(t *testing.T) {
	f := newTestServer(t)
	cfg := config.ServerConfig{Address: ":0", ReadTimeout: 15000, WriteTimeout: 120000, AllowedOrigins: []string{"*"}}
	s := New(cfg, f.generator, f.plans, f.cache, fakePinger{err: fmt.Errorf("connection refused")}, fakePinger{}, nil, logger.NewNoOpLogger())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "ok", status["redis"])
}
