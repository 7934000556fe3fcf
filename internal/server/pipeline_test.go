// internal/server/pipeline_test.go

// Full-pipeline tests: real orchestrator, validator, builder, and
// catalog behind the HTTP surface, with only the generative client and
// the persistence layer faked.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/engine/builder"
	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/engine/orchestrator"
	"fitplan-engine/internal/engine/validator"
	"fitplan-engine/internal/genai"
	"fitplan-engine/internal/plan"
)

type scriptedClient struct {
	completions []string
	err         error
	calls       int
}

func (c *scriptedClient) Complete(_ context.Context, _ genai.Request) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	i := c.calls - 1
	if i >= len(c.completions) {
		i = len(c.completions) - 1
	}
	return c.completions[i], nil
}

func newPipelineServer(t *testing.T, client genai.Client) *serverFixture {
	t.Helper()
	log := logger.NewTestLogger(t)

	genaiCfg := config.GenAIConfig{
		BaseURL: "http://genai.local", PrimaryModel: "gpt-4o", RetryModel: "gpt-4o-mini",
		Timeout: 5000, MaxTokens: 4096, RetryTokens: 2048,
		Temperature: 0.7, TemperatureStep: 0.2,
	}
	genCfg := config.GenerationConfig{MaxRetries: 2, MinExercisesPerDay: 4, MinMealsPerDay: 3, MealPlanDays: 7}

	b := builder.New(catalog.Builtin(), log, rand.New(rand.NewSource(7)))
	gen := orchestrator.New(genaiCfg, genCfg, client, validator.New(log), b, log)

	f := &serverFixture{plans: newFakePlanStore(), cache: newFakeCache()}
	cfg := config.ServerConfig{Address: ":0", ReadTimeout: 15000, WriteTimeout: 120000, AllowedOrigins: []string{"*"}}
	f.server = New(cfg, gen, f.plans, f.cache, fakePinger{}, fakePinger{}, nil, log)
	return f
}

func modelWorkoutCompletion(days int) string {
	var sb strings.Builder
	sb.WriteString(`{"name":"Coached Plan","description":"Model-written plan","days":[`)
	for d := 0; d < days; d++ {
		if d > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"name":"Day %d","focus":"Full Body","items":[`, d+1)
		for i := 0; i < 4; i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, `{"name":"Exercise %d","sets":3,"reps":"10-12"}`, i+1)
		}
		sb.WriteString(`],"warmup":["Light cardio"],"cooldown":["Stretch"]}`)
	}
	sb.WriteString("]}")
	return sb.String()
}

func TestPipeline_ModelPlanServedEndToEnd(t *testing.T) {
	client := &scriptedClient{completions: []string{modelWorkoutCompletion(3)}}
	f := newPipelineServer(t, client)

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, plan.SourceModel, resp.Source)
	assert.Equal(t, 1, resp.Attempts)
	assert.Equal(t, 1, client.calls)
	require.Len(t, resp.Plan.Days, 3)
	assert.InDelta(t, 27.7, resp.DerivedMetrics.BMI, 0.1)
	assert.Equal(t, plan.BMIOverweight, resp.DerivedMetrics.BMICategory)
	assert.Equal(t, "plan-1", resp.PlanID)
}

func TestPipeline_MalformedCompletionsFallBackToCatalog(t *testing.T) {
	client := &scriptedClient{completions: []string{"I am not JSON"}}
	f := newPipelineServer(t, client)

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, plan.SourceFallback, resp.Source)
	assert.Equal(t, 3, resp.Attempts)
	assert.Equal(t, 3, client.calls)

	// Fallback plans are complete: every day filled from the catalog,
	// with warmup and cooldown blocks attached.
	require.Len(t, resp.Plan.Days, 3)
	for _, day := range resp.Plan.Days {
		assert.GreaterOrEqual(t, len(day.Items), 4)
		assert.NotEmpty(t, day.Warmup.Items)
		assert.NotEmpty(t, day.Cooldown.Items)
	}
}

func TestPipeline_BeginnerOverweightFallbackIsLowImpact(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("connection refused")}
	f := newPipelineServer(t, client)

	rec := doRequest(f, http.MethodPost, "/api/plans/workout", validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, plan.SourceFallback, resp.Source)

	cat := catalog.Builtin()
	for _, day := range resp.Plan.Days {
		for _, item := range day.Items {
			_, substitutable := cat.SubstituteFor(plan.BMIOverweight, item.Name)
			assert.False(t, substitutable, "high-impact exercise %q survived substitution", item.Name)
		}
	}
}

func TestPipeline_MealFallbackCoversWeek(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("connection refused")}
	f := newPipelineServer(t, client)
	body := `{
		"ownerId": "user-1",
		"biometrics": {"age": 30, "weightKg": 65, "heightCm": 165, "sex": "female"},
		"activityLevel": "moderate",
		"goal": "maintenance",
		"mealsPerDay": 4
	}`

	rec := doRequest(f, http.MethodPost, "/api/plans/meal", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, plan.SourceFallback, resp.Source)
	require.Len(t, resp.Plan.Days, 7)
	for _, day := range resp.Plan.Days {
		assert.Len(t, day.Items, 4)
		assert.NotEmpty(t, day.Snacks.Items)
		assert.NotEmpty(t, day.Hydration.Items)
	}
}

func TestPipeline_GeneratedPlanRetrievableByID(t *testing.T) {
	client := &scriptedClient{completions: []string{modelWorkoutCompletion(3)}}
	f := newPipelineServer(t, client)

	doRequest(f, http.MethodPost, "/api/plans/workout", validBody())
	rec := doRequest(f, http.MethodGet, "/api/plans/plan-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(f, http.MethodGet, "/api/plans/latest?ownerId=user-1&flavor=workout", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
