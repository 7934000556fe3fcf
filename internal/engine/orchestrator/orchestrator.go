// internal/engine/orchestrator/orchestrator.go

// Package orchestrator runs the generation pipeline: derive metrics,
// try the model with degrading retries, validate each completion, and
// fall back to the deterministic builder when the attempts are spent.
// Generation never fails for model-side reasons; only invalid input
// or a broken catalog surface as errors.
package orchestrator

import (
	"context"
	"math"
	"time"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
	prommetrics "fitplan-engine/internal/common/metrics"
	"fitplan-engine/internal/engine/builder"
	enginemetrics "fitplan-engine/internal/engine/metrics"
	"fitplan-engine/internal/engine/validator"
	"fitplan-engine/internal/genai"
	"fitplan-engine/internal/plan"
)

// retryBaseTemperature is where the degraded attempts start; each
// further retry steps down by the configured temperature step.
const retryBaseTemperature = 0.4

// Request is a validated generation request. DaysPerWeek only applies
// to workout plans; meal plans span the configured week with
// MealsPerDay meals each day.
type Request struct {
	Profile     plan.BiometricProfile
	Flavor      plan.PlanFlavor
	DaysPerWeek int
	MealsPerDay int
}

type Orchestrator struct {
	genaiCfg  config.GenAIConfig
	genCfg    config.GenerationConfig
	client    genai.Client
	validator *validator.Validator
	builder   *builder.Builder
	log       logger.Logger
}

func New(genaiCfg config.GenAIConfig, genCfg config.GenerationConfig, client genai.Client, v *validator.Validator, b *builder.Builder, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		genaiCfg:  genaiCfg,
		genCfg:    genCfg,
		client:    client,
		validator: v,
		builder:   b,
		log:       log.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// Generate produces a plan for the request. The model is consulted
// first; every attempt failure is absorbed and the deterministic
// builder guarantees a result. Attempts in the result counts model
// calls made, zero when the context was already done.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*plan.GenerationResult, error) {
	start := time.Now()
	prommetrics.GenerationRequests.WithLabelValues(string(req.Flavor)).Inc()

	metrics, err := enginemetrics.Compute(req.Profile)
	if err != nil {
		return nil, err
	}

	days, minItems := o.shapeFor(req)
	shape := validator.Shape{Flavor: req.Flavor, ExpectedDays: days, MinItemsPerDay: minItems}

	attempts := 0
	for attempt := 0; attempt <= o.genCfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			o.log.Warn("context done, skipping remaining model attempts", map[string]interface{}{
				"flavor":   string(req.Flavor),
				"attempts": attempts,
			})
			break
		}
		attempts++

		p, attemptErr := o.tryModel(ctx, req, metrics, shape, attempt)
		if attemptErr != nil {
			prommetrics.ModelAttemptFailures.WithLabelValues(string(req.Flavor), string(errors.CodeOf(attemptErr))).Inc()
			o.log.Warn("model attempt failed", map[string]interface{}{
				"flavor":  string(req.Flavor),
				"attempt": attempt,
				"error":   attemptErr.Error(),
			})
			continue
		}

		o.observe(req.Flavor, plan.SourceModel, start)
		return &plan.GenerationResult{Plan: p, Metrics: metrics, Source: plan.SourceModel, Attempts: attempts}, nil
	}

	p := o.buildFallback(req, metrics, days)
	o.log.Info("serving fallback plan", map[string]interface{}{
		"flavor":   string(req.Flavor),
		"attempts": attempts,
	})
	o.observe(req.Flavor, plan.SourceFallback, start)
	return &plan.GenerationResult{Plan: p, Metrics: metrics, Source: plan.SourceFallback, Attempts: attempts}, nil
}

// tryModel runs one complete-and-validate cycle.
func (o *Orchestrator) tryModel(ctx context.Context, req Request, metrics plan.DerivedMetrics, shape validator.Shape, attempt int) (*plan.GeneratedPlan, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, config.GetDuration(o.genaiCfg.Timeout))
	defer cancel()

	raw, err := o.client.Complete(attemptCtx, o.requestFor(req, metrics, shape, attempt))
	if err != nil {
		return nil, err
	}

	mp, result := o.validator.Validate(raw, shape)
	if !result.Valid {
		return nil, errors.NewModelResponseInvalidError(attempt, result.Errors)
	}

	p := &plan.GeneratedPlan{
		Name:        mp.Name,
		Description: mp.Description,
		Flavor:      req.Flavor,
		Days:        mp.ToPlanDays(),
		Metrics:     metrics,
		Source:      plan.SourceModel,
		CreatedAt:   time.Now().UTC(),
	}
	return p, nil
}

// requestFor maps an attempt number onto its model, budget and prompt.
// Attempt zero uses the primary model with the detailed prompt; every
// retry drops to the cheaper model, a simplified prompt and a cooling
// temperature. Each prompt is built fresh, attempts never share state.
func (o *Orchestrator) requestFor(req Request, metrics plan.DerivedMetrics, shape validator.Shape, attempt int) genai.Request {
	if attempt == 0 {
		return genai.Request{
			Model:       o.genaiCfg.PrimaryModel,
			System:      systemPrompt,
			User:        buildDetailedPrompt(req.Profile, metrics, req.Flavor, shape.ExpectedDays, shape.MinItemsPerDay),
			Temperature: o.genaiCfg.Temperature,
			MaxTokens:   o.genaiCfg.MaxTokens,
			Attempt:     attempt,
		}
	}
	return genai.Request{
		Model:       o.genaiCfg.RetryModel,
		System:      systemPrompt,
		User:        buildSimplifiedPrompt(req.Profile, metrics, req.Flavor, shape.ExpectedDays, shape.MinItemsPerDay),
		Temperature: math.Max(0, retryBaseTemperature-o.genaiCfg.TemperatureStep*float64(attempt-1)),
		MaxTokens:   o.genaiCfg.RetryTokens,
		Attempt:     attempt,
	}
}

func (o *Orchestrator) buildFallback(req Request, metrics plan.DerivedMetrics, days int) *plan.GeneratedPlan {
	if req.Flavor == plan.FlavorMeal {
		return o.builder.BuildMeal(req.Profile, metrics, days, o.mealsPerDay(req))
	}
	return o.builder.BuildWorkout(req.Profile, metrics, days, o.genCfg.MinExercisesPerDay)
}

func (o *Orchestrator) shapeFor(req Request) (days, minItems int) {
	if req.Flavor == plan.FlavorMeal {
		return o.genCfg.MealPlanDays, o.mealsPerDay(req)
	}
	return req.DaysPerWeek, o.genCfg.MinExercisesPerDay
}

func (o *Orchestrator) mealsPerDay(req Request) int {
	if req.MealsPerDay > 0 {
		return req.MealsPerDay
	}
	return o.genCfg.MinMealsPerDay
}

func (o *Orchestrator) observe(flavor plan.PlanFlavor, source plan.PlanSource, start time.Time) {
	prommetrics.GenerationOutcomes.WithLabelValues(string(flavor), string(source)).Inc()
	prommetrics.GenerationDuration.WithLabelValues(string(flavor), string(source)).Observe(time.Since(start).Seconds())
}
