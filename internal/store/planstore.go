// internal/store/planstore.go

// Package store persists generated plans and caches the latest plan
// per owner. Persistence is best effort from the pipeline's point of
// view: a failed save is reported but never blocks plan delivery.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"fitplan-engine/internal/common/database"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/plan"
)

// StoredPlan is a persisted plan row.
type StoredPlan struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"ownerId"`
	Flavor    plan.PlanFlavor     `json:"flavor"`
	Source    plan.PlanSource     `json:"source"`
	Plan      *plan.GeneratedPlan `json:"plan"`
	CreatedAt time.Time           `json:"createdAt"`
}

const (
	insertPlanQuery = `INSERT INTO plans (id, owner_id, flavor, source, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	selectPlanQuery = `SELECT id, owner_id, flavor, source, payload, created_at
		FROM plans WHERE id = $1`
	selectLatestPlanQuery = `SELECT id, owner_id, flavor, source, payload, created_at
		FROM plans WHERE owner_id = $1 AND flavor = $2
		ORDER BY created_at DESC LIMIT 1`
)

// PlanStore writes plans to Postgres.
type PlanStore struct {
	db  *database.PostgresClient
	log logger.Logger
}

func NewPlanStore(db *database.PostgresClient, log logger.Logger) *PlanStore {
	return &PlanStore{db: db, log: log.WithFields(map[string]interface{}{"component": "planstore"})}
}

// Save persists a generated plan and returns its assigned id.
func (s *PlanStore) Save(ctx context.Context, ownerID string, p *plan.GeneratedPlan) (*StoredPlan, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, errors.NewPersistenceFailedError(err)
	}

	stored := &StoredPlan{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Flavor:    p.Flavor,
		Source:    p.Source,
		Plan:      p,
		CreatedAt: p.CreatedAt,
	}

	if _, err := s.db.Exec(ctx, insertPlanQuery,
		stored.ID, stored.OwnerID, string(stored.Flavor), string(stored.Source), payload, stored.CreatedAt); err != nil {
		s.log.Error("plan insert failed", map[string]interface{}{
			"ownerId": ownerID,
			"flavor":  string(p.Flavor),
			"error":   err.Error(),
		})
		return nil, errors.NewPersistenceFailedError(err)
	}

	return stored, nil
}

// Get loads a plan by id.
func (s *PlanStore) Get(ctx context.Context, id string) (*StoredPlan, error) {
	return s.scanOne(s.db.QueryRow(ctx, selectPlanQuery, id), id)
}

// Latest loads the most recent plan of a flavor for an owner.
func (s *PlanStore) Latest(ctx context.Context, ownerID string, flavor plan.PlanFlavor) (*StoredPlan, error) {
	return s.scanOne(s.db.QueryRow(ctx, selectLatestPlanQuery, ownerID, string(flavor)), ownerID)
}

func (s *PlanStore) scanOne(row *sql.Row, ref string) (*StoredPlan, error) {
	var (
		stored  StoredPlan
		flavor  string
		source  string
		payload []byte
	)
	if err := row.Scan(&stored.ID, &stored.OwnerID, &flavor, &source, &payload, &stored.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewPlanNotFoundError(ref)
		}
		return nil, errors.NewPersistenceFailedError(err)
	}

	stored.Flavor = plan.PlanFlavor(flavor)
	stored.Source = plan.PlanSource(source)
	if err := json.Unmarshal(payload, &stored.Plan); err != nil {
		return nil, errors.NewPersistenceFailedError(err)
	}
	return &stored, nil
}
