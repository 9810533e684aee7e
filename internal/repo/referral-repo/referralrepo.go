package referralrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts the relationship unless the referred account already has
// one. Returns true when a row was inserted. The uniqueness constraint on
// referred_id makes the duplicate check race-free.
func (r *Repository) Create(ctx context.Context, rel *domain.ReferralRelationship) (bool, error) {
	query := `
        INSERT INTO referrals (id, referrer_id, referred_id, status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (referred_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, rel.ID, rel.ReferrerID, rel.ReferredID, rel.Status)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetByReferred(ctx context.Context, referredID int64) (*domain.ReferralRelationship, error) {
	return r.findByReferred(ctx, referredID, false)
}

// LockByReferred reads the relationship FOR UPDATE; call inside a transaction.
func (r *Repository) LockByReferred(ctx context.Context, referredID int64) (*domain.ReferralRelationship, error) {
	return r.findByReferred(ctx, referredID, true)
}

func (r *Repository) findByReferred(ctx context.Context, referredID int64, lock bool) (*domain.ReferralRelationship, error) {
	query := `
        SELECT id, referrer_id, referred_id, status, plan, purchase_id, reward_amount, created_at, completed_at
        FROM referrals
        WHERE referred_id = $1
    `
	if lock {
		query += " FOR UPDATE"
	}
	row := r.db.QueryRow(ctx, query, referredID)
	var rel domain.ReferralRelationship
	err := row.Scan(&rel.ID, &rel.ReferrerID, &rel.ReferredID, &rel.Status, &rel.Plan, &rel.PurchaseID, &rel.RewardAmount, &rel.CreatedAt, &rel.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find referral", zap.Error(err))
		return nil, err
	}
	return &rel, nil
}

// Complete flips a pending relationship to completed. The WHERE clause on
// status makes the transition one-shot even under concurrent callers.
func (r *Repository) Complete(ctx context.Context, id, plan, purchaseID string, rewardAmount int64, completedAt time.Time) (bool, error) {
	query := `
        UPDATE referrals
        SET status = $1, plan = $2, purchase_id = $3, reward_amount = $4, completed_at = $5
        WHERE id = $6 AND status = $7
    `
	tag, err := r.db.Exec(ctx, query, domain.CompletedReferralStatus, plan, purchaseID, rewardAmount, completedAt, id, domain.PendingReferralStatus)
	if err != nil {
		zap.L().Error("failed to complete referral", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Stats(ctx context.Context, referrerID int64) (*domain.ReferralStats, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'completed'),
            COALESCE(SUM(reward_amount) FILTER (WHERE status = 'completed'), 0)
        FROM referrals
        WHERE referrer_id = $1
    `
	row := r.db.QueryRow(ctx, query, referrerID)
	var stats domain.ReferralStats
	err := row.Scan(&stats.Pending, &stats.Completed, &stats.TotalEarned)
	if err != nil {
		zap.L().Error("failed to fetch referral stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
