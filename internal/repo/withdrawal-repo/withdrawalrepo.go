package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
	"go.uber.org/zap"
)

// ErrOpenRequestExists is returned when the account already has a request in
// pending_review; enforced by the partial unique index, not a prior read.
var ErrOpenRequestExists = errors.New("open withdrawal request exists")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) error {
	query := `
        INSERT INTO withdrawal_requests (id, account_id, amount, account_name, bank_name, account_number, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING requested_at
    `
	err := r.db.QueryRow(ctx, query, req.ID, req.AccountID, req.Amount, req.AccountName, req.BankName, req.AccountNumber, req.Status).Scan(&req.RequestedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrOpenRequestExists
		}
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetOpenByAccount(ctx context.Context, accountID int64) (*domain.WithdrawalRequest, error) {
	query := selectQuery + `
        WHERE account_id = $1 AND status = $2
    `
	row := r.db.QueryRow(ctx, query, accountID, domain.PendingReviewWithdrawalStatus)
	return scanOne(row)
}

// LockByID reads the request FOR UPDATE; call inside a transaction. The lock
// is what makes two concurrent operator decisions resolve to one winner.
func (r *Repository) LockByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	query := selectQuery + `
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, requestID)
	return scanOne(row)
}

func (r *Repository) Decide(ctx context.Context, requestID, status string, operatorID int64, notes string, decidedAt time.Time) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, decided_by = $2, notes = $3, decided_at = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, status, operatorID, notes, decidedAt, requestID)
	if err != nil {
		zap.L().Error("failed to decide withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	query := selectQuery + `
        WHERE status = $1
        ORDER BY requested_at ASC
    `
	return r.list(ctx, query, domain.PendingReviewWithdrawalStatus)
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	query := selectQuery + `
        WHERE account_id = $1
        ORDER BY requested_at DESC
    `
	return r.list(ctx, query, accountID)
}

// ListUndelivered returns decided requests whose outcome has not yet been
// pushed to the messaging transport.
func (r *Repository) ListUndelivered(ctx context.Context, limit uint32) ([]domain.WithdrawalRequest, error) {
	query := selectQuery + `
        WHERE status IN ($1, $2) AND notified_at IS NULL
        ORDER BY decided_at ASC
        LIMIT $3
    `
	return r.list(ctx, query, domain.ApprovedWithdrawalStatus, domain.RejectedWithdrawalStatus, limit)
}

func (r *Repository) MarkNotified(ctx context.Context, requestID string, notifiedAt time.Time) error {
	query := `
        UPDATE withdrawal_requests
        SET notified_at = $1
        WHERE id = $2 AND notified_at IS NULL
    `
	_, err := r.db.Exec(ctx, query, notifiedAt, requestID)
	if err != nil {
		zap.L().Error("failed to mark withdrawal request notified", zap.Error(err))
		return err
	}
	return nil
}

const selectQuery = `
        SELECT id, account_id, amount, account_name, bank_name, account_number,
               status, notes, requested_at, decided_at, decided_by, notified_at
        FROM withdrawal_requests
`

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var req domain.WithdrawalRequest
		err := rows.Scan(&req.ID, &req.AccountID, &req.Amount, &req.AccountName, &req.BankName, &req.AccountNumber,
			&req.Status, &req.Notes, &req.RequestedAt, &req.DecidedAt, &req.DecidedBy, &req.NotifiedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func scanOne(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(&req.ID, &req.AccountID, &req.Amount, &req.AccountName, &req.BankName, &req.AccountNumber,
		&req.Status, &req.Notes, &req.RequestedAt, &req.DecidedAt, &req.DecidedBy, &req.NotifiedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}
