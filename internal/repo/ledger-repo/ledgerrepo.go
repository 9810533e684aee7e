package ledgerrepo

import (
	"context"

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

func (r *Repository) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, balance, total_earned, referral_code, created_at, updated_at
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var account domain.Account
	err := row.Scan(&account.ID, &account.Balance, &account.TotalEarned, &account.ReferralCode, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetAccountByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
        SELECT id, balance, total_earned, referral_code, created_at, updated_at
        FROM accounts
        WHERE referral_code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var account domain.Account
	err := row.Scan(&account.ID, &account.Balance, &account.TotalEarned, &account.ReferralCode, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account by referral code", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// CreateAccount inserts an account with a zero balance. A concurrent insert
// of the same id is a no-op.
func (r *Repository) CreateAccount(ctx context.Context, accountID int64, referralCode string) error {
	query := `
        INSERT INTO accounts (id, balance, total_earned, referral_code)
        VALUES ($1, 0, 0, $2)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, accountID, referralCode)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return err
	}
	return nil
}

// LockAccount reads the account row FOR UPDATE. It must be called inside a
// transaction; the lock serializes all mutations of this account until commit.
func (r *Repository) LockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, balance, total_earned, referral_code, created_at, updated_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var account domain.Account
	err := row.Scan(&account.ID, &account.Balance, &account.TotalEarned, &account.ReferralCode, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindTransaction(ctx context.Context, kind, referenceID string) (*domain.LedgerTransaction, error) {
	query := `
        SELECT id, account_id, amount, kind, reference_id, created_at
        FROM ledger_transactions
        WHERE kind = $1 AND reference_id = $2
    `
	row := r.db.QueryRow(ctx, query, kind, referenceID)
	var txn domain.LedgerTransaction
	err := row.Scan(&txn.ID, &txn.AccountID, &txn.Amount, &txn.Kind, &txn.ReferenceID, &txn.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) GetTransaction(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error) {
	query := `
        SELECT id, account_id, amount, kind, reference_id, created_at
        FROM ledger_transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, transactionID)
	var txn domain.LedgerTransaction
	err := row.Scan(&txn.ID, &txn.AccountID, &txn.Amount, &txn.Kind, &txn.ReferenceID, &txn.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

// ApplyTransaction appends the transaction and rolls its amount into the
// account balance. total_earned grows only on credits. Both statements must
// run inside the transaction that holds the account lock.
func (r *Repository) ApplyTransaction(ctx context.Context, txn *domain.LedgerTransaction) error {
	insert := `
        INSERT INTO ledger_transactions (id, account_id, amount, kind, reference_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, insert, txn.ID, txn.AccountID, txn.Amount, txn.Kind, txn.ReferenceID).Scan(&txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger transaction", zap.Error(err))
		return err
	}

	update := `
        UPDATE accounts
        SET balance = balance + $1,
            total_earned = total_earned + GREATEST($1, 0),
            updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, update, txn.Amount, txn.AccountID); err != nil {
		zap.L().Error("failed to roll up account balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListTransactions(ctx context.Context, accountID int64) ([]domain.LedgerTransaction, error) {
	query := `
        SELECT id, account_id, amount, kind, reference_id, created_at
        FROM ledger_transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.LedgerTransaction
	for rows.Next() {
		var txn domain.LedgerTransaction
		err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Amount, &txn.Kind, &txn.ReferenceID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func (r *Repository) TopAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	query := `
        SELECT id, balance, total_earned, referral_code, created_at, updated_at
        FROM accounts
        WHERE total_earned > 0
        ORDER BY total_earned DESC, created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(&account.ID, &account.Balance, &account.TotalEarned, &account.ReferralCode, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}
