package service

import (
	"github.com/doculuna/wallet/internal/handlers/dialog"
	"github.com/doculuna/wallet/internal/handlers/events"
	"github.com/doculuna/wallet/internal/handlers/operator"
	"github.com/doculuna/wallet/internal/handlers/wallet"

	"github.com/doculuna/wallet/internal/config"
	"github.com/doculuna/wallet/internal/pg"
	"github.com/doculuna/wallet/internal/repo"
	"github.com/doculuna/wallet/internal/service/approvalservice"
	"github.com/doculuna/wallet/internal/service/ledgerservice"
	"github.com/doculuna/wallet/internal/service/queryservice"
	"github.com/doculuna/wallet/internal/service/referralservice"
	"github.com/doculuna/wallet/internal/service/withdrawalservice"
)

type Services struct {
	LedgerService     *ledgerservice.Service
	ReferralService   events.Service
	WithdrawalService dialog.Service
	ApprovalService   operator.Service
	QueryService      wallet.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager)
	referralService := referralservice.New(repo.ReferralRepo, repo.LedgerRepo, ledgerService, cfg, txManager)
	withdrawalService := withdrawalservice.New(repo.DialogRepo, repo.WithdrawalRepo, ledgerService, cfg.MinWithdrawal)
	approvalService := approvalservice.New(repo.WithdrawalRepo, ledgerService, txManager)
	queryService := queryservice.New(ledgerService, repo.LedgerRepo, repo.ReferralRepo, repo.WithdrawalRepo, repo.CacheRepo)

	return &Services{
		LedgerService:     ledgerService,
		ReferralService:   referralService,
		WithdrawalService: withdrawalService,
		ApprovalService:   approvalService,
		QueryService:      queryService,
	}
}
