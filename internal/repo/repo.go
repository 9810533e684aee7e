package repo

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/doculuna/wallet/internal/pg"
	cacherepo "github.com/doculuna/wallet/internal/repo/cache-repo"
	dialogrepo "github.com/doculuna/wallet/internal/repo/dialog-repo"
	ledgerrepo "github.com/doculuna/wallet/internal/repo/ledger-repo"
	referralrepo "github.com/doculuna/wallet/internal/repo/referral-repo"
	withdrawalrepo "github.com/doculuna/wallet/internal/repo/withdrawal-repo"
)

type Repositories struct {
	LedgerRepo     *ledgerrepo.Repository
	ReferralRepo   *referralrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	DialogRepo     *dialogrepo.Repository
	CacheRepo      *cacherepo.Repository
}

func New(conn pg.Database, rdb redis.UniversalClient, dialogTTL time.Duration) *Repositories {
	ledgerRepo := ledgerrepo.New(conn)
	referralRepo := referralrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)
	dialogRepo := dialogrepo.New(rdb, dialogTTL)
	cacheRepo := cacherepo.New(rdb)

	return &Repositories{
		LedgerRepo:     ledgerRepo,
		ReferralRepo:   referralRepo,
		WithdrawalRepo: withdrawalRepo,
		DialogRepo:     dialogRepo,
		CacheRepo:      cacheRepo,
	}
}
