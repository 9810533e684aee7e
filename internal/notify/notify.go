package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/doculuna/wallet/internal/config"
	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var notifyingRequests sync.Map

// Notification is the payload pushed to the messaging transport when an
// operator decides a withdrawal request.
type Notification struct {
	RequestID string `json:"request_id"`
	AccountID int64  `json:"account_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

type Repo interface {
	ListUndelivered(ctx context.Context, limit uint32) ([]domain.WithdrawalRequest, error)
	MarkNotified(ctx context.Context, requestID string, notifiedAt time.Time) error
}

type Service struct {
	url            string
	withdrawalRepo Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, withdrawalRepo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.TransportAddress,
		withdrawalRepo: withdrawalRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notification service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processRequests(ctx)
		}
	}
}

func (s *Service) processRequests(ctx context.Context) {
	requests, err := s.withdrawalRepo.ListUndelivered(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch undelivered requests", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range requests {
		req := req

		if _, loaded := notifyingRequests.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer notifyingRequests.Delete(req.ID)
				return s.handleRequest(ctx, req)
			})
			if err != nil {
				notifyingRequests.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error delivering notifications", zap.Error(err))
	}
}

func (s *Service) handleRequest(ctx context.Context, req domain.WithdrawalRequest) error {
	body, err := json.Marshal(Notification{
		RequestID: req.ID,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification for request %s: %w", req.ID, err)
	}

	url := s.url + "/api/notify/withdrawal"
	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, respHeaders, err := s.client.Post(url, body, headers)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to deliver notification for request %s after %d retries: %w", req.ID, maxRetries, err)
			}

			switch {
			case statusCode == http.StatusTooManyRequests:
				s.waitRateLimit(req, respHeaders, attempt)

			case statusCode >= 200 && statusCode < 300:
				if err := s.withdrawalRepo.MarkNotified(ctx, req.ID, time.Now()); err != nil {
					return fmt.Errorf("failed to mark request %s notified: %w", req.ID, err)
				}
				return nil

			default:
				zap.L().Error("Unexpected status code from transport", zap.Int("status", statusCode), zap.String("requestID", req.ID))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("transport rejected notification for request %s with status %d", req.ID, statusCode)
			}
		}
	}
	return nil
}

func (s *Service) waitRateLimit(req domain.WithdrawalRequest, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("requestID", req.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
