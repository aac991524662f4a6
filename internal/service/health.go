package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"talentops/internal/database"
)

const readinessPingTimeout = 2 * time.Second

var ErrNotStarted = errors.New("service is starting or shutting down")

// HealthService liveness 只看行程；readiness 另外要求啟動完成且儲存可連線
type HealthService struct {
	live   atomic.Bool
	ready  atomic.Bool
	pinger database.Pinger
}

func NewHealthService(repositories *database.Repositories) *HealthService {
	s := &HealthService{pinger: repositories.Pinger}
	s.live.Store(true)
	return s
}

// SetReady 啟動完成後打開，收到停止訊號時關閉
func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady(ctx context.Context) bool {
	return s.Readiness(ctx) == nil
}

// Readiness 回傳尚未就緒的原因
func (s *HealthService) Readiness(ctx context.Context) error {
	if !s.ready.Load() {
		return ErrNotStarted
	}
	if s.pinger == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, readinessPingTimeout)
	defer cancel()
	if err := s.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping: %w", err)
	}
	return nil
}
