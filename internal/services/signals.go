package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/config"
)

// SignalStore holds the simulated competitor price window and ad intensity
// per area. Advance must be atomic per area: concurrent callers never lose
// an update and the window never changes length.
type SignalStore interface {
	History(ctx context.Context, code string) ([]int, error)
	AdIntensity(ctx context.Context, code string) (int, error)
	// Advance appends price, drops the oldest entry and returns the window
	// before and after the shift.
	Advance(ctx context.Context, code string, price int) (prev []int, next []int, err error)
	Backend() string
}

type MemorySignals struct {
	areas map[string]*areaSignals
}

type areaSignals struct {
	mu      sync.Mutex
	history []int
	ad      int
}

// NewSignalStore uses Redis when a URL is configured and reachable and
// otherwise keeps signals in process memory.
func NewSignalStore(ctx context.Context, cfg config.RedisConfig, cat *Catalog, rnd analytics.Rand, log *zap.Logger) SignalStore {
	if cfg.URL == "" {
		return NewMemorySignals(cat, rnd)
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Warn("invalid redis url, using in-memory signals", zap.Error(err))
		return NewMemorySignals(cat, rnd)
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, using in-memory signals", zap.Error(err))
		_ = client.Close()
		return NewMemorySignals(cat, rnd)
	}
	store, err := NewRedisSignals(ctx, client, cfg.KeyPrefix, cat, rnd)
	if err != nil {
		log.Warn("redis seeding failed, using in-memory signals", zap.Error(err))
		_ = client.Close()
		return NewMemorySignals(cat, rnd)
	}
	log.Info("signals backed by redis", zap.String("addr", opt.Addr))
	return store
}

func NewMemorySignals(cat *Catalog, rnd analytics.Rand) *MemorySignals {
	m := &MemorySignals{areas: make(map[string]*areaSignals, cat.Len())}
	for _, code := range cat.Codes() {
		rec, _ := cat.Get(code)
		m.areas[code] = &areaSignals{
			history: analytics.SeedHistory(rec.Metrics.HourlyRate, rnd),
			ad:      analytics.SeedAdIntensity(rnd),
		}
	}
	return m
}

func (m *MemorySignals) get(code string) (*areaSignals, error) {
	s, ok := m.areas[code]
	if !ok {
		return nil, errAreaNotFound(code)
	}
	return s, nil
}

func (m *MemorySignals) History(_ context.Context, code string) ([]int, error) {
	s, err := m.get(code)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (m *MemorySignals) AdIntensity(_ context.Context, code string) (int, error) {
	s, err := m.get(code)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ad, nil
}

func (m *MemorySignals) Advance(_ context.Context, code string, price int) ([]int, []int, error) {
	s, err := m.get(code)
	if err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.history
	next := analytics.ShiftWindow(prev, price)
	s.history = next
	out := make([]int, len(next))
	copy(out, next)
	return prev, out, nil
}

func (m *MemorySignals) Backend() string { return "memory" }
