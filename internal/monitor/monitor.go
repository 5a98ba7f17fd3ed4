package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/internal/filetree"
	"github.com/relatecrm/backend/repository"
)

// Monitor periodically samples store sizes and file-tree availability so the
// health endpoint answers from a cached snapshot instead of walking the
// store on every probe.
type Monitor struct {
	store    repository.EntityStore
	filetree *filetree.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store repository.EntityStore, ft *filetree.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		filetree: ft,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Entities:  m.countRecords(),
		FileTree:  m.filetree.Available(),
		LastCheck: time.Now(),
	}
	for _, count := range status.Entities {
		status.TotalRecords += count
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) countRecords() map[string]int {
	counts := make(map[string]int)
	if m.store == nil {
		return counts
	}
	for _, entity := range m.store.Entities() {
		result, err := m.store.List(entity, domain.ListOptions{Limit: 1})
		if err != nil {
			m.logger.Warn("record count failed", zap.String("entity", entity), zap.Error(err))
			continue
		}
		counts[entity] = result.Total
	}
	return counts
}
