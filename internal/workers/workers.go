package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background workers.
func NewWorkers(cfg config.Workers, repositories *store.Repositories, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.CredentialExpiryInterval > 0 {
		w.workers = append(w.workers, NewCredentialExpiryWorker(repositories.CredentialRepository, cfg, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
