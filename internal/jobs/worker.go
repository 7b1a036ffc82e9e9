package jobs

import (
	"context"
	"log"
	"time"
)

// JobProcessor runs one background pass.
type JobProcessor interface {
	ProcessJobs(ctx context.Context) error
}

// Worker drives a JobProcessor on a fixed interval. It runs one pass
// immediately on start so the embedding cache is warm before the first
// request arrives, then keeps re-running to pick up credential changes.
type Worker struct {
	processor JobProcessor
	interval  time.Duration
	stopChan  chan struct{}
	doneChan  chan struct{}
}

func NewWorker(processor JobProcessor, interval time.Duration) *Worker {
	return &Worker{
		processor: processor,
		interval:  interval,
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
}

// Start blocks until the context is cancelled or Stop is called. A failing
// pass is logged and retried on the next tick.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.doneChan)

	log.Printf("warm worker started, interval %v", w.interval)

	w.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Println("warm worker stopped: context cancelled")
			return
		case <-w.stopChan:
			log.Println("warm worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	if err := w.processor.ProcessJobs(ctx); err != nil {
		log.Printf("warm pass failed: %v", err)
	}
}

// Stop signals the worker and waits for the current pass to finish.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
}
