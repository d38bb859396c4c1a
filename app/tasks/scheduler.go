package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/intentradar/intent-radar/app/cfg"
	"github.com/intentradar/intent-radar/app/config"
	"github.com/intentradar/intent-radar/app/feed"
	"github.com/intentradar/intent-radar/app/pipeline"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	watch       *config.WatchConfig
	fetcher     *feed.Fetcher
	pipeline    *pipeline.Pipeline
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(watch *config.WatchConfig, fetcher *feed.Fetcher, pipe *pipeline.Pipeline) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		watch:       watch,
		fetcher:     fetcher,
		pipeline:    pipe,
		interval:    time.Duration(cfg.SchedulerInterval) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		if err := s.EnqueueScanPass(); err != nil {
			slog.Warn("Failed to enqueue startup scan pass", "error", err)
		}

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if err := s.EnqueueScanPass(); err != nil {
					slog.Warn("Failed to enqueue scan pass", "error", err)
				}
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

// EnqueueScanPass queues one ScanCompanyTask per watched company.
func (s *Scheduler) EnqueueScanPass() error {
	slog.Debug("Enqueueing scan pass", "companies", len(s.watch.Companies))

	for _, company := range s.watch.Companies {
		task := NewScanCompanyTask(company, s.watch.FeedURL(company), s.fetcher, s.pipeline)
		if err := s.EnqueueTask(task); err != nil {
			return fmt.Errorf("failed to enqueue scan for %s: %w", company, err)
		}
	}

	return nil
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	// A failed scan is skipped; the next tick covers the company again.
	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Worker task execution failed",
			"worker_id", workerID,
			"type", string(task.GetType()),
			"id", task.GetID(),
			"company", task.GetCompany(),
			"error", err)
	}
}
