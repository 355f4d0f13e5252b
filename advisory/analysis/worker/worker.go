package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/analysis/analysissrv"
	"github.com/Abraxas-365/ascent/pkg/logx"
)

type AnalysisWorker struct {
	service *analysissrv.AnalysisService
	queue   analysis.JobQueue
	workers int
}

func NewAnalysisWorker(service *analysissrv.AnalysisService, queue analysis.JobQueue, workers int) *AnalysisWorker {
	if workers <= 0 {
		workers = 1
	}
	return &AnalysisWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *AnalysisWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d analysis workers", w.workers)

	go w.moveDelayedJobs(ctx)

	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *AnalysisWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Analysis worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Analysis worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Nil data means the blocking pop timed out.
			if len(data) == 0 {
				continue
			}

			var payload analysis.QueuePayload
			if err := json.Unmarshal(data, &payload); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Worker %d processing analysis job: %s", workerID, payload.JobID)
			if err := w.service.ProcessJob(ctx, payload); err != nil {
				logx.Errorf("Worker %d job %s failed: %v", workerID, payload.JobID, err)
			}
		}
	}
}

func (w *AnalysisWorker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed analysis jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed analysis jobs to ready queue", count)
			}
		}
	}
}
