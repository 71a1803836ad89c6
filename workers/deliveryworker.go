package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mrsingh-rishi/transcript-bot/model"
	"github.com/mrsingh-rishi/transcript-bot/queue"
)

// Handler processes one delivery job to completion.
type Handler interface {
	Handle(ctx context.Context, job model.DeliveryJob)
}

// DeliveryWorker drains the job queue one job at a time, so all messages of
// one request are delivered before the next request starts.
type DeliveryWorker struct {
	ctx     context.Context
	cancel  context.CancelFunc
	jobs    *queue.Queue[model.DeliveryJob]
	handler Handler
}

func NewDeliveryWorker(jobs *queue.Queue[model.DeliveryJob], handler Handler) (*DeliveryWorker, error) {
	// Params Validation
	if jobs == nil {
		return nil, fmt.Errorf("job queue is required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &DeliveryWorker{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    jobs,
		handler: handler,
	}, nil
}

// Start begins the worker's processing loop in its own goroutine.
func (w *DeliveryWorker) Start() {
	go w.process()
}

// process continuously polls the job queue and hands each job to the handler.
func (w *DeliveryWorker) process() {
	for {
		select {
		case <-w.ctx.Done():
			log.Println("DeliveryWorker: Shutting down")
			return
		default:
			job, ok := w.jobs.Dequeue()
			if !ok {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			log.Printf("DeliveryWorker: processing request %s for chat %d", job.RequestID, job.ChatID)
			w.handler.Handle(w.ctx, job)
		}
	}
}

// Stop terminates the processing loop.
func (w *DeliveryWorker) Stop() {
	w.cancel()
}
