package queue

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"clubhub/internal/notification"
	"clubhub/internal/observability"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Processor processes notification jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	mailer       notification.Mailer
	logger       *logrus.Logger
	metrics      *observability.Metrics
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new notification job processor.
func NewProcessor(queue *MemoryQueue, mailer notification.Mailer, logger *logrus.Logger, metrics *observability.Metrics, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		mailer:      mailer,
		logger:      logger,
		metrics:     metrics,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.logger.Infof("notification processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	p.logger.Info("notification processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	p.logger.Debugf("worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				p.logger.Debugf("worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job NotificationJob) {
	p.logger.WithFields(logrus.Fields{
		"invitation": job.InvitationID.Hex(),
		"email":      job.Email,
		"attempt":    job.RetryCount + 1,
	}).Debug("delivering invitation email")

	err := p.mailer.SendInvitation(ctx, notification.InvitationEmail{
		To:      job.Email,
		OrgName: job.OrgName,
		Role:    string(job.Role),
		Token:   job.Token,
	})
	if err != nil {
		p.logger.WithError(err).WithField("invitation", job.InvitationID.Hex()).
			Warn("invitation email delivery failed")
		p.handleFailure(job)
		return
	}

	p.countOutcome("sent")
	p.logger.WithField("invitation", job.InvitationID.Hex()).Info("invitation email sent")
}

func (p *Processor) handleFailure(job NotificationJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Max retries reached, give up. The invitation itself stays valid;
		// the inviter can resend it from the pending list.
		p.countOutcome("failed")
		p.logger.WithField("invitation", job.InvitationID.Hex()).
			Error("max retries reached, giving up on invitation email")
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	p.logger.WithFields(logrus.Fields{
		"invitation": job.InvitationID.Hex(),
		"delay":      delay,
		"attempt":    job.RetryCount + 1,
	}).Infof("retrying invitation email in %v", delay)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			p.countOutcome("failed")
			p.logger.WithField("invitation", job.InvitationID.Hex()).
				Warn("shutdown during retry delay, dropping invitation email")
			return
		case <-time.After(delay):
			p.countOutcome("retried")
			if err := p.queue.Enqueue(job); err != nil {
				p.countOutcome("failed")
				p.logger.WithError(err).WithField("invitation", job.InvitationID.Hex()).
					Error("failed to re-enqueue invitation email")
			}
		}
	}()
}

func (p *Processor) countOutcome(outcome string) {
	if p.metrics == nil {
		return
	}
	p.metrics.NotificationsTotal.WithLabelValues(outcome).Inc()
}
