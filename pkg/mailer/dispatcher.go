package mailer

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/internal/domain/port"
)

// Deliverer performs the actual delivery of one message.
type Deliverer interface {
	Deliver(ctx context.Context, job EmailJob) error
}

// Dispatcher queues messages onto a single sequential worker so callers
// return without waiting for delivery. Messages are delivered FIFO per
// process. Delivery failures are logged and dropped; there is no retry and
// no receipt back to the caller.
//
// The queue is bounded; when full, Send blocks until the worker drains a
// slot rather than dropping the message.
type Dispatcher struct {
	deliverer Deliverer
	logger    *logrus.Logger
	jobs      chan EmailJob
	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(d Deliverer, queueSize int, logger *logrus.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	disp := &Dispatcher{
		deliverer: d,
		logger:    logger,
		jobs:      make(chan EmailJob, queueSize),
		done:      make(chan struct{}),
	}
	go disp.work()
	return disp
}

// Send enqueues a message and returns immediately (or blocks briefly when
// the queue is full). The send outcome is never reported to the caller.
func (d *Dispatcher) Send(to, subject, body string) {
	d.jobs <- EmailJob{To: to, Subject: subject, Body: body}
}

func (d *Dispatcher) work() {
	defer close(d.done)
	for job := range d.jobs {
		if err := d.deliverer.Deliver(context.Background(), job); err != nil && d.logger != nil {
			d.logger.WithError(err).WithField("to", job.To).Warn("mail delivery failed")
		}
	}
}

// Close stops accepting new messages and waits for the worker to drain the
// queue.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
		<-d.done
	})
}

var _ port.MailSender = (*Dispatcher)(nil)
