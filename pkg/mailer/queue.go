package mailer

import (
	"context"

	"github.com/minseop-dev/userboard/pkg/helpers"
)

// QueueDeliverer hands messages to RabbitMQ instead of delivering them
// itself; the email worker consumes the queue and talks to Mailgun. Used as
// the production Deliverer behind a Dispatcher.
type QueueDeliverer struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueDeliverer(pub *helpers.RabbitPublisher) *QueueDeliverer {
	return &QueueDeliverer{Pub: pub}
}

func (q *QueueDeliverer) Deliver(ctx context.Context, job EmailJob) error {
	return q.Pub.PublishJSON(ctx, job)
}

var _ Deliverer = (*QueueDeliverer)(nil)
