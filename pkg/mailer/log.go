package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogDeliverer records messages to the log instead of sending them. Used
// when mail sending is disabled in development.
type LogDeliverer struct {
	Logger *logrus.Logger
}

func (d *LogDeliverer) Deliver(_ context.Context, job EmailJob) error {
	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{
			"to":      job.To,
			"subject": job.Subject,
		}).Info("mail sending disabled; dropping message")
	}
	return nil
}

var _ Deliverer = (*LogDeliverer)(nil)
