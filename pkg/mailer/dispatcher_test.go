package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeliverer struct {
	mu   sync.Mutex
	jobs []EmailJob
	err  error
}

func (d *recordingDeliverer) Deliver(_ context.Context, job EmailJob) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return d.err
}

func (d *recordingDeliverer) delivered() []EmailJob {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]EmailJob, len(d.jobs))
	copy(out, d.jobs)
	return out
}

func TestDispatcher_deliversFIFO(t *testing.T) {
	rec := &recordingDeliverer{}
	d := NewDispatcher(rec, 8, nil)

	d.Send("a@x.com", "first", "1")
	d.Send("b@x.com", "second", "2")
	d.Send("c@x.com", "third", "3")
	d.Close()

	jobs := rec.delivered()
	require.Len(t, jobs, 3)
	assert.Equal(t, "first", jobs[0].Subject)
	assert.Equal(t, "second", jobs[1].Subject)
	assert.Equal(t, "third", jobs[2].Subject)
}

func TestDispatcher_swallowsDeliveryFailures(t *testing.T) {
	rec := &recordingDeliverer{err: errors.New("smtp down")}
	d := NewDispatcher(rec, 8, nil)

	// Send must not surface the failure or panic.
	d.Send("a@x.com", "subject", "body")
	d.Close()

	require.Len(t, rec.delivered(), 1)
}

func TestDispatcher_closeDrainsQueue(t *testing.T) {
	rec := &recordingDeliverer{}
	d := NewDispatcher(rec, 64, nil)

	for i := 0; i < 50; i++ {
		d.Send("a@x.com", "s", "b")
	}
	d.Close()

	assert.Len(t, rec.delivered(), 50)
}

func TestDispatcher_closeIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingDeliverer{}, 1, nil)
	d.Close()
	d.Close()
}
