package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/minseop-dev/userboard/internal/domain/entity"
)

// In-memory test doubles: ordered-insert collections keyed by id with
// linear scans for the alternate-key lookups.

type memAccountRepo struct {
	mu     sync.Mutex
	nextID int
	items  []entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{nextID: 1}
}

func (r *memAccountRepo) Save(_ context.Context, a *entity.Account) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = fmt.Sprintf("%d", r.nextID)
		r.nextID++
		r.items = append(r.items, *a)
		out := *a
		return &out, nil
	}
	for i := range r.items {
		if r.items[i].ID == a.ID {
			r.items[i] = *a
			out := *a
			return &out, nil
		}
	}
	r.items = append(r.items, *a)
	out := *a
	return &out, nil
}

func (r *memAccountRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) FindByEmailAndStatus(_ context.Context, email string, status entity.AccountStatus) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Email == email && r.items[i].Status == status {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) FindByIDAndStatus(_ context.Context, id string, status entity.AccountStatus) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].Status == status {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

type memPostRepo struct {
	mu     sync.Mutex
	nextID int
	items  []entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{nextID: 1}
}

func (r *memPostRepo) Save(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("%d", r.nextID)
		r.nextID++
		r.items = append(r.items, *p)
		out := *p
		return &out, nil
	}
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
			out := *p
			return &out, nil
		}
	}
	r.items = append(r.items, *p)
	out := *p
	return &out, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPostRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// fakeMailSender captures messages synchronously for exact assertions.
type fakeMailSender struct {
	mu   sync.Mutex
	sent []capturedMail
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeMailSender) Send(to, subject, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, capturedMail{To: to, Subject: subject, Body: body})
}

func (f *fakeMailSender) messages() []capturedMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]capturedMail, len(f.sent))
	copy(out, f.sent)
	return out
}

// fixedClock always reports the same instant.
type fixedClock struct {
	millis int64
}

func (c fixedClock) NowMillis() int64 { return c.millis }

// seqIDGen hands out predictable, distinct tokens.
type seqIDGen struct {
	mu   sync.Mutex
	next int
}

func (g *seqIDGen) Random() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("code-%d", g.next)
}
