package repository

import (
	"context"
	"sync"
	"time"

	"opticai/internal/domain/orderform"
	"opticai/internal/usecase/interfaces"
)

const defaultDraftTTL = 2 * time.Hour

type draftEntry struct {
	draft     *orderform.Draft
	expiresAt time.Time
}

// DraftMemoryRepository keeps editing sessions in process memory. Drafts
// expire after ttl without a write; every read and write goes through a
// copy so callers never share a draft.
type DraftMemoryRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]draftEntry
}

var _ interfaces.IDraftRepository = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository(ttl time.Duration) *DraftMemoryRepository {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &DraftMemoryRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]draftEntry),
	}
}

func draftKey(tenantID, id string) string {
	return tenantID + "/" + id
}

func (r *DraftMemoryRepository) Save(_ context.Context, d *orderform.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[draftKey(d.TenantID, d.ID)] = draftEntry{
		draft:     d.Clone(),
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *DraftMemoryRepository) Get(_ context.Context, tenantID, id string) (*orderform.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := draftKey(tenantID, id)
	e, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.entries, key)
		return nil, nil
	}
	return e.draft.Clone(), nil
}

func (r *DraftMemoryRepository) Delete(_ context.Context, tenantID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, draftKey(tenantID, id))
	return nil
}

// Sweep drops every expired draft and reports how many were removed.
func (r *DraftMemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	n := 0
	for k, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, k)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done.
func (r *DraftMemoryRepository) RunJanitor(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep()
		}
	}
}
