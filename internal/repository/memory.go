package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/arcuspath/backend/internal/cursor"
	"github.com/arcuspath/backend/model"
)

// MemoryProviderRepo is an in-memory ProviderRepository used by tests and by
// the seed-only development mode. Reads hand out copies so callers can never
// mutate the stored snapshot.
type MemoryProviderRepo struct {
	mu        sync.RWMutex
	providers map[string]model.Provider
}

func NewMemoryProviderRepo(seed []model.Provider) *MemoryProviderRepo {
	m := &MemoryProviderRepo{providers: make(map[string]model.Provider, len(seed))}
	for _, p := range seed {
		m.providers[p.ID] = p
	}
	return m
}

func (m *MemoryProviderRepo) FindAllActive(_ context.Context) ([]model.Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Provider, 0, len(m.providers))
	for _, p := range m.providers {
		if p.Status == model.StatusActive {
			out = append(out, p)
		}
	}
	// map iteration order is random; fix insertion-independent order by id
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryProviderRepo) FindByID(_ context.Context, id string) (*model.Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.providers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *MemoryProviderRepo) FindByOwner(_ context.Context, ownerUserID string) ([]model.Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Provider
	for _, p := range m.providers {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryProviderRepo) Create(_ context.Context, p *model.Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[p.ID] = *p
	return nil
}

func (m *MemoryProviderRepo) Update(_ context.Context, p *model.Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.providers[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	m.providers[p.ID] = *p
	return nil
}

func (m *MemoryProviderRepo) ListByStatus(_ context.Context, status model.ProviderStatus, limit int64, cur string) ([]model.Provider, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	m.mu.RLock()
	var all []model.Provider
	for _, p := range m.providers {
		if p.Status == status {
			all = append(all, p)
		}
	}
	m.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if cur != "" {
		if t, id, err := cursor.DecodeQueueCursor(cur); err == nil {
			i := sort.Search(len(all), func(i int) bool {
				if !all[i].CreatedAt.Equal(t) {
					return all[i].CreatedAt.After(t)
				}
				return all[i].ID > id
			})
			all = all[i:]
		}
	}

	var next string
	if int64(len(all)) > limit {
		all = all[:limit]
		last := all[len(all)-1]
		next = cursor.EncodeQueueCursor(last.CreatedAt, last.ID)
	}
	return all, next, nil
}

type MemoryVouchRepo struct {
	mu      sync.RWMutex
	vouches map[string]model.Vouch
}

func NewMemoryVouchRepo() *MemoryVouchRepo {
	return &MemoryVouchRepo{vouches: make(map[string]model.Vouch)}
}

func (m *MemoryVouchRepo) Create(_ context.Context, v *model.Vouch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vouches[v.ID] = *v
	return nil
}

func (m *MemoryVouchRepo) FindByProviderAndUser(_ context.Context, providerID, userID string) (*model.Vouch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.vouches {
		if v.ProviderID == providerID && v.UserID == userID {
			cp := v
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryVouchRepo) CountActiveByProvider(_ context.Context, providerID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, v := range m.vouches {
		if v.ProviderID == providerID && v.Active {
			n++
		}
	}
	return n, nil
}

func (m *MemoryVouchRepo) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vouches[id]
	if !ok {
		return ErrNotFound
	}
	v.Active = false
	m.vouches[id] = v
	return nil
}

type MemoryReferralRepo struct {
	mu    sync.RWMutex
	codes map[string]model.ReferralCode // keyed by code
	uses  []model.ReferralUse
}

func NewMemoryReferralRepo() *MemoryReferralRepo {
	return &MemoryReferralRepo{codes: make(map[string]model.ReferralCode)}
}

func (m *MemoryReferralRepo) CreateCode(_ context.Context, c *model.ReferralCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[c.Code] = *c
	return nil
}

func (m *MemoryReferralRepo) FindCodeByOwner(_ context.Context, ownerID string) (*model.ReferralCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.codes {
		if c.OwnerID == ownerID {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryReferralRepo) FindCode(_ context.Context, code string) (*model.ReferralCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.codes[code]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (m *MemoryReferralRepo) RecordUse(_ context.Context, u *model.ReferralUse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uses = append(m.uses, *u)
	return nil
}

func (m *MemoryReferralRepo) FindUseByReferee(_ context.Context, refereeID string) (*model.ReferralUse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.uses {
		if u.RefereeID == refereeID {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryReferralRepo) StatsForCode(_ context.Context, code string) (int, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total, converted := 0, 0
	for _, u := range m.uses {
		if u.Code == code {
			total++
			if u.Converted {
				converted++
			}
		}
	}
	return total, converted, nil
}

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepo(seed []model.User) *MemoryUserRepo {
	m := &MemoryUserRepo{users: make(map[string]model.User, len(seed))}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *MemoryUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryUserRepo) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}
