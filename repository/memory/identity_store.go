package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/esports-tournament/model"
	"github.com/muhammadheryan/esports-tournament/repository/identity"
)

// IdentityStore keeps identities in process memory, keyed by phone.
type IdentityStore struct {
	identities map[string]*model.IdentityEntity
	mu         sync.RWMutex
	now        func() time.Time
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		identities: make(map[string]*model.IdentityEntity),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ identity.IdentityRepository = (*IdentityStore)(nil)

func (s *IdentityStore) Get(_ context.Context, phone string) (*model.IdentityEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.identities[phone]
	if !ok {
		return nil, nil
	}
	return cloneIdentity(e), nil
}

func (s *IdentityStore) UpsertCredential(_ context.Context, cred *model.CredentialUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.identities[cred.Phone]
	if !ok {
		s.identities[cred.Phone] = &model.IdentityEntity{
			Phone:        cred.Phone,
			OTPHash:      ptr(cred.CodeHash),
			OTPExpiresAt: ptr(cred.ExpiresAt),
			IsActive:     true,
			CreatedAt:    now,
		}
		return nil
	}
	e.OTPHash = ptr(cred.CodeHash)
	e.OTPExpiresAt = ptr(cred.ExpiresAt)
	e.UpdatedAt = ptr(now)
	return nil
}

func (s *IdentityStore) UpdateCredential(_ context.Context, cred *model.CredentialUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.identities[cred.Phone]
	if !ok {
		return false, nil
	}
	e.OTPHash = ptr(cred.CodeHash)
	e.OTPExpiresAt = ptr(cred.ExpiresAt)
	e.UpdatedAt = ptr(s.now())
	return true, nil
}

func (s *IdentityStore) ConsumeCredential(_ context.Context, phone, codeHash string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.identities[phone]
	if !ok || !e.HasCredential() || *e.OTPHash != codeHash || e.CredentialExpired(now) {
		return false, nil
	}
	e.OTPHash = nil
	e.OTPExpiresAt = nil
	e.UpdatedAt = ptr(s.now())
	return true, nil
}

func (s *IdentityStore) UpdateProfile(_ context.Context, req *model.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.identities[req.Phone]
	if !ok {
		return nil
	}
	e.Name = ptr(req.Name)
	e.Age = ptr(req.Age)
	e.ConsentGiven = req.ConsentGiven
	e.UpdatedAt = ptr(s.now())
	return nil
}

func (s *IdentityStore) SetActive(_ context.Context, phone string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.identities[phone]; ok {
		e.IsActive = active
		e.UpdatedAt = ptr(s.now())
	}
	return nil
}

func (s *IdentityStore) List(_ context.Context, filter *model.IdentityFilter) ([]model.IdentityEntity, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matched := make([]model.IdentityEntity, 0, len(s.identities))
	for _, e := range s.identities {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		matched = append(matched, *cloneIdentity(e))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].Phone < matched[j].Phone
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return page(matched, filter.Offset, filter.Limit), int64(len(matched)), nil
}

func (s *IdentityStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.identities)), nil
}

func matchesSearch(e *model.IdentityEntity, search string) bool {
	if strings.Contains(strings.ToLower(e.Phone), search) {
		return true
	}
	return e.Name != nil && strings.Contains(strings.ToLower(*e.Name), search)
}

func cloneIdentity(e *model.IdentityEntity) *model.IdentityEntity {
	c := *e
	if e.Name != nil {
		c.Name = ptr(*e.Name)
	}
	if e.Age != nil {
		c.Age = ptr(*e.Age)
	}
	if e.OTPHash != nil {
		c.OTPHash = ptr(*e.OTPHash)
	}
	if e.OTPExpiresAt != nil {
		c.OTPExpiresAt = ptr(*e.OTPExpiresAt)
	}
	if e.UpdatedAt != nil {
		c.UpdatedAt = ptr(*e.UpdatedAt)
	}
	return &c
}

func ptr[T any](v T) *T {
	return &v
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
