package orchestrators

import (
	"context"
	"errors"
	"sort"
	"strings"

	accountStore "daftar/internal/adapters/storage/account"
	contactStore "daftar/internal/adapters/storage/contact"
	accountDomain "daftar/internal/domain/account"
	domain "daftar/internal/domain/contact"
)

// mockContactStore is an in-memory contactStore.Store for orchestrator tests.
type mockContactStore struct {
	byID    map[string]domain.Contact
	saveErr error
}

func newMockContactStore(contacts ...domain.Contact) *mockContactStore {
	m := &mockContactStore{byID: make(map[string]domain.Contact)}
	for _, c := range contacts {
		m.byID[c.ID] = c
	}
	return m
}

func (m *mockContactStore) GetByID(_ context.Context, id string) (domain.Contact, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Contact{}, errors.New("not found")
	}
	return c, nil
}

func (m *mockContactStore) GetByPhone(_ context.Context, phone string) (domain.Contact, error) {
	for _, c := range m.byID {
		if c.Phone == phone {
			return c, nil
		}
	}
	return domain.Contact{}, errors.New("not found")
}

func (m *mockContactStore) Save(_ context.Context, c domain.Contact) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.byID[c.ID] = c
	return nil
}

func (m *mockContactStore) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *mockContactStore) List(_ context.Context, filter contactStore.ListFilter) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range m.byID {
		if filter.Search != "" && !strings.Contains(c.Name, filter.Search) && !strings.Contains(c.Phone, filter.Search) {
			continue
		}
		out = append(out, c)
	}
	// Deterministic order for assertions; callers re-sort canonically.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockContactStore) Count(_ context.Context, filter contactStore.ListFilter) (int, error) {
	list, _ := m.List(context.Background(), filter)
	return len(list), nil
}

func (m *mockContactStore) Phones(_ context.Context) (map[string]bool, error) {
	phones := make(map[string]bool, len(m.byID))
	for _, c := range m.byID {
		phones[c.Phone] = true
	}
	return phones, nil
}

var _ contactStore.Store = (*mockContactStore)(nil)

// mockAccountStore is an in-memory accountStore.Store for orchestrator tests.
type mockAccountStore struct {
	byEmail map[string]accountDomain.Account
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{byEmail: make(map[string]accountDomain.Account)}
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (accountDomain.Account, error) {
	a, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return accountDomain.Account{}, errors.New("not found")
	}
	return a, nil
}

func (m *mockAccountStore) Save(_ context.Context, a accountDomain.Account) error {
	m.byEmail[strings.ToLower(a.Email)] = a
	return nil
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.byEmail), nil
}

var _ accountStore.Store = (*mockAccountStore)(nil)
