package contact

import (
	"context"

	domain "daftar/internal/domain/contact"
)

// Store persists Contact state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Contact, error)
	GetByPhone(ctx context.Context, phone string) (domain.Contact, error)
	Save(ctx context.Context, value domain.Contact) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Contact, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	Phones(ctx context.Context) (map[string]bool, error)
}

// ListFilter carries filtering parameters for List operations.
// An empty filter returns the whole collection.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}
