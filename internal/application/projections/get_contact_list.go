package projections

import (
	"context"

	"daftar/internal/adapters/storage/contact"
	"daftar/internal/application/listutil"
	domain "daftar/internal/domain/contact"
)

// ContactStore is the store interface needed by contact list queries.
type ContactStore interface {
	List(ctx context.Context, filter contact.ListFilter) ([]domain.Contact, error)
}

// GetContactListQuery carries query parameters.
type GetContactListQuery struct {
	Search  string
	Page    int
	PerPage int
}

// GetContactListResult carries the query result.
type GetContactListResult struct {
	Contacts []domain.Contact
	PageInfo listutil.PageInfo
}

// GetContactListDeps holds dependencies for GetContactList.
type GetContactListDeps struct {
	ContactStore ContactStore
}

// QueryGetContactList retrieves a page of contacts in canonical order.
// PRE: Valid query parameters; Page >= 1
// POST: Returns the requested page; Contacts are sorted by collated name
// INVARIANT: Sorting happens over the full filtered set before pagination,
// so page boundaries follow collation order, not storage order.
func QueryGetContactList(ctx context.Context, query GetContactListQuery, deps GetContactListDeps) (GetContactListResult, error) {
	contacts, err := deps.ContactStore.List(ctx, contact.ListFilter{Search: query.Search})
	if err != nil {
		return GetContactListResult{}, err
	}

	domain.SortByName(contacts)

	perPage := query.PerPage
	if perPage < 1 {
		perPage = listutil.DefaultPerPage
	}
	info := listutil.NewPageInfo(query.Page, perPage, len(contacts))

	start := info.Offset()
	end := start + info.PerPage
	if start > len(contacts) {
		start = len(contacts)
	}
	if end > len(contacts) {
		end = len(contacts)
	}

	return GetContactListResult{
		Contacts: contacts[start:end],
		PageInfo: info,
	}, nil
}
