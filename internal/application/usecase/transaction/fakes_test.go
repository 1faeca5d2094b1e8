package transaction

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/application/adapter"
	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// fakeStore is an in-memory TransactionStore with the same uniqueness rule as
// the real store: a second write with an existing code fails with a conflict.
type fakeStore struct {
	mu    sync.Mutex
	items []*entity.Transaction

	failList error
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) List(_ context.Context) ([]*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList != nil {
		return nil, s.failList
	}
	out := make([]*entity.Transaction, len(s.items))
	for i, t := range s.items {
		clone := *t
		out[i] = &clone
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.Code == transaction.Code {
			return domainerror.ErrStoreConflict
		}
	}
	clone := *transaction
	s.items = append(s.items, &clone)
	return nil
}

func (s *fakeStore) Update(_ context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == transaction.ID {
			clone := *transaction
			s.items[i] = &clone
			return nil
		}
	}
	return errors.New("not found")
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// fakeCategoryRepo serves a fixed category list.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }

func (r *fakeCategoryRepo) FindByID(context.Context, uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByType(_ context.Context, transactionType entity.TransactionType) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Type == transactionType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndType(_ context.Context, name string, transactionType entity.TransactionType) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.Type == transactionType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }

// fakeCounterpartyRepo serves fixed counterparty lists per object type.
type fakeCounterpartyRepo struct {
	names map[entity.ObjectType][]string
}

func (r *fakeCounterpartyRepo) Create(context.Context, *entity.Counterparty) error { return nil }

func (r *fakeCounterpartyRepo) FindByID(context.Context, uuid.UUID) (*entity.Counterparty, error) {
	return nil, domainerror.ErrCounterpartyNotFound
}

func (r *fakeCounterpartyRepo) FindByType(_ context.Context, objectType entity.ObjectType) ([]*entity.Counterparty, error) {
	var out []*entity.Counterparty
	for _, name := range r.names[objectType] {
		out = append(out, &entity.Counterparty{ID: uuid.New(), Name: name, Type: objectType, IsActive: true})
	}
	return out, nil
}

func (r *fakeCounterpartyRepo) ExistsByNameAndType(_ context.Context, name string, objectType entity.ObjectType) (bool, error) {
	for _, n := range r.names[objectType] {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCounterpartyRepo) Update(context.Context, *entity.Counterparty) error { return nil }
func (r *fakeCounterpartyRepo) Delete(context.Context, uuid.UUID) error            { return nil }

// fakeUserRepo serves a fixed user set.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) List(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByRole(_ context.Context, role entity.UserRole) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role && u.IsActive() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

// fakeEmailService records queued notifications.
type fakeEmailService struct {
	mu        sync.Mutex
	requested []adapter.QueueApprovalRequestedInput
	results   []adapter.QueueApprovalResultInput
}

func (s *fakeEmailService) QueuePasswordResetEmail(context.Context, adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *fakeEmailService) QueueApprovalRequestedEmail(_ context.Context, input adapter.QueueApprovalRequestedInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requested = append(s.requested, input)
	return nil
}

func (s *fakeEmailService) QueueApprovalResultEmail(_ context.Context, input adapter.QueueApprovalResultInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, input)
	return nil
}
