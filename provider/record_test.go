package provider

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-standin/standin"
	"github.com/uptrace/bun"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// mockUserRepository serves users from memory and records GetByID calls.
type mockUserRepository struct {
	mu       sync.Mutex
	users    map[string]*User
	calls    int
	criteria []int
}

func newMockUserRepository(users ...*User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.criteria = append(m.criteria, len(criteria))
	u, ok := m.users[id]
	if !ok {
		return nil, errors.New("user not found: " + id)
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) update(id, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].Name = name
}

func (m *mockUserRepository) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func withDeleted(q *bun.SelectQuery) *bun.SelectQuery {
	return q.WhereDeleted()
}

func TestRecord_LoadsOnEveryOperation(t *testing.T) {
	repo := newMockUserRepository(&User{ID: "user-1", Name: "Ada"})
	user := standin.MustNew(Record[*User](context.Background(), repo, "user-1", withDeleted), nil)

	if v, _ := user.Get("name", nil); v != "Ada" {
		t.Errorf("expected Ada, got %v", v)
	}
	repo.update("user-1", "Grace")
	if v, _ := user.Get("name", nil); v != "Grace" {
		t.Errorf("expected Grace, got %v", v)
	}

	if repo.callCount() != 2 {
		t.Errorf("expected 2 repository calls, got %d", repo.callCount())
	}
	for _, n := range repo.criteria {
		if n != 1 {
			t.Errorf("expected criteria to be forwarded, got %v", repo.criteria)
		}
	}
}

func TestRecord_ErrorPropagates(t *testing.T) {
	repo := newMockUserRepository()
	user := standin.MustNew(Record[*User](context.Background(), repo, "missing"), nil)

	_, err := user.Get("name", nil)
	if err == nil || !strings.Contains(err.Error(), "user not found") {
		t.Errorf("expected repository error, got %v", err)
	}
}

func TestCachedRecord(t *testing.T) {
	svc := newTestCacheService(t)
	ctx := context.Background()
	repo := newMockUserRepository(&User{ID: "user-1", Name: "Ada"}, &User{ID: "user-2", Name: "Alan"})

	first := standin.MustNew(CachedRecord[*User](ctx, svc, repo, "user-1"), nil)
	second := standin.MustNew(CachedRecord[*User](ctx, svc, repo, "user-2"), nil)

	for i := 0; i < 3; i++ {
		first.Get("name", nil)
		second.Get("name", nil)
	}
	if repo.callCount() != 2 {
		t.Errorf("expected one load per record, got %d", repo.callCount())
	}

	repo.update("user-1", "Grace")
	if v, _ := first.Get("name", nil); v != "Ada" {
		t.Errorf("expected cached name until invalidation, got %v", v)
	}

	if err := svc.DeleteByPrefix(ctx, RecordKeyPrefix[*User]()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := first.Get("name", nil); v != "Grace" {
		t.Errorf("expected reloaded name, got %v", v)
	}
	second.Get("name", nil)
	if repo.callCount() != 4 {
		t.Errorf("expected both records to reload, got %d calls", repo.callCount())
	}
}

func TestRecordKey(t *testing.T) {
	base := RecordKey[*User]("user-1")
	if !strings.HasPrefix(base, RecordKeyPrefix[*User]()) {
		t.Errorf("expected %q to start with %q", base, RecordKeyPrefix[*User]())
	}
	if base == RecordKey[*User]("user-2") {
		t.Error("expected different ids to produce different keys")
	}
	if base == RecordKey[*User]("user-1", withDeleted) {
		t.Error("expected criteria to be part of the key")
	}
	if RecordKey[*User]("user-1", withDeleted) != RecordKey[*User]("user-1", withDeleted) {
		t.Error("expected keys to be stable")
	}
	if strings.HasPrefix(RecordKey[User]("user-1"), RecordKeyPrefix[*User]()) {
		t.Error("expected record types to have distinct prefixes")
	}
}
