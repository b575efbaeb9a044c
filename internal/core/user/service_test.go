package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wordsolver/internal/auth"
	"wordsolver/internal/store/users"
)

type fakeUserStore struct {
	users  map[int]users.UserInfo
	creds  map[string]users.Credentials
	nextId int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  map[int]users.UserInfo{},
		creds:  map[string]users.Credentials{},
		nextId: 1,
	}
}

func (f *fakeUserStore) Insert(ctx context.Context, u users.NewUserModel) (int, error) {
	id := f.nextId
	f.nextId++
	f.users[id] = users.UserInfo{Id: id, Username: u.Username, Email: u.Email}
	f.creds[u.Username] = users.Credentials{Id: id, PasswordHash: u.PasswordHash}
	return id, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]users.UserInfo, error) {
	out := []users.UserInfo{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) GetById(ctx context.Context, id int) (users.UserInfo, error) {
	u, ok := f.users[id]
	if !ok {
		return users.UserInfo{}, users.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id int, u users.UpdateUserModel) error {
	if _, ok := f.users[id]; !ok {
		return users.ErrNotFound
	}
	f.users[id] = users.UserInfo{Id: id, Username: u.Username, Email: u.Email}
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return users.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) GetCredentials(ctx context.Context, username string) (users.Credentials, error) {
	c, ok := f.creds[username]
	if !ok {
		return users.Credentials{}, users.ErrNotFound
	}
	return c, nil
}

func (f *fakeUserStore) EnsureSchema(ctx context.Context) error { return nil }

type fakeRevokedStore struct {
	tokens map[string]bool
}

func newFakeRevokedStore() *fakeRevokedStore {
	return &fakeRevokedStore{tokens: map[string]bool{}}
}

func (f *fakeRevokedStore) Insert(ctx context.Context, token string) error {
	f.tokens[token] = true
	return nil
}

func (f *fakeRevokedStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return f.tokens[token], nil
}

func (f *fakeRevokedStore) EnsureSchema(ctx context.Context) error { return nil }

func newTestService() (*UserService, *fakeUserStore, *fakeRevokedStore) {
	store := newFakeUserStore()
	revokedStore := newFakeRevokedStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewUserService(store, revokedStore, tokens), store, revokedStore
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store, _ := newTestService()

	id, err := svc.Register(context.Background(), ServiceRegisterModel{
		Username: "aidan",
		Email:    "aidan@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	creds := store.creds["aidan"]
	if creds.PasswordHash == "hunter2" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name string
		m    ServiceRegisterModel
	}{
		{name: "empty username", m: ServiceRegisterModel{Password: "pw"}},
		{name: "empty password", m: ServiceRegisterModel{Username: "aidan"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.m); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ServiceRegisterModel{Username: "aidan", Password: "hunter2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := svc.Login(ctx, ServiceLoginModel{Username: "aidan", Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userId, err := svc.Authorize(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userId != 1 {
		t.Fatalf("expected user id 1, got %d", userId)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ServiceRegisterModel{Username: "aidan", Password: "hunter2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		m    ServiceLoginModel
	}{
		{name: "wrong password", m: ServiceLoginModel{Username: "aidan", Password: "wrong"}},
		{name: "unknown user", m: ServiceLoginModel{Username: "ghost", Password: "hunter2"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.m)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthorizeRejectsRevokedToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ServiceRegisterModel{Username: "aidan", Password: "hunter2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, err := svc.Login(ctx, ServiceLoginModel{Username: "aidan", Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Revoke(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Authorize(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorizeRejectsEmptyAndGarbage(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Authorize(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Authorize(ctx, "garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateAndDeletePropagateNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if err := svc.Update(ctx, 99, ServiceUpdateModel{Username: "x", Password: "y"}); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
