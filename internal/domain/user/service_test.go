package user

import (
	"context"
	"errors"
	"testing"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*User, error) {
	found, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return found, nil
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, email, phone string) (*User, error) {
	for _, u := range r.users {
		if email != "" && u.Email != nil && *u.Email == email {
			return u, nil
		}
		if phone != "" && u.Phone != nil && *u.Phone == phone {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByLogin(ctx context.Context, email, phone string) (bool, error) {
	_, err := r.FindByLogin(ctx, email, phone)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Role != RoleMember || created.Status != StatusPending {
		t.Fatalf("expected MEMBER/PENDING, got %s/%s", created.Role, created.Status)
	}
	if created.PasswordHash == "secret1" {
		t.Fatal("password stored in plain text")
	}

	loggedIn, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, loggedIn.ID)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{Name: "Other", Email: "a@x.com", Password: "secret2"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterRequiresLoginKey(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Alice", Password: "secret1"}); err == nil {
		t.Fatal("expected error when both email and phone are missing")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "secret1"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRequireApproved(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.RequireApproved(ctx, created.ID); !errors.Is(err, ErrNotApproved) {
		t.Fatalf("expected ErrNotApproved, got %v", err)
	}

	orgID := "org-1"
	created.Status = StatusApproved
	created.OrganizationID = &orgID

	if _, err := svc.RequireApproved(ctx, created.ID); err != nil {
		t.Fatalf("expected approved user to pass, got %v", err)
	}
}

func TestRequireParent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.RequireParent(ctx, created.ID); !errors.Is(err, ErrNotParent) {
		t.Fatalf("expected ErrNotParent, got %v", err)
	}

	orgID := "org-1"
	created.Role = RoleParent
	created.OrganizationID = &orgID

	if _, err := svc.RequireParent(ctx, created.ID); err != nil {
		t.Fatalf("expected parent to pass, got %v", err)
	}
}
