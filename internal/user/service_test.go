// PrinceMahmood | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type fakeRepo struct {
	users         map[string]*User
	inserts       int
	statusUpdates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeRepo) Insert(_ context.Context, u *User) error {
	if _, ok := f.users[u.Email]; ok {
		return fmt.Errorf("insert user: %w", core.ErrDuplicateKey)
	}
	f.inserts++
	copied := *u
	f.users[u.Email] = &copied
	return nil
}

func (f *fakeRepo) UpdateStatus(
	_ context.Context,
	email, status string,
) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("update status: %w", core.ErrNotFound)
	}
	f.statusUpdates++
	u.Status = &status
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) UpdateRole(
	_ context.Context,
	email, role string,
) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("update role: %w", core.ErrNotFound)
	}
	u.Role = &role
	u.Status = nil
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type recordedMail struct {
	to      string
	subject string
}

type fakeNotifier struct {
	sent []recordedMail
}

func (f *fakeNotifier) Dispatch(to, subject, _ string) {
	f.sent = append(f.sent, recordedMail{to: to, subject: subject})
}

func newTestService(repo Repository, notifier *fakeNotifier) *Service {
	return NewService(repo, notifier, slog.Default())
}

func strptr(s string) *string { return &s }

func TestSaveOnLoginCreatesNewUser(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	u, err := svc.SaveOnLogin(context.Background(), &SaveUserRequest{
		Email: "new@example.com",
		Name:  "New User",
		Role:  RoleGuest,
	})
	if err != nil {
		t.Fatalf("SaveOnLogin: %v", err)
	}

	if u.Email != "new@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if u.Role == nil || *u.Role != RoleGuest {
		t.Errorf("role = %v, want guest", u.Role)
	}
	if u.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(notifier.sent))
	}
	if notifier.sent[0].to != "new@example.com" ||
		notifier.sent[0].subject != "Welcome to Stay Vista" {
		t.Errorf("welcome mail = %+v", notifier.sent[0])
	}
}

func TestSaveOnLoginIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	first, err := svc.SaveOnLogin(context.Background(), &SaveUserRequest{
		Email: "repeat@example.com",
		Role:  RoleGuest,
	})
	if err != nil {
		t.Fatalf("first SaveOnLogin: %v", err)
	}

	second, err := svc.SaveOnLogin(context.Background(), &SaveUserRequest{
		Email: "repeat@example.com",
		Role:  RoleGuest,
	})
	if err != nil {
		t.Fatalf("second SaveOnLogin: %v", err)
	}

	if repo.inserts != 1 {
		t.Errorf("inserts = %d, want 1", repo.inserts)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed on re-login: %v -> %v",
			first.CreatedAt, second.CreatedAt)
	}
	if len(notifier.sent) != 1 {
		t.Errorf("sent %d mails, want 1 welcome mail only", len(notifier.sent))
	}
}

func TestSaveOnLoginRecordsHostRequest(t *testing.T) {
	repo := newFakeRepo()
	repo.users["guest@example.com"] = &User{
		Email:     "guest@example.com",
		Role:      strptr(RoleGuest),
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}

	svc := newTestService(repo, &fakeNotifier{})

	u, err := svc.SaveOnLogin(context.Background(), &SaveUserRequest{
		Email:  "guest@example.com",
		Status: StatusRequested,
	})
	if err != nil {
		t.Fatalf("SaveOnLogin: %v", err)
	}

	if u.Status == nil || *u.Status != StatusRequested {
		t.Errorf("status = %v, want Requested", u.Status)
	}
	if u.Role == nil || *u.Role != RoleGuest {
		t.Errorf("role = %v, want guest untouched", u.Role)
	}
	if repo.statusUpdates != 1 {
		t.Errorf("status updates = %d, want 1", repo.statusUpdates)
	}
	if repo.inserts != 0 {
		t.Errorf("inserts = %d, want 0", repo.inserts)
	}
}

func TestSetRoleClearsPendingRequest(t *testing.T) {
	repo := newFakeRepo()
	created := time.Now().Add(-48 * time.Hour)
	repo.users["guest@example.com"] = &User{
		Email:     "guest@example.com",
		Role:      strptr(RoleGuest),
		Status:    strptr(StatusRequested),
		CreatedAt: created,
	}

	svc := newTestService(repo, &fakeNotifier{})

	u, err := svc.SetRole(context.Background(), "guest@example.com", RoleHost)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}

	if u.Role == nil || *u.Role != RoleHost {
		t.Errorf("role = %v, want host", u.Role)
	}
	if u.Status != nil {
		t.Errorf("status = %v, want cleared", u.Status)
	}
	if !u.CreatedAt.Equal(created) {
		t.Errorf("created_at changed: %v -> %v", created, u.CreatedAt)
	}
}

func TestRoleByEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.users["host@example.com"] = &User{
		Email: "host@example.com",
		Role:  strptr(RoleHost),
	}
	repo.users["norole@example.com"] = &User{
		Email: "norole@example.com",
	}

	svc := newTestService(repo, &fakeNotifier{})

	role, err := svc.RoleByEmail(context.Background(), "host@example.com")
	if err != nil {
		t.Fatalf("RoleByEmail: %v", err)
	}
	if role != RoleHost {
		t.Errorf("role = %q, want host", role)
	}

	role, err = svc.RoleByEmail(context.Background(), "norole@example.com")
	if err != nil {
		t.Fatalf("RoleByEmail with NULL role: %v", err)
	}
	if role != "" {
		t.Errorf("role = %q, want empty for NULL role", role)
	}

	if _, err := svc.RoleByEmail(
		context.Background(), "missing@example.com",
	); err == nil {
		t.Error("RoleByEmail for missing user returned nil error")
	}
}
