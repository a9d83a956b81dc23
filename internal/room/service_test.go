// PrinceMahmood | 2026
// service_test.go

package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type fakeRepo struct {
	rooms          map[uuid.UUID]*Room
	lastCategory   string
	listCalls      int
	bookedArgs     []bool
	deletedIDs     []uuid.UUID
	updatedListing *Room
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: map[uuid.UUID]*Room{}}
}

func (f *fakeRepo) List(_ context.Context, category string) ([]Room, error) {
	f.listCalls++
	f.lastCategory = category

	rooms := []Room{}
	for _, rm := range f.rooms {
		if category == "" || rm.Category == category {
			rooms = append(rooms, *rm)
		}
	}
	return rooms, nil
}

func (f *fakeRepo) ListByHost(_ context.Context, hostEmail string) ([]Room, error) {
	rooms := []Room{}
	for _, rm := range f.rooms {
		if rm.HostEmail == hostEmail {
			rooms = append(rooms, *rm)
		}
	}
	return rooms, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, fmt.Errorf("get room: %w", core.ErrNotFound)
	}
	copied := *rm
	return &copied, nil
}

func (f *fakeRepo) Insert(_ context.Context, rm *Room) error {
	copied := *rm
	f.rooms[rm.ID] = &copied
	return nil
}

func (f *fakeRepo) Update(_ context.Context, rm *Room) (*Room, error) {
	if _, ok := f.rooms[rm.ID]; !ok {
		return nil, fmt.Errorf("update room: %w", core.ErrNotFound)
	}
	copied := *rm
	f.rooms[rm.ID] = &copied
	f.updatedListing = &copied
	return rm, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rooms[id]; !ok {
		return fmt.Errorf("delete room: %w", core.ErrNotFound)
	}
	delete(f.rooms, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeRepo) SetBooked(_ context.Context, id uuid.UUID, booked bool) error {
	rm, ok := f.rooms[id]
	if !ok {
		return fmt.Errorf("set booked: %w", core.ErrNotFound)
	}
	rm.Booked = booked
	f.bookedArgs = append(f.bookedArgs, booked)
	return nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRepo) CountByHost(_ context.Context, hostEmail string) (int64, error) {
	var n int64
	for _, rm := range f.rooms {
		if rm.HostEmail == hostEmail {
			n++
		}
	}
	return n, nil
}

type fakeRoles map[string]string

func (f fakeRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := f[email]
	if !ok {
		return "", fmt.Errorf("no user: %w", core.ErrNotFound)
	}
	return role, nil
}

func newTestService(repo Repository, roles RoleReader) *Service {
	return NewService(repo, roles, slog.Default())
}

func TestListCategoryPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"empty means no filter", "", ""},
		{"null placeholder means no filter", "null", ""},
		{"undefined placeholder means no filter", "undefined", ""},
		{"real category passes through", "Countryside", "Countryside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, fakeRoles{})

			if _, err := svc.List(context.Background(), tt.category); err != nil {
				t.Fatalf("List: %v", err)
			}
			if repo.lastCategory != tt.want {
				t.Errorf("repo got category %q, want %q",
					repo.lastCategory, tt.want)
			}
		})
	}
}

func TestCreateForcesOwnerFromSession(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, fakeRoles{})

	rm, err := svc.Create(context.Background(), "host@example.com", &SaveRoomRequest{
		Title:    "Lakeside Cabin",
		Category: "Lakefront",
		Price:    120,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rm.HostEmail != "host@example.com" {
		t.Errorf("host email = %q, want session email", rm.HostEmail)
	}
	if rm.ID == uuid.Nil {
		t.Error("room id not assigned")
	}
	if rm.Booked {
		t.Error("new room must start unbooked")
	}
}

func TestMyListingsScopedToCaller(t *testing.T) {
	svc := newTestService(newFakeRepo(), fakeRoles{})

	_, err := svc.MyListings(
		context.Background(), "other@example.com", "host@example.com",
	)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("error = %v, want ErrForbidden", err)
	}

	if _, err := svc.MyListings(
		context.Background(), "host@example.com", "host@example.com",
	); err != nil {
		t.Errorf("own listings: %v", err)
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New()
	repo.rooms[id] = &Room{
		ID:        id,
		HostEmail: "owner@example.com",
		Title:     "Old Title",
		Booked:    true,
	}
	svc := newTestService(repo, fakeRoles{})

	_, err := svc.Update(context.Background(), id, "intruder@example.com",
		&SaveRoomRequest{Title: "Hijacked"})
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(context.Background(), id, "owner@example.com",
		&SaveRoomRequest{Title: "New Title"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "New Title" {
		t.Errorf("title = %q, want New Title", updated.Title)
	}
	if updated.HostEmail != "owner@example.com" {
		t.Errorf("host email changed to %q", updated.HostEmail)
	}
	if !updated.Booked {
		t.Error("booked flag must not be writable through update")
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New()
	repo.rooms[id] = &Room{ID: id, HostEmail: "owner@example.com"}
	svc := newTestService(repo, fakeRoles{})

	err := svc.Delete(context.Background(), id, "intruder@example.com")
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	if len(repo.deletedIDs) != 0 {
		t.Fatal("room deleted despite failed ownership check")
	}

	if err := svc.Delete(context.Background(), id, "owner@example.com"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.deletedIDs) != 1 {
		t.Errorf("deleted %d rooms, want 1", len(repo.deletedIDs))
	}
}

func TestSetBookedOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		roles   fakeRoles
		wantErr error
	}{
		{
			name:   "owner allowed",
			caller: "owner@example.com",
			roles:  fakeRoles{},
		},
		{
			name:   "admin allowed",
			caller: "admin@example.com",
			roles:  fakeRoles{"admin@example.com": "admin"},
		},
		{
			name:    "other guest rejected",
			caller:  "guest@example.com",
			roles:   fakeRoles{"guest@example.com": "guest"},
			wantErr: core.ErrForbidden,
		},
		{
			name:    "other host rejected",
			caller:  "otherhost@example.com",
			roles:   fakeRoles{"otherhost@example.com": "host"},
			wantErr: core.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			id := uuid.New()
			repo.rooms[id] = &Room{ID: id, HostEmail: "owner@example.com"}
			svc := newTestService(repo, tt.roles)

			err := svc.SetBooked(context.Background(), id, tt.caller, true)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if repo.rooms[id].Booked {
					t.Error("booked flag changed despite rejection")
				}
				return
			}

			if err != nil {
				t.Fatalf("SetBooked: %v", err)
			}
			if !repo.rooms[id].Booked {
				t.Error("booked flag not set")
			}
		})
	}
}
