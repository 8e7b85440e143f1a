package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
)

func TestDirectoryService_ListContactsExcludesSelf(t *testing.T) {
	alice := domain.Profile{ID: uuid.New(), Name: "Alice", USN: "1XX22CS001"}
	bob := domain.Profile{ID: uuid.New(), Name: "Bob", USN: "1XX22CS002"}
	carol := domain.Profile{ID: uuid.New(), Name: "Carol", USN: "1XX22CS003"}

	svc := NewDirectoryService(newFakeProfileRepo(alice, bob, carol))

	contacts, err := svc.ListContacts(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	for _, c := range contacts {
		if c.ID == alice.ID {
			t.Fatalf("contact list contains the caller's own profile")
		}
	}
}

func TestDirectoryService_ListContactsEmptyDirectory(t *testing.T) {
	alice := domain.Profile{ID: uuid.New(), Name: "Alice", USN: "1XX22CS001"}

	svc := NewDirectoryService(newFakeProfileRepo(alice))

	contacts, err := svc.ListContacts(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if contacts == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(contacts) != 0 {
		t.Fatalf("expected no contacts, got %d", len(contacts))
	}
}

func TestDirectoryService_ListContactsSurfacesStoreError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("store unavailable")

	svc := NewDirectoryService(repo)

	if _, err := svc.ListContacts(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected store error to be surfaced, got nil")
	}
}
