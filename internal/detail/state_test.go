package detail

import (
	"testing"

	"github.com/ereft/gojo/internal/ereft"
)

func TestModel_LoadedSeedsFavoriteFromRecord(t *testing.T) {
	t.Parallel()

	m := NewModel("42")
	if m.State != StateLoading {
		t.Fatalf("initial state = %v, want StateLoading", m.State)
	}

	m.SetLoaded(&ereft.Property{ID: "42", Title: "Sunny Villa", IsFavorited: true})
	if m.State != StateLoaded {
		t.Fatalf("state = %v, want StateLoaded", m.State)
	}
	if !m.Favorite {
		t.Fatal("favorite flag not seeded from is_favorited")
	}
}

func TestModel_ErrorClearsRecord(t *testing.T) {
	t.Parallel()

	m := NewModel("42")
	m.SetLoaded(&ereft.Property{ID: "42", Title: "Sunny Villa", IsFavorited: true})
	m.SetError(LoadFailedMessage)

	if m.State != StateError {
		t.Fatalf("state = %v, want StateError", m.State)
	}
	if m.Message != LoadFailedMessage {
		t.Fatalf("message = %q, want %q", m.Message, LoadFailedMessage)
	}
	if m.Property != nil || m.Favorite {
		t.Fatalf("record not cleared: %#v favorite=%v", m.Property, m.Favorite)
	}
}

func TestModel_ResetStartsFreshVisit(t *testing.T) {
	t.Parallel()

	m := NewModel("42")
	m.SetLoaded(&ereft.Property{ID: "42", Title: "Sunny Villa", IsFavorited: true})
	m.SetFavorite(false)

	m.Reset("43")
	if m.ListingID != "43" || m.State != StateLoading {
		t.Fatalf("after reset: id=%q state=%v, want 43/StateLoading", m.ListingID, m.State)
	}
	if m.Property != nil || m.Favorite || m.Message != "" {
		t.Fatalf("stale state survived reset: %#v", m)
	}
}

func TestModel_SetFavoriteOnlyWhenLoaded(t *testing.T) {
	t.Parallel()

	m := NewModel("42")
	m.SetFavorite(true)
	if m.Favorite {
		t.Fatal("favorite flag set while still loading")
	}

	m.SetLoaded(&ereft.Property{ID: "42", Title: "Sunny Villa"})
	m.SetFavorite(true)
	if !m.Favorite {
		t.Fatal("favorite flag not patched after load")
	}
}
