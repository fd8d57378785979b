package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_ReadsCredentials(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	content := "token = \"abc123\"\nuser_id = 7\nusername = \"hana\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	sess := store.Session()
	if !sess.Authenticated() {
		t.Fatal("session not authenticated")
	}
	if sess.UserID != 7 || sess.Username != "hana" {
		t.Fatalf("session = %#v, want user 7 hana", sess)
	}

	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if token != "abc123" {
		t.Fatalf("token = %q, want %q", token, "abc123")
	}
}

func TestFileStore_MissingFileIsAnonymous(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if sess := store.Session(); sess.Authenticated() {
		t.Fatalf("session = %#v, want anonymous", sess)
	}
	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if token != "" {
		t.Fatalf("token = %q, want empty", token)
	}
}

func TestFileStore_PicksUpRenewal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := os.WriteFile(path, []byte("token = \"old\"\nuser_id = 7\n"), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	if token, _ := store.Token(); token != "old" {
		t.Fatalf("token = %q, want %q", token, "old")
	}

	if err := os.WriteFile(path, []byte("token = \"new\"\nuser_id = 7\n"), 0o600); err != nil {
		t.Fatalf("rewrite credentials: %v", err)
	}
	if token, _ := store.Token(); token != "new" {
		t.Fatalf("token after rewrite = %q, want %q", token, "new")
	}
}

func TestStaticCredentials(t *testing.T) {
	t.Parallel()

	token, err := StaticCredentials("fixed").Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if token != "fixed" {
		t.Fatalf("token = %q, want %q", token, "fixed")
	}
}

func TestSession_Authenticated(t *testing.T) {
	t.Parallel()

	if Anonymous().Authenticated() {
		t.Fatal("anonymous session reports authenticated")
	}
	if !(Session{UserID: 7}).Authenticated() {
		t.Fatal("user session reports anonymous")
	}
}
