package detail

import (
	"context"
	"testing"

	"github.com/ereft/gojo/internal/ereft"
	"github.com/ereft/gojo/internal/session"
)

// fakeAPI records the calls the controller issues.
type fakeAPI struct {
	property *ereft.Property
	fetchErr error

	addErr    error
	removeErr error
	deleteErr error

	calls []string
}

func (f *fakeAPI) FetchProperty(ctx context.Context, id string) (*ereft.Property, error) {
	f.calls = append(f.calls, "fetch "+id)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.property, nil
}

func (f *fakeAPI) FetchProperties(ctx context.Context, page int) (*ereft.PropertyPage, error) {
	f.calls = append(f.calls, "list")
	return &ereft.PropertyPage{}, nil
}

func (f *fakeAPI) AddFavorite(ctx context.Context, token, id string) error {
	f.calls = append(f.calls, "add "+token+" "+id)
	return f.addErr
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, token, id string) error {
	f.calls = append(f.calls, "remove "+token+" "+id)
	return f.removeErr
}

func (f *fakeAPI) DeleteProperty(ctx context.Context, token, id string) error {
	f.calls = append(f.calls, "delete "+token+" "+id)
	return f.deleteErr
}

var _ ereft.API = (*fakeAPI)(nil)

// fakePrompt records confirmations and notices.
type fakePrompt struct {
	answer   bool
	confirms []string
	notices  []string
}

func (f *fakePrompt) Confirm(message string) bool {
	f.confirms = append(f.confirms, message)
	return f.answer
}

func (f *fakePrompt) Notify(message string) {
	f.notices = append(f.notices, message)
}

func TestToggleFavorite_AnonymousIssuesNoRequest(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	c := NewController(api, session.StaticCredentials("unused"), &fakePrompt{})

	out := c.ToggleFavorite(context.Background(), session.Anonymous(), "42", false)
	if !out.SignIn {
		t.Fatal("anonymous toggle did not signal sign-in")
	}
	if out.Favorite {
		t.Fatal("favorite flag changed without backend confirmation")
	}
	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none", api.calls)
	}
}

func TestToggleFavorite_MissingCredentialIssuesNoRequest(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	c := NewController(api, session.StaticCredentials(""), &fakePrompt{})

	out := c.ToggleFavorite(context.Background(), session.Session{UserID: 9}, "42", true)
	if !out.SignIn {
		t.Fatal("missing credential did not signal sign-in")
	}
	if !out.Favorite {
		t.Fatal("favorite flag changed without backend confirmation")
	}
	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none", api.calls)
	}
}

func TestToggleFavorite_IssuesOppositeOfCurrentState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		current  bool
		wantCall string
		wantFlag bool
	}{
		{"add when not favorited", false, "add tok 42", true},
		{"remove when favorited", true, "remove tok 42", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			c := NewController(api, session.StaticCredentials("tok"), &fakePrompt{})

			out := c.ToggleFavorite(context.Background(), session.Session{UserID: 9}, "42", tc.current)
			if out.SignIn || out.Err != nil {
				t.Fatalf("outcome = %#v, want clean toggle", out)
			}
			if out.Favorite != tc.wantFlag {
				t.Fatalf("favorite = %v, want %v", out.Favorite, tc.wantFlag)
			}
			if len(api.calls) != 1 || api.calls[0] != tc.wantCall {
				t.Fatalf("calls = %v, want [%q]", api.calls, tc.wantCall)
			}
		})
	}
}

func TestToggleFavorite_FailureLeavesFlagAndNotifies(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{addErr: &ereft.APIError{StatusCode: 429, Detail: "Slow down."}}
	prompt := &fakePrompt{}
	c := NewController(api, session.StaticCredentials("tok"), prompt)

	out := c.ToggleFavorite(context.Background(), session.Session{UserID: 9}, "42", false)
	if out.Err == nil {
		t.Fatal("failed toggle reported no error")
	}
	if out.Favorite {
		t.Fatal("favorite flag flipped despite failure")
	}
	if len(prompt.notices) != 1 || prompt.notices[0] != "Slow down." {
		t.Fatalf("notices = %v, want backend detail", prompt.notices)
	}
}

func TestToggleFavorite_FallbackMessageWithoutDetail(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{removeErr: &ereft.APIError{StatusCode: 500}}
	prompt := &fakePrompt{}
	c := NewController(api, session.StaticCredentials("tok"), prompt)

	c.ToggleFavorite(context.Background(), session.Session{UserID: 9}, "42", true)
	if len(prompt.notices) != 1 || prompt.notices[0] != FavoriteFailedMessage {
		t.Fatalf("notices = %v, want %q", prompt.notices, FavoriteFailedMessage)
	}
}

func TestDeleteListing_DeclinedConfirmationIssuesNoRequest(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	prompt := &fakePrompt{answer: false}
	c := NewController(api, session.StaticCredentials("tok"), prompt)

	out := c.DeleteListing(context.Background(), session.Session{UserID: 7}, "42")
	if out.Deleted || out.SignIn || out.Err != nil {
		t.Fatalf("outcome = %#v, want no-op", out)
	}
	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none", api.calls)
	}
	if len(prompt.confirms) != 1 || prompt.confirms[0] != DeleteConfirmMessage {
		t.Fatalf("confirms = %v, want the delete confirmation", prompt.confirms)
	}
}

func TestDeleteListing_MissingCredentialSignalsSignIn(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	c := NewController(api, session.StaticCredentials(""), &fakePrompt{answer: true})

	out := c.DeleteListing(context.Background(), session.Session{UserID: 7}, "42")
	if !out.SignIn {
		t.Fatal("missing credential did not signal sign-in")
	}
	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none", api.calls)
	}
}

func TestDeleteListing_SuccessNotifiesAndNavigates(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	prompt := &fakePrompt{answer: true}
	c := NewController(api, session.StaticCredentials("tok"), prompt)

	out := c.DeleteListing(context.Background(), session.Session{UserID: 7}, "42")
	if !out.Deleted || out.Err != nil {
		t.Fatalf("outcome = %#v, want deleted", out)
	}
	if len(api.calls) != 1 || api.calls[0] != "delete tok 42" {
		t.Fatalf("calls = %v, want [delete tok 42]", api.calls)
	}
	if len(prompt.notices) != 1 || prompt.notices[0] != DeletedMessage {
		t.Fatalf("notices = %v, want %q", prompt.notices, DeletedMessage)
	}
}

func TestDeleteListing_BackendRejectionLeavesStateAndSurfacesDetail(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{deleteErr: &ereft.APIError{StatusCode: 403, Detail: "You do not have permission to perform this action."}}
	prompt := &fakePrompt{answer: true}
	c := NewController(api, session.StaticCredentials("tok"), prompt)

	out := c.DeleteListing(context.Background(), session.Session{UserID: 7}, "42")
	if out.Deleted {
		t.Fatal("rejected delete reported navigation")
	}
	if out.Err == nil {
		t.Fatal("rejected delete reported no error")
	}
	if len(prompt.notices) != 1 || prompt.notices[0] != "You do not have permission to perform this action." {
		t.Fatalf("notices = %v, want backend detail", prompt.notices)
	}
}

func TestIsOwner(t *testing.T) {
	t.Parallel()

	owner := ereft.Owner{ID: 7, Username: "hana"}
	prop := &ereft.Property{ID: "42", Title: "Sunny Villa", Owner: &owner}

	if !IsOwner(session.Session{UserID: 7}, prop) {
		t.Fatal("owner session not recognized")
	}
	if IsOwner(session.Session{UserID: 8}, prop) {
		t.Fatal("non-owner session recognized as owner")
	}
	if IsOwner(session.Anonymous(), prop) {
		t.Fatal("anonymous session recognized as owner")
	}
	if IsOwner(session.Session{UserID: 7}, &ereft.Property{ID: "42", Title: "x"}) {
		t.Fatal("ownerless record recognized as owned")
	}
}
