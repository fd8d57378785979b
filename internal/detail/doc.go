// Package detail implements the view model behind the property-detail
// screen: the load/loaded/error state machine, the single-record loader,
// and the mutation controller for favorite toggling and listing deletion.
//
// # State Machine
//
// A Model is created fresh for every listing identifier the viewer opens
// and moves through exactly three states:
//
//	Loading ──load ok──> Loaded(property, favorite)
//	   │
//	   └────load failed────> Error(message)
//
// The favorite flag is seeded from the record's is_favorited field at load
// time and afterwards changes only through confirmed toggles. It is a
// client-local cache of a server fact: a successful toggle patches it
// locally and no re-fetch is performed. Opening a different listing
// discards the Model and starts over at Loading.
//
// # Loader
//
// Loader.Load issues one unauthenticated read per identifier. Every failure
// class (network error, non-2xx status including 404, malformed or
// structurally invalid body) collapses into the single public message
// "Failed to load property details"; the underlying cause goes to the log,
// never to the viewer.
//
// # Mutation Controller
//
// The Controller is constructed with three injected capabilities: the API
// client, a session.CredentialProvider read at request time, and a
// UserPrompt for confirmations and notices. It makes no trust decisions:
// ownership gating in the UI is cosmetic and the backend re-validates every
// mutation.
//
// Both mutations follow one auth policy: an anonymous session or a missing
// stored credential short-circuits to a sign-in signal without touching the
// network. Local state is updated only after the backend confirms success
// (optimistic-after-confirm); on failure the backend's detail message, or a
// generic fallback, is surfaced through the prompt and the state is left
// exactly as it was. There are no retries; the viewer re-triggers if they
// want to.
package detail
