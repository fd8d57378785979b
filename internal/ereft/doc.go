// Package ereft provides an HTTP client for the Ereft listings API.
//
// # Overview
//
// This package defines the API client the TUI uses to read listing records
// and to issue the two mutation flows the detail screen offers: favorite
// toggling and listing deletion. It handles HTTP communication, JSON
// serialization, bearer-credential transport, and type-safe representation
// of listing payloads.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the listings API schema
//
// # API Endpoints
//
// The client supports one read path and three mutations:
//
//   - GET /api/listings/properties/{id}/: one listing record (no auth)
//   - GET /api/listings/properties/: paginated listing collection (no auth)
//   - POST /api/listings/favorites/: add a favorite (auth required)
//   - DELETE /api/listings/favorites/{id}/: remove a favorite (auth required)
//   - DELETE /api/listings/properties/{id}/: delete a listing (auth required)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: gojo/0.1
//   - Run under a bounded http.Client timeout (10 seconds by default)
//   - Attach "Authorization: Token <value>" when a credential is supplied
//
// Credentials are passed per call and never stored on the client; the
// caller reads them from its credential provider at request time.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, which carries the status
// code and the backend's {"detail": "..."} message when the body has one.
// Network and decode failures are wrapped with fmt.Errorf context. Fetched
// records pass through an explicit Validate step so a structurally empty
// body fails at the boundary instead of rendering blank fields.
//
// # Ownership
//
// The client makes no authorization decisions. Whether a delete is offered
// is a UI concern, and whether it is permitted is the backend's; the client
// just transports the credential.
package ereft
