// Package client contains client-side building blocks for gigdesk.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     marketplace backend: auth, profile, password reset and gig CRUD.
//  2. A concrete HTTP implementation (see HTTPClient) that injects the
//     bearer token from a TokenSource, tags requests with X-Request-ID,
//     encodes gig forms as multipart bodies, and maps failures to errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     session database, an SQLite file with embedded goose migrations.
//
// # Error Handling
//
//   - ErrUnavailable: the server could not be reached.
//   - ErrUnauthorized: the server answered 401.
//   - *RemoteError: any other non-2xx answer, carrying the server message.
//
// Callers match with errors.Is / errors.As. No call is retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; there are no built-in timeouts.
package client
