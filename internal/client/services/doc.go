// Package services contains the application services of the gigdesk client.
//
// AuthService and GigService sit between the REPL and the remote API: they
// guard on the session, call the API and keep the session and the owned-gig
// list in step with server answers. The Reconciler turns a validated gig
// draft into exactly one create or update request and applies the
// confirmed result.
package services
