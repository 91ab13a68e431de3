// Package cli provides the interactive gigdesk command-line client.
//
// It wires configuration, the local session database, the API client and
// the services into a REPL. Session restoration starts in the background
// when the REPL opens; commands that depend on who is signed in wait for it
// to resolve first.
//
// The gig editor (create, edit) is a nested loop over a GigDraft: scalar
// fields, price plans, FAQs, requirements, thumbnail and image staging are
// edited in place and nothing reaches the server until "submit".
package cli
