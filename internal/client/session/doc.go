// Package session holds the signed-in user and bearer token for the whole
// process.
//
// A Store is built once at startup and shared by reference. It moves through
// an explicit state machine:
//
//	uninitialized -> restoring -> authenticated | anonymous
//	authenticated -> anonymous        (Logout)
//	any           -> authenticated    (Login)
//
// Code that decides based on the current user (route guards, REPL commands)
// must go through Guard, which waits for restoration to resolve first.
package session
