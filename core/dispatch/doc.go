// Package dispatch defines the outcome of presenting a message to a handler
// and the small set of handler combinators the actor loop is built on.
//
// An [Outcome] is one of three values, with fixed string forms used in logs
// and metrics:
//
//   - [Success] ("im_success"): handled; remove the message.
//   - [Skipped] ("im_skipped"): not taken; try the next handler or retry later.
//   - [Dropped] ("im_dropped"): discard permanently.
//
// Retry policy belongs to the caller; nothing in this package re-queues.
package dispatch
