// Package forms holds the editable, local-only state behind the gig
// create/edit flows.
//
// # Overview
//
//   - Group[T] is an ordered list of sub-records (price plans, FAQs,
//     requirements) that only grows by Append and is edited in place by
//     index.
//   - MediaStaging tracks a gig's existing images, the ones marked for
//     deletion, and newly picked local files, with a wrapping cursor for
//     carousel-style browsing.
//   - GigDraft composes scalar fields, three groups and a MediaStaging into
//     one draft and validates it.
//
// Nothing in this package talks to the network. Deletion marks and file
// selections stay local until a submission succeeds.
//
// All types are safe for concurrent use; every mutation is a single
// critical section.
package forms
