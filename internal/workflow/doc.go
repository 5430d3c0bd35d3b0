// Package workflow sequences the versioning run: detect the latest
// notebook, compose the next name, copy it forward, insert the version
// banner, then branch, commit, tag, and push.
//
// Execution is single-threaded and fully synchronous. The only suspension
// points are operator prompts and the git subprocess. There is no automatic
// retry anywhere: every failed externally-facing step routes through one
// uniform recovery decision point offering exactly four choices (retry,
// skip, rollback-and-exit, continue anyway), and every retry is an explicit
// operator decision.
//
// Partial state (a copied notebook that never got committed, a branch that
// never got pushed) is deliberately left on disk; Rollback and Fix are the
// operator-driven recovery paths. Rollback is destructive and best-effort:
// each deletion is attempted independently and tolerates "not found", so
// rolling back a version that was never created is idempotent.
package workflow
