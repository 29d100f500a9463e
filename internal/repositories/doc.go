// Package repositories implements SQLite persistence for the user record lifecycle.
//
// [UserRepository] owns the five record operations (create, list, get, update,
// delete-with-log). Every operation opens its own connection through a
// [shared.Factory] and releases it before the result is observable, on the
// success path and on every error path. The repository performs no input
// validation and never pre-queries for duplicates; constraint violations
// surface from the store itself.
//
// Deletion is the one multi-statement protocol: [UserRepository.DeleteWithLog]
// runs begin, in-transaction fetch, audit insert, delete and commit as a
// linear sequence, rolling everything back on the first failure so an audit
// row never outlives a failed deletion.
//
// "Not found" is modeled as a (nil, nil) return, distinct from the error
// taxonomy in the shared package (ErrConnection, ErrConstraint, ErrQuery,
// ErrWrite, ErrTransaction, ErrCommit).
package repositories
