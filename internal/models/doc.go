// Package models defines domain entities and persistence interfaces for the userdb record service.
//
// Persistent entities:
//   - [User] : a live account record, identified by a store-assigned integer id
//   - [DeletionLogEntry] : the append-only audit record written when a user is removed
//
// [Deletion] is the composite result of a successful audited delete: the
// removed user's final snapshot plus the audit timestamp.
//
// The [UserStore] interface defines the record operations the storage layer
// exposes; [DeletionLog] covers reads of the audit log. Both are implemented
// by the repositories package and consumed by the HTTP handlers, the CLI and
// the TUI.
package models
