// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and deleting user records:
//  1. [UserListView] : Browse all users in the store
//  2. [DetailView] : Inspect a single record
//  3. [ConfirmDeleteView] : Confirm the audited delete
//  4. [ResultView] : Display the deletion snapshot and audit timestamp
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. Store
// calls run as tea commands so the interface never blocks on the database.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, d, y/n, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
