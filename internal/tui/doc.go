// ABOUTME: Package documentation for the tui package
// ABOUTME: Describes the two views and their state flow

// Package tui implements the taskwell terminal client on Bubble Tea.
//
// The app has two views. The login view collects an email/password pair and
// hands it to the session provider; a failed attempt shows the provider's
// stored error inline. The task view holds the signed-in user's tasks in
// memory, in arrival order, and re-derives the unfinished-count summary from
// that local state on every render.
//
// All network calls run as tea.Cmd functions so the UI loop never blocks;
// their completion messages are the only place local task state changes.
package tui
