// ABOUTME: Package documentation for the store package
// ABOUTME: Explains the document model and available implementations

// Package store provides persistence for tasks and identity accounts.
//
// Tasks are stored as independent documents: each has a store-assigned
// opaque id, an owning user (email), a name, and a finished flag. There is
// no cross-document constraint; per-user name uniqueness is a client-side
// concern and is deliberately not enforced here.
//
// Two implementations are provided:
//
//   - SQLiteStore: the production store backed by modernc.org/sqlite with
//     WAL mode and automatic schema creation.
//   - MockStore: an in-memory implementation for tests.
//
// Both satisfy the Store interface, which composes TaskStore and
// AccountStore so the task API and the identity gateway can each depend on
// only the slice they use.
package store
