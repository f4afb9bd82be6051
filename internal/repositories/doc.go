// Package repositories implements SQLite persistence for the credential store.
//
// [UserRepository] handles user account CRUD with email-based lookups. Deletes
// are hard deletes: account removal is irreversible, so no deleted_at
// bookkeeping exists. Consistency relies on SQLite's per-row
// atomicity only; concurrent updates to the same user are last-writer-wins.
//
// Sequence numbers provide stable, human-readable ordering (e.g., user #42)
// independent of UUIDs and creation timestamps. The [NextSequence] function
// atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
