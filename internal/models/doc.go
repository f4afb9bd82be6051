// Package models defines domain entities and persistence interfaces for the tunebox playlist service.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects: lightweight structs crossing the API boundary
//   - [Song] : Normalized catalog entry projected from the provider's track record
//   - [Summary] : Public identity projection of a user (never includes the digest)
//
// 2. Persistent Entities: database-backed models with full lifecycle management
//   - [User] : User accounts with a salted password digest
//
// Persistent entities implement the [Model] interface providing ID generation,
// timestamps and validation. The Repository[T] interface defines standard CRUD
// operations for database access. Songs are deliberately NOT persistent: the
// catalog is proxied from the provider per request, and caching is the client's
// concern.
package models
