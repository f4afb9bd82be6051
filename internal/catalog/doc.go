// Package catalog proxies the external music provider.
//
// The [Service] interface exposes two read paths: a bounded, paginated
// aggregation of the provider's global chart ([Service.ListCatalog]) and a
// single-track lookup ([Service.GetSong]). Records are normalized into
// [tunebox/internal/models.Song] so the provider schema never leaks past this
// package.
//
// Nothing here persists: the server re-fetches per request, and the caching
// story belongs to the client state layer. Failure policy is all-or-nothing —
// one bad page poisons the whole aggregation and surfaces a single fetch error.
package catalog
