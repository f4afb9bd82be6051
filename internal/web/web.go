// Package web implements an HTMX-based web application mirroring the TUI functionality.
//
// # HTMX Web Application Implementation Plan
//
// # Architecture
//
// The web app replicates the TUI's catalog browser and liked-songs views using
// server-side rendering with HTMX for dynamic updates. Each view corresponds to
// a template and handler:
//
//  1. Catalog: Server-rendered song grid backed by GET /music
//  2. Song Detail: HTMX partial swap with the preview <audio> element
//  3. Liked Songs: Filtered grid over the session's liked set
//  4. Account: Signup/login forms posting to the JSON API, profile editing
//
// Core Components
//
//   - HTTP Server: reuses the server package's BasicRouter and middleware
//   - Service Integration: same accounts.Service and catalog.Service as the API
//   - Session Management: the JWT session token carried in a cookie instead of
//     a bearer header; liked songs in localStorage exactly as the state
//     package's key contract describes (authToken, user, likedSongs, musicList)
//
// Routes
//
//	GET  /                 → Catalog view (public)
//	GET  /songs/{id}       → HTMX partial: song detail + audio preview
//	GET  /liked            → Liked songs view (requires session)
//	GET  /account          → Signup/login forms
//	GET  /account/profile  → Profile editing (requires session)
//
// Templates
//
//   - base.html: Layout with navigation, auth status
//   - catalog.html: Song grid with hx-get on cards
//   - song.html: Partial template with the <audio> preview player
//   - liked.html: Grid filtered to the liked set
//   - account.html: Auth forms posting to /signup and /login
//
// # State Management
//
// The browser owns playback and liked-set state, mirroring the client state
// contract: the catalog caches under musicList, the liked set toggles through
// localStorage, and logout drops authToken and user while liked songs survive.
// The server stays stateless beyond the credential store.
//
// Implementation Tasks
//
//  1. Template structure with HTMX integration
//  2. Cookie adapter in front of the Authenticate middleware
//  3. Catalog handler rendering the aggregated chart
//  4. Song detail partial with preview playback
//  5. Liked view reading the like set from the request
//  6. Account forms wired to the existing JSON routes
//
// # Testing Strategy
//
// Use httptest:
//   - MockCatalog from the testing package for song data
//   - In-memory sqlite for account flows
//   - Validate HTMX headers and partial response structure
package web
