// Package server provides HTTP routing, middleware, and the tunebox API surface.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Route Table
//
// Account routes (error bodies are {"message": ...}):
//
//	POST   /signup           create an account, returns token + identity
//	DELETE /signup?email=    remove an account by email
//	POST   /login            authenticate, returns token + identity
//	PATCH  /change-password  bearer token required
//	PATCH  /update-user      bearer token required
//	DELETE /delete-user      bearer token required, password re-proof in body
//	GET    /users            list identities, digests excluded
//	DELETE /users/{id}       remove an account by id
//
// Catalog routes (error bodies are {"error": ...}):
//
//	GET /music       aggregated chart, pages of 50 up to the fetch cap
//	GET /music/{id}  single normalized song
//
// # Authentication
//
// The [Authenticate] middleware verifies bearer tokens and attaches claims to
// the request context; handlers that require a session read them back with
// [ClaimsFrom] and answer 401 when absent. Public routes ignore the context.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
