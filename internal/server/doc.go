// Package server exposes the user record operations over HTTP.
//
// Routing uses chi. [New] builds a [Server] whose router mounts:
//
//	POST   /users        create a user
//	GET    /users        list users
//	GET    /users/{id}   fetch one user
//	PUT    /users/{id}   update email and name
//	DELETE /users/{id}   audited delete
//	GET    /deletions    read the deletion audit log
//	GET    /healthz      liveness probe
//
// Handlers translate storage outcomes into status codes: absent records map
// to 404, uniqueness violations to 409, payload validation failures to 422,
// and everything else to 500. A commit failure is labeled "commit_ambiguous"
// so clients know the row state is indeterminate and a blind retry could
// double-apply.
//
// Payload validation happens here with go-playground/validator, before the
// repository is called; the storage layer receives only validated plain
// values.
//
// Middleware attaches a uuid request id, logs each request, and rate limits
// with golang.org/x/time/rate.
package server
