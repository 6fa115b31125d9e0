// Package middleware holds the HTTP middleware mounted by the REST router.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It is assignable to
// chi's middleware signature.
type Middleware = func(http.Handler) http.Handler
