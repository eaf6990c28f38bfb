// Package server provides HTTP routing, middleware, and the listener lifecycle for the web dashboard.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns internally, so a request with the
// wrong method is answered with 405 and an unknown path with 404.
//
// # Middleware
//
// [Logging] records method, path, status and duration for every request through charmbracelet/log.
// [Recover] turns a handler panic into a 500 response.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Server] binds its listener synchronously in [Server.Start], serves in the background, and reports
// unexpected serve errors on [Server.Errors] until [Server.Shutdown].
package server
