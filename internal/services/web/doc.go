// Package web owns the browser-facing landing page service.
//
// It composes the page modules behind one root handler, adds the health and
// metrics endpoints, and runs the HTTP server lifecycle. The page itself is
// static markup; motion comes from the wasm client when it is deployed.
package web
