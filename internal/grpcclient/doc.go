// Package grpcclient provides the client side of the RouteGuide service
// used by the routeguided client command.
//
// The client discovers a running server through the server.json info
// file (or the ROUTEGUIDED_SERVER environment variable), verifies it
// with a gRPC health check, and exposes the four RPCs over the domain
// types in internal/model. gRPC status codes are translated to
// user-friendly errors at this boundary.
package grpcclient
