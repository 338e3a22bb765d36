// Package grpcserver provides the gRPC server implementation for the
// RouteGuide service.
//
// The server answers feature lookups and route statistics over an
// immutable feature catalog loaded at startup, and relays chat notes
// between concurrent RouteChat sessions through a single lock-guarded
// note log.
//
// # Server Lifecycle
//
// The server is started via [NewServer], which creates a gRPC server
// with health checking plus logging and recovery interceptors on both
// unary and streaming calls:
//
//	srv := grpcserver.NewServer(cat, logger)
//	srv.GRPCServer.Serve(listener)
//
// # Server Discovery
//
// When the server starts, it writes a server.json file containing
// connection information (address, port, PID) to the user's cache
// directory so the stop, status and client commands can find it
// without configuration.
//
// # Shared State
//
// GetFeature, ListFeatures and RecordRoute touch only the immutable
// catalog and per-call state and need no synchronization. RouteChat
// goes through [NoteLog.MatchAndAppend], which serializes the
// scan-then-append sequence under one mutex; matching notes are
// collected under the lock and written to the stream after release so
// a slow client never blocks other chat sessions.
package grpcserver
