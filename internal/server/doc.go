// Package server provides the runtime plumbing for the eventscout MCP
// server: the shared ServerContext holding vendor clients and
// instrumentation, the streamable HTTP transport host, Kubernetes health
// probes, and the dedicated Prometheus metrics server.
//
// The Ticketmaster client is long-lived and injected at startup. Calendar
// clients are built per call from the request's bearer token and never
// cached; tests swap the factory to point clients at stub servers.
package server
