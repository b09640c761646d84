// Package ticketmaster_tools provides MCP tools for the Ticketmaster
// Discovery API: a concert search scoped to a time window, and a generic
// parameterized event search.
//
// The two tools fail differently on purpose. The concert search degrades to
// an empty list when the upstream request fails; the generic search returns
// a structured {"error": ...} record instead of results.
package ticketmaster_tools
