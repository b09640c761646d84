// Package calendar_tools provides MCP tools for Google Calendar event CRUD
// on the primary calendar: list/search with opaque page tokens, get, create,
// read-modify-write update, and delete. Results are JSON documents rendered
// by the calendar package's formatter. Upstream API failures are returned to
// the caller as tool errors, never swallowed.
package calendar_tools
