// Package common provides shared helpers for MCP tool handlers:
// credential resolution for Google API calls and instrumentation wrappers
// that record metrics and audit logs around tool invocations.
package common
