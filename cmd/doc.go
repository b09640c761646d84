// Package cmd implements the command-line interface for eventscout.
//
// This package provides the following commands:
//   - serve: Start the MCP server providing Calendar and Ticketmaster tools
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
