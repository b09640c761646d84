// Package ticketmaster provides a client for the Ticketmaster Discovery
// API along with the parsing, filtering, and extraction logic behind the
// concert search tools.
//
// The package offers two search surfaces:
//
//   - SearchConcerts: finds concerts falling completely within a set of
//     caller-supplied time windows. A single covering-window query is sent
//     upstream and results are filtered locally against the original
//     windows. Failures degrade to an empty result list.
//
//   - SearchEvents: a generic parameterized event search returning
//     lightweight summaries. Failures are returned to the caller.
//
// Schedule parsing treats the API's local dates and times as UTC and
// substitutes a fixed three-hour duration for events without an explicit
// end. Extracted details use the "N/A" sentinel for absent upstream data.
package ticketmaster
