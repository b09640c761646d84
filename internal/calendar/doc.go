// Package calendar provides a thin Google Calendar client for the calendar
// tools, plus the document formatter that renders events as markdown.
//
// Authentication uses a pre-obtained OAuth2 bearer token injected per call;
// there is no token storage or refresh. All operations target the primary
// calendar. Updates are read-modify-write over the full event document, so
// concurrent writers race and the last one wins.
package calendar
