// Package pagecopy scrapes the main content or a data table out of a web
// page and publishes the result to the system clipboard.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, clipboard/).
package pagecopy
