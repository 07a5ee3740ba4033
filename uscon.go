// Package uscon renders the US Constitution as a static site with
// progressive-enhancement search. A build-time generator normalizes a
// canonical JSON data file into static HTML, a search index, and a
// plain-text export; a thin serve layer filters index records against
// user-selected criteria mirrored in the URL query string.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, goquery/).
package uscon
