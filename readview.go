// Package readview provides a distraction-free reading view service.
// It fetches a user-submitted URL with SSRF protections, extracts the
// main article content from the page, stores it under a generated
// identifier, and serves a sanitized rendering with detected chapters.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package readview
