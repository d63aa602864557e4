// Package coursefetch provides helpers for a course-content downloader.
// It extracts downloadable supplement links (slides, datasets, transcripts)
// from course pages, sanitizes filenames and normalizes URLs so a
// downloader can save every resource under a safe, distinct name.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package coursefetch
