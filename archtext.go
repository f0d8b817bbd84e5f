// Package archtext extracts plain text from monthly news-archive pages and
// normalizes it for language-model consumption. It resolves fields through
// ordered locator fallbacks, decomposes archive pages into per-article
// records, and cleans the extracted text with a fixed chain of rewrite rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package archtext
