// Package limitdoc renders service limit tables and command transcripts as
// deterministic text for embedding in documentation.
//
// Both renderers are pure: they take materialized data, never touch the
// network, files or processes, and return the same [Text] for the same input.
// Every function is safe for concurrent use.
//
// # Limit Tables
//
// [RenderTable] renders [LimitRow] values through a [Layout] as a
// reStructuredText simple table. Rows are sorted by name, column widths are
// the widest of the header and every cell, and a nil default renders as
// [Unlimited]:
//
//	text, err := limitdoc.RenderTable(limitdoc.LimitLayout("|check|"), rows)
//
// [WriteTable] renders the same rows in any [Format]: RST, Markdown, CSV,
// TSV, HTML, JSON or YAML. Use [ParseFormat] to convert a flag value and
// [CheckMark] for the boolean column token of a format.
//
// A [Catalog] groups limits by service. [LoadCatalog] reads one from YAML or
// JSON and [Catalog.Render] emits a section per service.
//
// # Transcripts
//
// [Summarize] shortens a [Transcript] according to a [Policy]. Lines longer
// than the cap are cut and marked. Transcripts longer than MaxFullLines keep
// a window of lines from each end plus the first line matched by each anchor
// [Predicate]:
//
//	p := limitdoc.DefaultPolicy()
//	p.Anchors = limitdoc.ListingAnchors()
//	text := limitdoc.Summarize(limitdoc.NewTranscript("awslimitchecker -l", out), p)
//
// [LoadPolicy] reads a policy from YAML.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrColumnMismatch] — a row's cells do not match the header
//   - [ErrInvalidPolicy] — malformed summary policy
//   - [ErrInvalidCatalog] — malformed limits catalog
package limitdoc
