// Package candidates gathers movie candidates from the metadata search
// service and merges the AI-suggested and keyword-derived pools.
//
// Candidates are plain values constructed once at the search boundary;
// nothing downstream re-reads raw search payloads. The keyword sweep runs
// sequentially with a global result cap, the title lookup fans out over a
// bounded worker pool, and both deduplicate by the source identifier.
// Merging keeps AI-suggested candidates as an ordered prefix so the matcher
// can attribute provenance by position.
package candidates
