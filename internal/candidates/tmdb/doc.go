// Package tmdb provides the minimal TMDB API client used for candidate
// discovery.
//
// It authenticates requests and exposes single-page movie search plus a
// configuration ping used by preflight checks. Responses are strongly typed
// so the aggregation layer can construct candidate values at the boundary.
// Options allow tests to supply custom HTTP clients without modifying
// production code.
package tmdb
