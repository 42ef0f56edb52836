// Package preflight provides readiness checks for the external services
// and filesystem paths that curation runs depend on.
//
// The CLI "curator status" command and the HTTP API's status endpoint use
// RunAll to display service health before anyone kicks off a run. Individual
// check functions (CheckLibrary, CheckDirectoryAccess) are exported for
// callers that only care about one dependency.
//
// The suggestion backend check is gated by its config URL -- an unset URL
// means the AI path is disabled and the check is skipped.
package preflight
