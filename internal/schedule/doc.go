// Package schedule renders and writes the cron file that drives unattended
// curation runs.
package schedule
