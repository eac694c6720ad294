// Package logstore keeps an in-memory record of auth tool activity.
//
// The dispatcher appends one entry per invocation and the logs resource
// renders the entries as plain text. This stands in for the log-storage
// collaborator a production deployment would plug in behind the same
// interface.
package logstore
