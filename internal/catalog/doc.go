// Package catalog journals persisted saves in SQLite.
//
// Sidecar files stay the durable store for annotations; the catalog only
// answers "what did I annotate, and when" across media files for the history
// command. A failed journal write is logged and never fails the save that
// produced it.
package catalog
