// Package annotation implements the sidecar annotation format and its
// file-backed store.
//
// A sidecar file holds one annotation per line as
// "HH:MM:SS\tdescription\tshotType", sorted ascending by timestamp, with at
// most one record per distinct timestamp. The Store re-reads the file fresh
// on every save and rewrites it whole on persist; there is no caching across
// operations and no locking inside this package.
//
// Treat this package as the single source of truth for sidecar semantics;
// collision policy lives in the collision and save packages.
package annotation
