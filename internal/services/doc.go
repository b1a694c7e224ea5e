// Package services defines shared utilities consumed by the save workflow and
// its collaborators.
//
// Key responsibilities:
//   - Context helpers that stamp save session IDs and media paths for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (validation vs io vs transient) with errors.Is.
//
// Use these helpers when wiring new workflow logic so error handling and
// observability stay uniform across commands.
package services
