// Package notifications delivers save-workflow events via pluggable notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. WithLogger layers console surfacing on top so every user-visible
// status ("saved and sorted", "description required", write failures) reaches
// the terminal regardless of push configuration.
//
// Extend this package if you need alternative transports; the workflow depends
// only on the Service interface.
package notifications
