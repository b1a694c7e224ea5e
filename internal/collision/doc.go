// Package collision defines the resolution choices offered when two
// annotations share a timestamp and the pure function that applies a choice.
//
// The resolver has no hidden state: the save workflow owns collision
// detection and re-detection, the UI layer owns obtaining the choice.
package collision
