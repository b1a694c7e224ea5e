// Package player supplies the current playback timestamp to the save
// workflow.
//
// The Mpv source talks to a running mpv instance over its JSON IPC socket;
// Fixed pins the position for flag-driven saves and tests. An unavailable
// position is the caller's problem to default, matching the workflow rule
// that a missing player yields 00:00:00.
package player
