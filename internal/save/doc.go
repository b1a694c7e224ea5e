// Package save implements the workflow that turns a description typed during
// review into a persisted sidecar annotation.
//
// One Save call is one session: validate, stamp the candidate with the
// current playback position, detect timestamp collisions against the freshly
// loaded sidecar, suspend on the Prompter until the user picks proceed,
// refresh, or cancel, then rewrite the file sorted. Failures surface through
// the notifications service and the returned Result; nothing panics across
// the package boundary.
package save
