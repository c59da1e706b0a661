// Package format renders numbers, sizes, durations and relative times as
// human-readable strings, and extracts mentions from chat text.
//
// All functions are deterministic apart from TimeAgo, which reads the
// current time; use TimeAgoAt to pass the reference time explicitly.
package format
