package tui

import "github.com/adikari/dailydesk/internal/service"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------
// Result messages carry the panel sequence token of the dispatch that
// produced them; stale tokens are dropped on arrival.

type weatherResultMsg struct {
	seq     int
	reading service.Reading
	err     error
}

type conversionResultMsg struct {
	seq        int
	conversion service.Conversion
	err        error
}

type quoteResultMsg struct {
	seq   int
	quote service.Quote
	err   error
}

// convertDebounceMsg fires when the converter's post-edit quiet period ends.
// Only the newest scheduled tick is honoured.
type convertDebounceMsg struct {
	seq int
}
