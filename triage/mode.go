package triage

import "fmt"

// QueueMode selects how equal-priority patients are ordered.
// FIFO serves the earliest-inserted first, LIFO the latest-inserted first.
// The mode applies per entry at insertion time, never retroactively.
type QueueMode string

const (
	ModeFIFO QueueMode = "fifo"
	ModeLIFO QueueMode = "lifo"
)

// ValidQueueModes is the set of recognized tie-break mode names.
var ValidQueueModes = map[QueueMode]bool{ModeFIFO: true, ModeLIFO: true}

// ParseQueueMode parses a mode name. Empty string defaults to FIFO.
func ParseQueueMode(s string) (QueueMode, error) {
	switch QueueMode(s) {
	case "":
		return ModeFIFO, nil
	case ModeFIFO:
		return ModeFIFO, nil
	case ModeLIFO:
		return ModeLIFO, nil
	default:
		return "", fmt.Errorf("unknown queue mode %q", s)
	}
}
