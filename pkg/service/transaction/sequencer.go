package transaction

import (
	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/domain/account"
)

// Sequencer hands out per-date transaction numbers. Counters start at 1 for
// each calendar date and never reset for the lifetime of the Sequencer.
type Sequencer struct {
	counts map[civil.Date]int
}

// NewSequencer creates a Sequencer with no dates seen.
func NewSequencer() *Sequencer {
	return &Sequencer{counts: make(map[civil.Date]int)}
}

// Next advances the counter for date and returns the formatted id.
// Past 99 the suffix simply grows to three digits.
func (s *Sequencer) Next(date civil.Date) string {
	s.counts[date]++
	return account.FormatID(date, s.counts[date])
}

// Count returns how many ids were issued for date.
func (s *Sequencer) Count(date civil.Date) int {
	return s.counts[date]
}

// Reset forgets every counter.
func (s *Sequencer) Reset() {
	clear(s.counts)
}
