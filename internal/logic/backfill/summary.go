package backfill

import (
	"sync"

	"drift-indexer-sol/internal/logic/progress"
)

type summaryCounter struct {
	mu sync.Mutex
	s  Summary
}

func newSummaryCounter() *summaryCounter {
	return &summaryCounter{}
}

func (c *summaryCounter) add(o slotOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case o.alreadyDone:
		c.s.AlreadyDone++
	case o.unavailable:
		c.s.Unavailable++
	case o.status == progress.SlotFailed:
		c.s.Failed++
	default:
		c.s.Processed++
		c.s.Records += o.records
	}
}

func (c *summaryCounter) fill(s *Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s.Processed = c.s.Processed
	s.AlreadyDone = c.s.AlreadyDone
	s.Unavailable = c.s.Unavailable
	s.Failed = c.s.Failed
	s.Records = c.s.Records
}
