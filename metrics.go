package fock

import (
	"sync"
	"time"
)

/*
Metrics accumulates counters over Apply calls. One Metrics value may be shared
by Apply calls running on different goroutines.
*/
type Metrics struct {
	mu sync.RWMutex

	Applications  int64
	Transitions   int64
	Forbidden     int64
	Pruned        int64
	Contributions int64

	TotalApplyTime   time.Duration
	AverageApplyTime time.Duration
	LastApplyTime    time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// applyTally is the per-call scratch counter, folded into Metrics once at the end.
type applyTally struct {
	transitions   int64
	forbidden     int64
	pruned        int64
	contributions int64
}

func (m *Metrics) record(startTime time.Time, tally applyTally) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Applications++
	m.Transitions += tally.transitions
	m.Forbidden += tally.forbidden
	m.Pruned += tally.pruned
	m.Contributions += tally.contributions

	m.TotalApplyTime += duration
	m.LastApplyTime = duration
	m.AverageApplyTime = m.TotalApplyTime / time.Duration(m.Applications)
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"applications":    m.Applications,
		"transitions":     m.Transitions,
		"forbidden":       m.Forbidden,
		"pruned":          m.Pruned,
		"contributions":   m.Contributions,
		"avg_apply_time":  m.AverageApplyTime.Microseconds(),
		"last_apply_time": m.LastApplyTime.Microseconds(),
	}
}
