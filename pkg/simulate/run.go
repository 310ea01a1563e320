package simulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
	"github.com/dmitrymomot/cachemapset/pkg/logger"
)

// Stats counts what happened during a replay.
type Stats struct {
	Gets    int
	Hits    int
	Misses  int
	Sets    int
	Loads   int // sets issued by read-through misses
	Deletes int
	Clears  int
	Len     int // entries left at the end
}

// HitRatio returns Hits/Gets, or 0 when there were no gets.
func (s Stats) HitRatio() float64 {
	if s.Gets == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Gets)
}

// Run replays ops against m.
func Run(m cache.Map[string, string], ops []Op, readThrough bool) Stats {
	var s Stats
	for _, op := range ops {
		switch op.Kind {
		case OpGet:
			s.Gets++
			if _, ok := m.Get(op.Key); ok {
				s.Hits++
				continue
			}
			s.Misses++
			if readThrough {
				m.Set(op.Key, op.Value)
				s.Loads++
			}
		case OpHas:
			m.Has(op.Key)
		case OpSet:
			m.Set(op.Key, op.Value)
			s.Sets++
		case OpDelete:
			if m.Delete(op.Key) {
				s.Deletes++
			}
		case OpClear:
			m.Clear()
			s.Clears++
		}
	}
	s.Len = m.Len()
	return s
}

// Report is the outcome of replaying a trace against one policy.
type Report struct {
	Policy   cache.Policy
	Capacity int
	Stats    Stats
	Elapsed  time.Duration
}

// Compare replays tr against each policy and logs one line per policy.
func Compare(ctx context.Context, log *slog.Logger, tr Trace, policies []cache.Policy) ([]Report, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(policies))
	for _, p := range policies {
		m, err := cache.New[string, string](p, tr.Capacity)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		stats := Run(m, tr.Ops, tr.ReadThrough)
		r := Report{Policy: p, Capacity: m.Cap(), Stats: stats, Elapsed: time.Since(start)}
		reports = append(reports, r)

		log.InfoContext(ctx, "replay finished",
			logger.Component("simulate"),
			slog.String("trace", tr.Name),
			logger.Policy(string(p)),
			logger.Capacity(r.Capacity),
			slog.Int("gets", stats.Gets),
			slog.Int("hits", stats.Hits),
			slog.Int("misses", stats.Misses),
			logger.HitRatio(stats.HitRatio()),
			logger.Duration(r.Elapsed),
		)
	}
	return reports, nil
}
