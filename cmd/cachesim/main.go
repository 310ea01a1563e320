// Command cachesim replays a workload against each eviction policy and logs
// the hit ratio of every run.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV            development or production (log format and level)
//	CACHESIM_POLICIES  comma separated policies to compare
//	CACHESIM_TRACE     YAML trace to replay; a Zipf trace is generated if empty
//	CACHESIM_DUMP      write the generated trace to this path
//	CACHESIM_OPS       generated trace length
//	CACHESIM_KEYS      distinct keys in the generated trace
//	CACHESIM_SEED      generator seed
//	CACHE_CAPACITY     capacity used for generated traces
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dmitrymomot/cachemapset/pkg/cache"
	"github.com/dmitrymomot/cachemapset/pkg/config"
	"github.com/dmitrymomot/cachemapset/pkg/logger"
	"github.com/dmitrymomot/cachemapset/pkg/simulate"
)

var errNoPolicies = errors.New("cachesim: no policies to compare")

// sourceKey carries the trace origin so every record in a run names it.
type sourceKey struct{}

type appConfig struct {
	Env      string   `env:"APP_ENV" envDefault:"development"`
	Policies []string `env:"CACHESIM_POLICIES" envDefault:"fifo,lifo,lru,lfu" envSeparator:","`
	Trace    string   `env:"CACHESIM_TRACE"`
	Dump     string   `env:"CACHESIM_DUMP"`
	Ops      int      `env:"CACHESIM_OPS" envDefault:"10000"`
	Keys     int      `env:"CACHESIM_KEYS" envDefault:"512"`
	Seed     uint64   `env:"CACHESIM_SEED" envDefault:"1"`

	Cache cache.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "cachesim"),
		logger.WithContextValue("source", sourceKey{}),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.ErrorContext(ctx, "cachesim failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg appConfig) error {
	source := "generated"
	if cfg.Trace != "" {
		source = cfg.Trace
	}
	ctx = context.WithValue(ctx, sourceKey{}, source)

	policies := make([]cache.Policy, 0, len(cfg.Policies))
	for _, name := range cfg.Policies {
		p, err := cache.ParsePolicy(name)
		if err != nil {
			return err
		}
		policies = append(policies, p)
	}
	if len(policies) == 0 {
		return errNoPolicies
	}

	tr, err := loadTrace(cfg)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "trace ready",
		slog.String("trace", tr.Name),
		slog.Int("ops", len(tr.Ops)),
		slog.Bool("read_through", tr.ReadThrough),
	)

	reports, err := simulate.Compare(ctx, log, tr, policies)
	if err != nil {
		return err
	}

	best := reports[0]
	for _, r := range reports[1:] {
		if r.Stats.HitRatio() > best.Stats.HitRatio() {
			best = r
		}
	}
	log.InfoContext(ctx, "best policy",
		logger.Policy(string(best.Policy)),
		logger.HitRatio(best.Stats.HitRatio()),
	)
	return nil
}

func loadTrace(cfg appConfig) (simulate.Trace, error) {
	if cfg.Trace != "" {
		f, err := os.Open(cfg.Trace)
		if err != nil {
			return simulate.Trace{}, err
		}
		defer f.Close()
		return simulate.LoadTrace(f)
	}

	tr, err := simulate.Generate(cfg.Ops, cfg.Keys, cfg.Cache.Capacity, cfg.Seed)
	if err != nil {
		return simulate.Trace{}, err
	}
	if cfg.Dump != "" {
		f, err := os.Create(cfg.Dump)
		if err != nil {
			return simulate.Trace{}, err
		}
		if err := tr.Encode(f); err != nil {
			return simulate.Trace{}, errors.Join(err, f.Close())
		}
		if err := f.Close(); err != nil {
			return simulate.Trace{}, err
		}
	}
	return tr, nil
}
