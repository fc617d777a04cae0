package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/questline/internal/config"
	"github.com/KirkDiggler/questline/internal/content"
	"github.com/KirkDiggler/questline/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/orchestrators/progression"
	"github.com/KirkDiggler/questline/internal/pkg/clock"
	"github.com/KirkDiggler/questline/internal/pkg/idgen"
	"github.com/KirkDiggler/questline/internal/pkg/rng"
	"github.com/KirkDiggler/questline/internal/progression/breakthrough"
	"github.com/KirkDiggler/questline/internal/progression/statcap"
	"github.com/KirkDiggler/questline/internal/redis"
	sessionrepo "github.com/KirkDiggler/questline/internal/repositories/session"
)

func loadFeed(c *config.Config) (*content.Feed, error) {
	return content.Load(content.Options{
		Path:      c.ContentPath,
		BossChain: c.BossChain,
		Rebalance: c.Rebalance,
	})
}

// newRepository picks the redis store when an address is configured
func newRepository(c *config.Config) (sessionrepo.Repository, error) {
	if c.RedisAddr == "" {
		return sessionrepo.NewInMemory(), nil
	}

	client, err := redis.NewClient(c.RedisAddr, &redis.Options{
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("using redis session store", "addr", c.RedisAddr, "db", c.RedisDB)

	return sessionrepo.NewRedis(&sessionrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		TTL:    c.SessionTTL,
	})
}

// newRoller returns a seeded roller when a seed is set
func newRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return rng.NewSeeded(seed)
}

// gameOptions describes one game session
type gameOptions struct {
	feed    *content.Feed
	session *entities.Session
	name    string
	seed    uint64
	// instant drops the thinking and breakthrough delays
	instant bool
	// quiet skips the event log subscribers
	quiet bool
}

// newGame wires a progression service with its own event bus
func newGame(c *config.Config, opts gameOptions) (progression.Service, error) {
	bus := events.NewBus()
	if !opts.quiet {
		subscribeLoggers(bus)
	}

	roller := newRoller(opts.seed)
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: roller,
	})
	if err != nil {
		return nil, err
	}

	policy, err := statcap.New(statcap.DefaultConfig())
	if err != nil {
		return nil, err
	}

	thinking, overlay := c.ThinkingDelay, c.BreakthroughDelay
	if opts.instant {
		thinking, overlay = 0, 0
	}

	realClock := clock.New()
	return progression.NewOrchestrator(&progression.Config{
		Feed:              opts.feed,
		Engine:            adapter,
		EventBus:          bus,
		Scheduler:         realClock,
		Clock:             realClock,
		IDGenerator:       idgen.NewUUID(""),
		DiceRoller:        roller,
		Policy:            policy,
		Breakthrough:      breakthrough.New(nil),
		ThinkingDelay:     thinking,
		BreakthroughDelay: overlay,
		Session:           opts.session,
		CharacterName:     opts.name,
	})
}

// subscribeLoggers writes bus traffic to the debug log
func subscribeLoggers(bus events.EventBus) {
	for _, eventType := range []string{
		progression.EventStateChanged,
		rpgtoolkit.EventBattleStarted,
		rpgtoolkit.EventActionResolved,
		rpgtoolkit.EventBattleResolved,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			attrs := []any{"type", e.Type()}
			if s, ok := e.Source().(*entities.Session); ok {
				attrs = append(attrs, "reason", s.LastChange, "revision", s.Revision)
			}
			slog.Debug("event", attrs...)
			return nil
		})
	}
}
