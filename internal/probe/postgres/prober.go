package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ajsierra/launchpad/internal/probe"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Prober implements the probe.Prober interface for PostgreSQL.
type Prober struct{}

// New creates a new PostgreSQL prober.
func New() *Prober {
	return &Prober{}
}

// Probe connects to the environment, pings it and collects server metadata.
func (p *Prober) Probe(ctx context.Context, dsn string) (*probe.Report, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.MaxConns = 2
	cfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	start := time.Now()
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	latency := time.Since(start)

	report := &probe.Report{
		Database: cfg.ConnConfig.Database,
		Latency:  latency,
	}

	if err := pool.QueryRow(ctx, queryServerVersion).Scan(&report.ServerVersion); err != nil {
		return nil, fmt.Errorf("server version: %w", err)
	}

	if err := pool.QueryRow(ctx, queryDatabaseSize).Scan(&report.SizeBytes); err != nil {
		return nil, fmt.Errorf("database size: %w", err)
	}

	if err := pool.QueryRow(ctx, queryActiveConns).Scan(&report.ActiveConns); err != nil {
		return nil, fmt.Errorf("active connections: %w", err)
	}

	return report, nil
}
