package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ajsierra/launchpad/internal/config"
	"github.com/ajsierra/launchpad/internal/probe"
	"github.com/ajsierra/launchpad/internal/secrets"
	"github.com/google/uuid"
)

// SaveFunc persists the configuration. Injectable so tests don't touch
// the real home directory.
type SaveFunc func(*config.Config) error

// Service coordinates application-level operations between the TUI,
// the environment registry, the secrets store and the prober.
type Service struct {
	cfg    *config.Config
	prober probe.Prober
	store  secrets.Store
	save   SaveFunc
}

// NewService creates a new application service.
func NewService(cfg *config.Config, prober probe.Prober, store secrets.Store, save SaveFunc) *Service {
	if save == nil {
		save = config.Save
	}
	return &Service{cfg: cfg, prober: prober, store: store, save: save}
}

// Environments returns the registered environments, ordered per the
// given sort mode ("name" or "host").
func (s *Service) Environments(sortMode string) []config.Environment {
	envs := make([]config.Environment, len(s.cfg.Environments))
	copy(envs, s.cfg.Environments)

	switch sortMode {
	case "host":
		sort.SliceStable(envs, func(i, j int) bool {
			if envs[i].Host != envs[j].Host {
				return envs[i].Host < envs[j].Host
			}
			return envs[i].Name < envs[j].Name
		})
	default:
		sort.SliceStable(envs, func(i, j int) bool {
			return envs[i].Name < envs[j].Name
		})
	}

	return envs
}

// AddEnvironment parses a DSN, registers the environment and stores its
// password, if any, in the secrets store. Returns the new environment.
func (s *Service) AddEnvironment(dsn string) (*config.Environment, error) {
	env, password, err := config.ParseDSN(dsn)
	if err != nil {
		return nil, &ErrRegistry{Cause: err}
	}

	if s.cfg.HasEnvironment(env.Name) {
		return nil, &ErrRegistry{Cause: fmt.Errorf("environment %q already registered", env.Name)}
	}

	env.ID = uuid.NewString()

	if password != "" {
		if err := s.store.Set(env.ID, password); err != nil {
			return nil, &ErrRegistry{Cause: err}
		}
	}

	s.cfg.AddEnvironment(env)
	if err := s.save(s.cfg); err != nil {
		return nil, &ErrConfig{Cause: err}
	}

	return &env, nil
}

// RemoveEnvironment drops an environment and its stored secret.
func (s *Service) RemoveEnvironment(id string) error {
	if !s.cfg.RemoveEnvironment(id) {
		return &ErrRegistry{Cause: fmt.Errorf("unknown environment %q", id)}
	}

	if err := s.store.Delete(id); err != nil {
		return &ErrRegistry{Cause: err}
	}

	if err := s.save(s.cfg); err != nil {
		return &ErrConfig{Cause: err}
	}

	return nil
}

// SetDefault marks an environment as the default.
func (s *Service) SetDefault(id string) error {
	if s.cfg.FindEnvironment(id) == nil {
		return &ErrRegistry{Cause: fmt.Errorf("unknown environment %q", id)}
	}

	s.cfg.Preferences.DefaultEnvironment = id
	if err := s.save(s.cfg); err != nil {
		return &ErrConfig{Cause: err}
	}

	return nil
}

// SetSortMode persists the launchpad sort mode preference.
func (s *Service) SetSortMode(mode string) error {
	s.cfg.Preferences.SortMode = mode
	if err := s.save(s.cfg); err != nil {
		return &ErrConfig{Cause: err}
	}
	return nil
}

// ProbeEnvironment resolves the environment's credentials and runs a
// health probe against it.
func (s *Service) ProbeEnvironment(ctx context.Context, id string) (*probe.Report, error) {
	env := s.cfg.FindEnvironment(id)
	if env == nil {
		return nil, &ErrRegistry{Cause: fmt.Errorf("unknown environment %q", id)}
	}

	password, err := s.store.Get(env.ID)
	if err != nil && !errors.Is(err, secrets.ErrNotFound) {
		return nil, &ErrProbe{Environment: env.Name, Cause: err}
	}

	report, err := s.prober.Probe(ctx, env.DSN(password))
	if err != nil {
		return nil, &ErrProbe{Environment: env.Name, Cause: err}
	}

	return report, nil
}

// DefaultEnvironment returns the preferred environment, or nil.
func (s *Service) DefaultEnvironment() *config.Environment {
	return config.DefaultEnvironment(s.cfg)
}

// Config exposes the underlying configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}
