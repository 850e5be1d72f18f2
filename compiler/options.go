package compiler

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Option defines option for altering the behavior of Compile and
// NChooseKBounds. See the descriptions of functions returning instances of
// this type for implemented options.
type Option func(*config) error

type config struct {
	encodeNChooseK bool
	rng            *rand.Rand
}

func newConfig(opts ...Option) (config, error) {
	var cfg config
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithNChooseKEncoding makes Compile encode n-choose-k constraints as
// nonlinear constraints instead of dropping them. By default they are
// dropped, since NChooseKBounds handles them as box bounds.
func WithNChooseKEncoding() Option {
	return func(cfg *config) error {
		cfg.encodeNChooseK = true
		return nil
	}
}

// WithRand sets the random source used by NChooseKBounds to shuffle
// forced-zero combinations, enabling deterministic reproduction of a
// legalization outcome. When unset the ambient process-wide source is used.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) error {
		if r == nil {
			return errors.New("rand source must not be nil")
		}
		cfg.rng = r
		return nil
	}
}
