package fuelline

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/naming"
)

// Builder can build balancers.
type Builder struct {
	host   host.Host
	cfg    Config
	logger logr.Logger
}

// MakeBuilder creates a builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		cfg:    DefaultConfig(),
		logger: logr.Discard(),
	}
}

// WithHost sets the host the balancer runs in.
func (b Builder) WithHost(h host.Host) Builder {
	b.host = h
	return b
}

// WithConfig sets the configuration of the balancer.
func (b Builder) WithConfig(cfg Config) Builder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger of the balancer.
func (b Builder) WithLogger(logger logr.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a balancer sitting on the given part. The balancer starts
// inactive; call Start or Activate to turn it on.
func (b Builder) Build(name string, part host.PartID) *Balancer {
	naming.NameMustBeValid(name)

	if b.host == nil {
		panic("fuelline: host is required")
	}

	return &Balancer{
		name:   name,
		host:   b.host,
		part:   part,
		cfg:    b.cfg,
		logger: b.logger.WithName(name),
		status: StatusInactive,
	}
}
