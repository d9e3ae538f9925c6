package srb

import (
	"github.com/go-logr/logr"

	"github.com/sarchlab/fuelsim/host"
	"github.com/sarchlab/fuelsim/sim/naming"
)

// Builder can build redistributors.
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

// WithHost sets the host the redistributor runs in.
func (b Builder) WithHost(h host.Host) Builder {
	b.host = h
	return b
}

// WithConfig sets the configuration.
func (b Builder) WithConfig(cfg Config) Builder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger logr.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates a redistributor managing the given engine segment.
func (b Builder) Build(name string, part host.PartID) *Redistributor {
	naming.NameMustBeValid(name)

	if b.host == nil {
		panic("srb: host is required")
	}

	return &Redistributor{
		name:   name,
		host:   b.host,
		part:   part,
		cfg:    b.cfg,
		logger: b.logger.WithName(name),
		status: StatusInactive,
	}
}
