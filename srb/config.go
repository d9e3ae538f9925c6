package srb

import "github.com/sarchlab/fuelsim/host"

// Config is what a redistributor is set up with.
type Config struct {
	// Gravity converts the consumer's specific impulse into exhaust velocity.
	Gravity float64

	// MaxSegments limits how many parts above the managing part join the
	// chain. Zero means no limit.
	MaxSegments int
}

// DefaultConfig returns the configuration of a stock segmented booster.
func DefaultConfig() Config {
	return Config{
		Gravity: host.StandardGravity,
	}
}
