package subsums

import "fmt"

// Number is the set of element types an Enumerator accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Config configures an Enumerator.
//
// The zero value is the default configuration.
type Config struct {
	// FrontierLimit caps the number of entries the frontier may hold.
	// 0 means no limit.
	FrontierLimit int
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.FrontierLimit < 0 {
		return fmt.Errorf("%w: frontier limit %d < 0", ErrInvalidConfig, cfg.FrontierLimit)
	}
	return nil
}

func configFrom(cfgs []Config) (Config, error) {
	var cfg Config
	switch len(cfgs) {
	case 0:
	case 1:
		cfg = cfgs[0]
	default:
		return cfg, fmt.Errorf("%w: at most one configuration expected, have %d",
			ErrIllegalArguments, len(cfgs))
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// Stats reports the work an Enumerator has done so far.
type Stats struct {
	Produced    int // number of sums produced
	Pushed      int // number of frontier pushes
	FrontierLen int // current number of frontier entries
	FrontierMax int // largest number of frontier entries held at once
	Elements    int // number of input elements known to the enumerator
}
