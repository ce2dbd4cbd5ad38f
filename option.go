package alphabet

// Option configures alphabet construction.
type Option interface{ apply(cfg *config) }

type config struct {
	logf func(mess string, args ...interface{})
}

func (cfg *config) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(cfg)
		}
	}
}

func buildConfig(opts []Option) (cfg config) {
	cfg.apply(opts...)
	return cfg
}

// WithLogf sets a printf-style function that receives construction
// diagnostics, currently one line for every repeated symbol in the input.
// Nothing is logged by default.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(cfg *config) {
	cfg.logf = logfn
}

// reportDuplicates logs every repeated symbol along with the position that
// reverse lookup will resolve it to, as chosen by winner.
func reportDuplicates[T comparable](cfg config, syms []Symbol[T], winner func(sym Symbol[T], de *DuplicateError) int) {
	if cfg.logf == nil {
		return
	}
	for sym, de := range duplicates(syms) {
		cfg.logf("alphabet: %v; Index resolves to %v", de, winner(sym, de))
	}
}
