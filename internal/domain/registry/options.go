package registry

// Option applies a configuration option to the Registry.
type Option func(*Registry)

// WithDataDir resolves relative file names against dir.
func WithDataDir(dir string) Option {
	return func(r *Registry) {
		if dir != "" {
			r.dataDir = dir
		}
	}
}

// WithCities replaces the city -> file mapping. Names are normalized.
func WithCities(cities map[string]string) Option {
	return func(r *Registry) {
		if len(cities) == 0 {
			return
		}
		r.files = make(map[string]string, len(cities))
		for name, file := range cities {
			r.files[Normalize(name)] = file
		}
	}
}
