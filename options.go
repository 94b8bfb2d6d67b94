package omap

// config collects constructor options before a map is built.
type config[K comparable, V any] struct {
	hasher Hasher[K]
	pairs  []Entry[K, V]
}

// Option configures a Map at construction time.
type Option[K comparable, V any] func(*config[K, V])

// WithHasher replaces the default hash function. The hasher must be
// deterministic and consistent with == on K.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(c *config[K, V]) {
		c.hasher = h
	}
}

// WithInitialData inserts the given pairs into the new map in the
// order given. A pair whose key was already seen is dropped, matching
// Insert's first-wins policy.
func WithInitialData[K comparable, V any](pairs ...Entry[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.pairs = append(c.pairs, pairs...)
	}
}
