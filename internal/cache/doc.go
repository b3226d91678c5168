// Package cache provides a generic, thread-safe LRU cache.
//
// The renderer keeps derived, read-only data in it: projected gamut
// boundaries keyed by plane and raster size, and gamma lookup tables
// keyed by exponent. Both are pure functions of their key, so a cached
// value is interchangeable with a freshly built one.
//
//	c := cache.New[string, int](100)
//	v := c.GetOrCreate("key", func() int { return 42 })
package cache
