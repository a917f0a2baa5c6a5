// Package cache provides a small generic LRU cache.
//
//	widths := cache.New[string, float64](1024)
//	w := widths.GetOrCreate("hello", func() float64 { return measure("hello") })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
