// Package cache provides a small generic LRU cache.
//
// The renderer uses it to memoize shaped label widths, which are requested
// for every visible wall on every frame but only change when the text does.
//
//	widths := cache.New[string, float64](256)
//	w := widths.GetOrCreate("5.00 m", measure)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
