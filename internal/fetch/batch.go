package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Part is one of the requests issued for every key of a batch.
type Part[K comparable, V any] struct {
	Name  string
	Fetch func(ctx context.Context, key K) ([]V, error)
}

// BatchResult holds the settled outcome of every (key, part) pair. A failed
// pair has an empty slice in Values and its error in Failures.
type BatchResult[K comparable, V any] struct {
	Keys     []K
	Values   map[K]map[string][]V
	Failures map[K]map[string]error
}

// Get returns the values fetched for key by part. Absent pairs yield nil.
func (r BatchResult[K, V]) Get(key K, part string) []V {
	return r.Values[key][part]
}

// Failed reports whether the (key, part) request failed.
func (r BatchResult[K, V]) Failed(key K, part string) bool {
	_, ok := r.Failures[key][part]
	return ok
}

// Empty reports whether every pair came back with no values.
func (r BatchResult[K, V]) Empty() bool {
	for _, parts := range r.Values {
		for _, vs := range parts {
			if len(vs) > 0 {
				return false
			}
		}
	}
	return true
}

// Batch issues every part for every key and waits for all of them to settle.
// Each request is caught on its own: a failure degrades to an empty result
// for that pair and never cancels or blocks the others. limit bounds the
// number of requests in flight; zero or less means unbounded.
func Batch[K comparable, V any](ctx context.Context, keys []K, parts []Part[K, V], limit int) BatchResult[K, V] {
	res := BatchResult[K, V]{
		Keys:     append([]K(nil), keys...),
		Values:   make(map[K]map[string][]V, len(keys)),
		Failures: make(map[K]map[string]error),
	}
	for _, key := range keys {
		res.Values[key] = make(map[string][]V, len(parts))
		for _, part := range parts {
			res.Values[key][part.Name] = []V{}
		}
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, key := range keys {
		for _, part := range parts {
			key, part := key, part
			g.Go(func() error {
				values, err := part.Fetch(ctx, key)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if res.Failures[key] == nil {
						res.Failures[key] = make(map[string]error)
					}
					res.Failures[key][part.Name] = err
					return nil
				}
				if values != nil {
					res.Values[key][part.Name] = values
				}
				return nil
			})
		}
	}

	_ = g.Wait()
	return res
}
