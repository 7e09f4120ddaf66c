package vendus

import (
	"context"
)

// LenientEndpoint wraps an Endpoint so reads never fail: Find returns nil,
// Get an empty slice and Paginate an empty page when the request fails. The
// failure details remain available through API.Errors. Writes still return
// their error.
type LenientEndpoint[T any] struct {
	endpoint Endpoint[T]
}

// Lenient wraps endpoint with default-value behaviour for reads.
func Lenient[T any](endpoint Endpoint[T]) *LenientEndpoint[T] {
	return &LenientEndpoint[T]{endpoint: endpoint}
}

// Find returns the resource, or nil if the request failed.
func (l *LenientEndpoint[T]) Find(ctx context.Context, id int, params Params) *T {
	resource, err := l.endpoint.Find(ctx, id, params)
	if err != nil {
		return nil
	}

	return resource
}

// Get returns the collection, or an empty slice if the request failed.
func (l *LenientEndpoint[T]) Get(ctx context.Context, params Params) []T {
	resources, err := l.endpoint.Get(ctx, params)
	if err != nil || resources == nil {
		return []T{}
	}

	return resources
}

// Paginate returns one page, or {Data: [], Total: 0} if the request failed.
func (l *LenientEndpoint[T]) Paginate(ctx context.Context, params Params, page, perPage int) Page[T] {
	result, err := l.endpoint.Paginate(ctx, params, page, perPage)
	if err != nil || result == nil {
		return Page[T]{Data: []T{}, Total: 0}
	}

	if result.Data == nil {
		result.Data = []T{}
	}

	return *result
}

// Create posts a new resource and returns any error unchanged.
func (l *LenientEndpoint[T]) Create(ctx context.Context, params Params) (*T, error) {
	return l.endpoint.Create(ctx, params) //nolint:wrapcheck // propagated as-is
}

// Update patches a resource and returns any error unchanged.
func (l *LenientEndpoint[T]) Update(ctx context.Context, id int, params Params) (*T, error) {
	return l.endpoint.Update(ctx, id, params) //nolint:wrapcheck // propagated as-is
}
