package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
)

// Endpoint implements vendus.Endpoint for one resource collection. The path
// is fixed at construction.
type Endpoint[T any] struct {
	client *Client
	path   string
	name   string
}

func newEndpoint[T any](client *Client, path, name string) *Endpoint[T] {
	return &Endpoint[T]{
		client: client,
		path:   path,
		name:   name,
	}
}

// Path implements vendus.Endpoint.Path.
func (e *Endpoint[T]) Path() string {
	return e.path
}

// Lenient returns the default-value wrapper of this endpoint.
func (e *Endpoint[T]) Lenient() *vendus.LenientEndpoint[T] {
	return vendus.Lenient[T](e)
}

// Find implements vendus.Endpoint.Find.
func (e *Endpoint[T]) Find(ctx context.Context, id int, params vendus.Params) (*T, error) {
	resp, err := e.client.httpClient.Get(ctx, e.resourcePath(id), e.query(params))
	if err != nil {
		e.captureErrors(err)

		return nil, fmt.Errorf("finding %s %d: %w", e.name, id, err)
	}

	var resource T

	err = e.decode(resp.Body, &resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// Get implements vendus.Endpoint.Get.
func (e *Endpoint[T]) Get(ctx context.Context, params vendus.Params) ([]T, error) {
	resp, err := e.client.httpClient.Get(ctx, e.path, e.query(params))
	if err != nil {
		e.captureErrors(err)

		return nil, fmt.Errorf("listing %ss: %w", e.name, err)
	}

	resources := []T{}

	err = e.decode(resp.Body, &resources)
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// Paginate implements vendus.Endpoint.Paginate.
func (e *Endpoint[T]) Paginate(ctx context.Context, params vendus.Params, page, perPage int) (*vendus.Page[T], error) {
	query := e.query(params)
	query.Set(constants.PageParam, strconv.Itoa(page))
	query.Set(constants.PerPageParam, strconv.Itoa(perPage))

	resp, err := e.client.httpClient.Get(ctx, e.path, query)
	if err != nil {
		e.captureErrors(err)

		return nil, fmt.Errorf("listing %ss page %d: %w", e.name, page, err)
	}

	result := &vendus.Page[T]{
		Data:  []T{},
		Total: paginatorTotal(resp.Headers.Values(constants.PaginatorItemsHeader)),
	}

	err = e.decode(resp.Body, &result.Data)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Create implements vendus.Endpoint.Create.
func (e *Endpoint[T]) Create(ctx context.Context, params vendus.Params) (*T, error) {
	resp, err := e.client.httpClient.PostForm(ctx, e.path, e.client.DefaultQueryParams(), params.Values())
	if err != nil {
		e.captureErrors(err)

		return nil, fmt.Errorf("creating %s: %w", e.name, err)
	}

	var resource T

	err = e.decode(resp.Body, &resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// Update implements vendus.Endpoint.Update.
func (e *Endpoint[T]) Update(ctx context.Context, id int, params vendus.Params) (*T, error) {
	resp, err := e.client.httpClient.PatchForm(ctx, e.resourcePath(id), e.client.DefaultQueryParams(), params.Values())
	if err != nil {
		e.captureErrors(err)

		return nil, fmt.Errorf("updating %s %d: %w", e.name, id, err)
	}

	var resource T

	err = e.decode(resp.Body, &resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

func (e *Endpoint[T]) resourcePath(id int) string {
	return e.path + "/" + strconv.Itoa(id)
}

// query merges params over the default query params; params win.
func (e *Endpoint[T]) query(params vendus.Params) url.Values {
	query := e.client.DefaultQueryParams()
	for key, values := range params.Values() {
		query[key] = values
	}

	return query
}

// captureErrors stores the entries carried by err on the client.
func (e *Endpoint[T]) captureErrors(err error) {
	messages := vendus.Messages(err)
	if messages == nil {
		messages = []string{err.Error()}
	}

	e.client.SetErrors(messages)

	if e.client.logger != nil {
		e.client.logger.Debug("request failed", map[string]interface{}{
			"resource": e.path,
			"errors":   messages,
		})
	}
}

// decode unmarshals a successful response. An empty body leaves out untouched.
func (e *Endpoint[T]) decode(body []byte, out interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	err := json.Unmarshal(body, out)
	if err != nil {
		return &vendus.DecodeError{Target: e.name, Body: body, Err: err}
	}

	return nil
}

// paginatorTotal reads the first X-Paginator-Items value; 0 when absent or
// not an integer.
func paginatorTotal(values []string) int {
	if len(values) == 0 {
		return 0
	}

	total, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil {
		return 0
	}

	return total
}
