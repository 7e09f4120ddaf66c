package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	. "github.com/codetech/vendus-go/internal/client"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&vendus.Config{APIKey: "test-key", BaseURL: server.URL + "/ws/v1.1/"})
	require.NoError(t, err)

	return client
}

func TestEndpoint_Find(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ws/v1.1/clients/12", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "full", r.URL.Query().Get("mode"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":12,"name":"ACME","fiscal_id":"500000000"}`))
	})

	found, err := client.Clients().Find(context.Background(), 12, vendus.Params{"mode": "full"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(12), found.ID)
	assert.Equal(t, "ACME", found.Name)
	assert.Equal(t, "500000000", found.FiscalID)
}

func TestEndpoint_Find_ErrorResponse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"code":"E1","message":"bad"}]}`))
	})

	found, err := client.Clients().Find(context.Background(), 99, nil)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, vendus.IsNotFound(err))
	assert.Contains(t, err.Error(), "finding client 99")
	assert.Equal(t, []string{"E1: bad"}, client.Errors())

	assert.Nil(t, vendus.Lenient(client.Clients()).Find(context.Background(), 99, nil))
}

func TestEndpoint_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/v1.1/products/units", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		_, _ = w.Write([]byte(`[{"id":1,"title":"Unidade","default":true},{"id":2,"title":"Kg"}]`))
	})

	units, err := client.Units().Get(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Unidade", units[0].Title)
	assert.True(t, units[0].Default)
	assert.Equal(t, "Kg", units[1].Title)

	again, err := client.Units().Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, units, again)
}

func TestEndpoint_Get_EmptyCollection(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := client.Products().Get(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestEndpoint_Get_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := New(&vendus.Config{APIKey: "test-key", BaseURL: baseURL})
	require.NoError(t, err)

	_, err = client.Products().Get(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, vendus.IsTransport(err))
	assert.NotContains(t, err.Error(), "test-key")

	errs := client.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "transport: ")

	assert.Equal(t, []vendus.Product{}, vendus.Lenient(client.Products()).Get(context.Background(), nil))
}

func TestEndpoint_Paginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   []string
		expected int
	}{
		{name: "header present", header: []string{"42"}, expected: 42},
		{name: "header absent", header: nil, expected: 0},
		{name: "header not a number", header: []string{"abc"}, expected: 0},
		{name: "first value wins", header: []string{"7", "9"}, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/ws/v1.1/products", r.URL.Path)

				query := r.URL.Query()
				assert.Equal(t, "test-key", query.Get("api_key"))
				assert.Equal(t, "2", query.Get("page"))
				assert.Equal(t, "10", query.Get("per_page"))
				assert.Equal(t, "on", query.Get("status"))

				for _, value := range tt.header {
					w.Header().Add("X-Paginator-Items", value)
				}

				_, _ = w.Write([]byte(`[{"id":5,"title":"Café","gross_price":"1.20"}]`))
			})

			page, err := client.Products().Paginate(context.Background(), vendus.Params{"status": "on"}, 2, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page.Total)
			require.Len(t, page.Data, 1)
			assert.Equal(t, "Café", page.Data[0].Title)
			assert.True(t, decimal.RequireFromString("1.2").Equal(page.Data[0].GrossPrice))
		})
	}
}

func TestEndpoint_Paginate_OverridesPageParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"3"}, r.URL.Query()["page"])
		assert.Equal(t, []string{"5"}, r.URL.Query()["per_page"])
		_, _ = w.Write([]byte(`[]`))
	})

	page, err := client.Products().Paginate(context.Background(), vendus.Params{"page": 1, "per_page": 100}, 3, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestEndpoint_Paginate_Failure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"code":"A001","message":"Invalid API key"}]}`))
	})

	_, err := client.Documents().Paginate(context.Background(), nil, 1, 25)
	require.Error(t, err)
	assert.True(t, vendus.IsUnauthorized(err))
	assert.Equal(t, []string{"A001: Invalid API key"}, client.Errors())

	page := vendus.Lenient(client.Documents()).Paginate(context.Background(), nil, 1, 25)
	assert.Equal(t, vendus.Page[vendus.Document]{Data: []vendus.Document{}, Total: 0}, page)
}

func TestEndpoint_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ws/v1.1/documents", r.URL.Path)
		assert.Equal(t, url.Values{"api_key": {"test-key"}}, r.URL.Query())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "FT", r.PostForm.Get("type"))
		assert.Equal(t, "P1", r.PostForm.Get("items[0][reference]"))
		assert.Equal(t, "2", r.PostForm.Get("items[0][qty]"))
		assert.Equal(t, "P2", r.PostForm.Get("items[1][reference]"))
		assert.Equal(t, "1", r.PostForm.Get("items[1][qty]"))
		assert.Equal(t, "1", r.PostForm.Get("client[send_email]"))
		assert.Empty(t, r.PostForm.Get("api_key"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":300,"number":"FT 01P2024/1","type":"FT","amount_gross":"12.30"}`))
	})

	doc, err := client.Documents().Create(context.Background(), vendus.Params{
		"type": "FT",
		"items": []vendus.Params{
			{"reference": "P1", "qty": 2},
			{"reference": "P2", "qty": 1},
		},
		"client": vendus.Params{"send_email": true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), doc.ID)
	assert.Equal(t, "FT 01P2024/1", doc.Number)
	assert.True(t, decimal.RequireFromString("12.3").Equal(doc.AmountGross))
}

func TestEndpoint_Create_Failure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"A001","message":"Missing name"},{"code":1002,"message":"Invalid fiscal id"}]}`))
	})

	created, err := vendus.Lenient(client.Clients()).Create(context.Background(), vendus.Params{"fiscal_id": "1"})
	require.Error(t, err)
	assert.Nil(t, created)

	var errResp *vendus.ResponseError
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)
	assert.Equal(t, []string{"A001: Missing name", "1002: Invalid fiscal id"}, client.Errors())
}

func TestEndpoint_Update(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/ws/v1.1/products/7", r.URL.Path)
		assert.Equal(t, url.Values{"api_key": {"test-key"}}, r.URL.Query())

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2.50", r.PostForm.Get("gross_price"))
		assert.Equal(t, "off", r.PostForm.Get("status"))

		_, _ = w.Write([]byte(`{"id":7,"title":"Chá","gross_price":2.5,"status":"off"}`))
	})

	product, err := client.Products().Update(context.Background(), 7, vendus.Params{
		"gross_price": "2.50",
		"status":      "off",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "off", product.Status)
}

func TestEndpoint_Update_Failure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"code":"E1","message":"bad"}]}`))
	})

	product, err := client.Products().Update(context.Background(), 3, vendus.Params{"title": "x"})
	require.Error(t, err)
	assert.Nil(t, product)

	var errResp *vendus.ResponseError
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.StatusCode)
	assert.Equal(t, []string{"E1: bad"}, client.Errors())

	client.SetErrors(nil)

	product, err = vendus.Lenient(client.Products()).Update(context.Background(), 3, vendus.Params{"title": "x"})
	require.ErrorAs(t, err, &errResp)
	assert.Nil(t, product)
	assert.Equal(t, []string{"E1: bad"}, client.Errors())
}

func TestEndpoint_ParamsOverrideAPIKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"other-key"}, r.URL.Query()["api_key"])
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.PaymentMethods().Get(context.Background(), vendus.Params{"api_key": "other-key"})
	require.NoError(t, err)
	assert.Equal(t, "test-key", client.DefaultQueryParams().Get("api_key"))
}

func TestEndpoint_DecodeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"not-a-number"`))
	})

	_, err := client.PaymentMethods().Find(context.Background(), 1, nil)
	require.Error(t, err)
	assert.True(t, vendus.IsDecode(err))
	assert.Empty(t, client.Errors())
}

func TestEndpoint_SuccessKeepsPreviousErrors(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool

	fail.Store(true)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Units().Get(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{"http_500: Internal Server Error"}, client.Errors())

	fail.Store(false)

	_, err = client.Units().Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"http_500: Internal Server Error"}, client.Errors())
}

func TestEndpoint_Lenient(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"title":"Numerário"}]`))
	})

	endpoint, ok := client.PaymentMethods().(*Endpoint[vendus.PaymentMethod])
	require.True(t, ok)

	methods := endpoint.Lenient().Get(context.Background(), nil)
	require.Len(t, methods, 1)
	assert.Equal(t, "Numerário", methods[0].Title)
}
