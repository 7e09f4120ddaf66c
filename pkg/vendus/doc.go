// Package vendus provides types, interfaces, and helpers for working with the
// Vendus invoicing API (v1.1).
//
// # Overview
//
// The vendus package defines the record types (Client, Product, Unit,
// Document, PaymentMethod), the generic Endpoint interface used for every
// resource collection, and the error types returned by the client. A
// concrete implementation is provided by the vendusclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/codetech/vendus-go/pkg/vendus"
//	  "github.com/codetech/vendus-go/pkg/vendusclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  api, err := vendusclient.NewWithAPIKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := api.Products().Paginate(ctx, nil, 1, 50)
//	  if err != nil { log.Fatal(err) }
//	  log.Printf("%d products", page.Total)
//	}
//
// # Parameters
//
// Params is a free-form mapping. For reads it is merged into the query
// string together with the api_key; for Create and Update it becomes the
// form-encoded body. Nested values use bracket notation:
//
//	api.Documents().Create(ctx, vendus.Params{
//	  "type":  "FT",
//	  "items": []vendus.Params{{"reference": "P1", "qty": 2}},
//	})
//
// # Errors
//
// Every Endpoint operation returns an error. Use errors.As with
// *ResponseError, *TransportError or *DecodeError, or the IsNotFound,
// IsTransport and IsDecode helpers. The entries of the most recent failure
// are also kept on the client (API.Errors) formatted as "<code>: <message>".
//
// Callers that prefer default values for reads can wrap an endpoint with
// Lenient: Find yields nil, Get an empty slice and Paginate an empty page
// on failure, while Create and Update still return their error.
package vendus
