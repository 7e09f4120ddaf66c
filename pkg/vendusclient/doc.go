// Package vendusclient is the entry point for constructing a Vendus API client
// that implements the vendus.API interface.
//
// Quick start
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
//
//	  api, err := vendusclient.NewWithAPIKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  client, err := api.Clients().Find(ctx, 12, nil)
//	  if err != nil {
//	    log.Printf("lookup failed: %v", api.Errors())
//	    return
//	  }
//	  log.Println(client.Name)
//
//	  // Reads that fall back to default values instead of returning errors.
//	  units := vendus.Lenient(api.Units()).Get(ctx, nil)
//	  log.Printf("%d units", len(units))
//	}
//
// Constructing a client performs no network I/O. Each endpoint operation
// issues exactly one HTTP request; there are no retries.
package vendusclient
