// Package docean provides types, interfaces, and helpers for working with
// the DigitalOcean API v2.
//
// # Overview
//
// The docean package defines the domain types (e.g., Droplet, App, Account,
// Snapshot, Action) and the interfaces for resource-oriented clients (e.g.,
// DropletsClient, AppsClient). A concrete implementation of these clients is
// provided by the doclient package, which wires configuration, transport, and
// authentication. Most consumers should import doclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/docean/pkg/docean"
//	  "github.com/fivetwenty-io/docean/pkg/doclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := doclient.NewWithToken(ctx, "dop_v1_example")
//	  if err != nil { log.Fatal(err) }
//
//	  droplets, err := cli.Droplets().List(ctx, docean.NewListParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = droplets
//	}
//
// # Queries
//
// Use ListParams to express common list options (page, per_page, tag_name,
// resource_type). List responses carry the API's pagination metadata (Links,
// Meta) as plain data; the client never traverses pages on its own.
//
// # Errors
//
// API errors are represented by ResponseError, which carries the HTTP status,
// the API's machine-readable error ID, and the request ID for support
// tickets. Helpers such as IsNotFound, IsUnauthorized, and IsRateLimited make
// it easy to branch on common cases. Transport failures and malformed
// response envelopes are surfaced as distinct wrapped errors.
//
// # Resources
//
// Resource clients follow a consistent pattern across DigitalOcean resources:
// one HTTP round trip per method, with the response payload decoded out of
// its named envelope field (singular for single items, plural for
// collections). No caching, batching, or retry loops are layered on top.
package docean
