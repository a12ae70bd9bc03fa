// Package doclient provides the primary entry point for constructing a
// DigitalOcean API v2 client that implements the docean.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the docean package. Most applications
// should import doclient to build a client, then use the returned
// docean.Client to access resource-specific clients, for example Droplets(),
// Apps(), Snapshots(), etc.
//
// Quick start
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
//
//	  // Minimal: a personal access token against the production API.
//	  cli, err := doclient.NewWithToken(ctx, "dop_v1_example")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = doclient.New(ctx, &docean.Config{
//	    AccessToken: "dop_v1_example",
//	    UserAgent:   "my-tool/1.0",
//	    RetryMax:    3, // opt in to retrying 429s and 5xx
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the docean.Client interface
//	  droplets, err := cli.Droplets().List(ctx, docean.NewListParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = droplets
//	}
//
// # Authentication
//
// Every request carries the configured personal access token as a bearer
// token. There is no token refresh or OAuth flow: tokens are long-lived
// credentials managed in the DigitalOcean control panel.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithEndpoint that wrap New with the appropriate configuration.
package doclient
