// Package cheapshark provides an HTTP client for the CheapShark deals API.
//
// # Overview
//
// The client covers the read-only endpoints bargain needs and mirrors their
// payloads as transport types. Prices stay as the strings upstream sends;
// Parsed* helpers convert them to decimals on demand.
//
// # API Endpoints
//
//   - GET deals?pageSize=N&storeID=ID: current deals, optionally for one store
//   - GET games?title=Q&limit=N: title search hits (no pricing beyond "cheapest")
//   - GET games?id=ID: game info plus every current store offer
//   - GET stores: store catalog
//
// Purchase links are built by RedirectURL and never requested by the client.
//
// # Client Usage
//
//	client, err := cheapshark.NewClient(cheapshark.DefaultAPIURL,
//		cheapshark.WithTimeout(10*time.Second),
//		cheapshark.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	deals, err := client.FetchDeals(ctx, cheapshark.DealsQuery{StoreID: "1", PageSize: 20})
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: bargain/0.1
//   - Treat any non-2xx status as a *StatusError
//   - Return wrapped errors naming the step that failed
//
// WithLogger installs LoggingTransport, which tags each request with an xid
// request id and logs status and latency through zap.
package cheapshark
