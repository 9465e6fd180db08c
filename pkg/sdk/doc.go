// Package cvrdex provides an HTTP client for a remote cvrdex deployment,
// the Danish company registry lookup API.
//
//	client := cvrdex.NewClient("https://cvr.example.com",
//	    cvrdex.WithAPIKey(os.Getenv("CVRDEX_API_KEY")),
//	)
//
//	company, err := client.Lookup(ctx, 28856636)
//	matches, err := client.SearchName(ctx, "Novo Nordisk")
//
// Lookup errors map to the package sentinels; check with errors.Is:
//
//	if errors.Is(err, cvrdex.ErrNotFound) { ... }
package cvrdex
