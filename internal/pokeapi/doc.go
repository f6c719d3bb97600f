// Package pokeapi provides an HTTP client for the public PokeAPI catalog.
//
// # Overview
//
// Only two read-only calls are needed:
//
//   - ListReferences: GET {base}/pokemon?limit=N returns the ordered index of
//     {name, url} references
//   - FetchDetail: GET {url} returns one detail record
//
// The client does not retry or cache. Callers decide how many detail
// requests to run at once (see app.LoadCatalog).
//
// # Client Usage
//
//	client, err := pokeapi.NewClient("https://pokeapi.co/api/v2", 10*time.Second)
//	if err != nil {
//		return err
//	}
//	refs, err := client.ListReferences(ctx, 151)
//	if err != nil {
//		return err
//	}
//	detail, err := client.FetchDetail(ctx, refs[0].URL)
//
// # Types
//
// types.go mirrors only the fields of the PokeAPI schema that the catalog
// uses. Detail.Entity converts a detail record into a catalog.Entity.
package pokeapi
