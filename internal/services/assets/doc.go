// Package assetsvc implements the asset registry: metadata records keyed by
// fungible identifier in an ordered store namespace.
//
// Listing walks the store in key byte order, which places every Coin before
// every Token. Sorted returns identifier value order instead, where Tokens
// come first. Every successful Register and Remove is appended to the
// runtime's change feed.
//
// Example:
//
//	svc, _ := assetsvc.New(rt)
//	_, _ = svc.Register(ctx, assetsvc.Asset{ID: fungible.Coin("uluna"), Symbol: "LUNA", Decimals: 6})
//	coin := fungible.KindCoin
//	coins, _ := svc.List(ctx, assetsvc.ListOptions{Kind: &coin, Filter: `json.decimals == 6.0`})
package assetsvc
