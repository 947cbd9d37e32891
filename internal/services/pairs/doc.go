// Package pairsvc implements the trading-pair index: records keyed by an
// ordered (base, quote) identifier couple.
//
// Keys carry the base discriminant, base payload, quote discriminant and
// quote payload as separate store segments, so every pair sharing a base (or
// only a base kind) is one contiguous prefix range.
//
// Example:
//
//	svc, _ := pairsvc.New(rt)
//	p := fungible.NewPair(fungible.Coin("uluna"), fungible.Token("whDAI"))
//	_, _ = svc.Create(ctx, pairsvc.PairInfo{Pair: p, Contract: "terra1pool"})
//	quotes, _ := svc.ListByBase(ctx, fungible.Coin("uluna"), pairsvc.ListOptions{})
package pairsvc
