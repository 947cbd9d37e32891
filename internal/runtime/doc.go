// Package runtime wires storage, config, logging and metrics into a
// single-node registry instance. Registry services are built on top of it.
//
// Example:
//
//	cfg := config.Default()
//	cfg.DataDir = "./data"
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	assets, _ := assetsvc.New(rt)
//	_, _ = assets.Register(ctx, assetsvc.Asset{ID: fungible.Coin("uluna"), Symbol: "LUNA", Decimals: 6})
package runtime
