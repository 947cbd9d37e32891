// Package httpserver provides the REST gateway over the asset registry and
// the pair index, the change feed, plus health and Prometheus endpoints.
//
// Routes:
//
//	GET               /v1/healthz
//	GET               /v1/assets?kind=&filter=&limit=&order=store|value
//	GET, PUT, DELETE  /v1/assets/{id}            id as text, e.g. Token(whDAI)
//	GET               /v1/pairs?base=&kind=&filter=&limit=
//	GET, PUT, DELETE  /v1/pairs/{base}/{quote}
//	GET               /v1/changes?after=&limit=&wait_ms=
//	GET               /metrics
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s, _ := httpserver.New(rt, nil)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
