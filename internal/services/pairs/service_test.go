package pairsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/voydwalkr/fungible/internal/changelog"
	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/runtime"
	"github.com/voydwalkr/fungible/internal/store"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

func newServiceForTest(t *testing.T) (*Service, *runtime.Runtime) {
	t.Helper()
	cfg := cfgpkg.Default()
	cfg.DataDir = t.TempDir()
	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: logpkg.NewNopLogger()})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	svc, err := New(rt)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, rt
}

func names(ps []PairInfo) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Pair.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCreateGetCompositeKey(t *testing.T) {
	svc, rt := newServiceForTest(t)
	ctx := context.Background()
	p := fungible.NewPair(fungible.Coin("uluna"), fungible.Token("whDAI"))

	if _, err := svc.Create(ctx, PairInfo{Pair: p, Contract: "terra1pool"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(ctx, p)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Pair != p || got.Contract != "terra1pool" {
		t.Fatalf("unexpected record %+v", got)
	}

	// the stored key decodes back to the same pair
	m := store.NewMap[fungible.Pair, PairInfo](rt.DB(), rt.Config().Registry.PairsNamespace, store.PairKeys)
	keys, err := m.Keys(nil, 0)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != p {
		t.Fatalf("decoded keys %v", keys)
	}

	// reversed pair is a separate entry
	if _, err := svc.Get(ctx, p.Reverse()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected reverse to be absent, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newServiceForTest(t)
	ctx := context.Background()
	bad := []fungible.Pair{
		fungible.NewPair(fungible.Coin("a"), fungible.Coin("a")),
		fungible.NewPair(fungible.Coin(""), fungible.Token("x")),
		fungible.NewPair(fungible.Token("x"), fungible.Token("")),
	}
	for _, p := range bad {
		if _, err := svc.Create(ctx, PairInfo{Pair: p}); !errors.Is(err, ErrInvalidPair) {
			t.Errorf("create %v: expected ErrInvalidPair, got %v", p, err)
		}
	}
	// same payload, different kinds is a valid pair
	if _, err := svc.Create(ctx, PairInfo{Pair: fungible.NewPair(fungible.Coin("a"), fungible.Token("a"))}); err != nil {
		t.Fatalf("create Coin(a)/Token(a): %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	svc, _ := newServiceForTest(t)
	ctx := context.Background()
	p := fungible.NewPair(fungible.Coin("uluna"), fungible.Coin("uusd"))
	if _, err := svc.Create(ctx, PairInfo{Pair: p}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, PairInfo{Pair: p}); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if err := svc.Remove(ctx, p); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, p); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove: %v", err)
	}

	page, err := svc.changes.Read(changelog.ReadOptions{})
	if err != nil {
		t.Fatalf("read changes: %v", err)
	}
	if len(page.Changes) != 2 || page.Changes[0].Op != changelog.OpPairCreate || page.Changes[1].Op != changelog.OpPairRemove {
		t.Fatalf("duplicate create and missing remove must not be recorded: %+v", page.Changes)
	}
	if *page.Changes[0].Pair != p {
		t.Fatalf("unexpected pair %v", page.Changes[0].Pair)
	}
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	pairs := []fungible.Pair{
		fungible.NewPair(fungible.Coin("uluna"), fungible.Token("whDAI")),
		fungible.NewPair(fungible.Coin("uluna"), fungible.Coin("uusd")),
		fungible.NewPair(fungible.Coin("ulunab"), fungible.Coin("uusd")),
		fungible.NewPair(fungible.Token("whDAI"), fungible.Coin("uluna")),
		fungible.NewPair(fungible.Coin("uusd"), fungible.Token("astro")),
	}
	for _, p := range pairs {
		if _, err := svc.Create(context.Background(), PairInfo{Pair: p, Contract: "c-" + p.Quote.Payload()}); err != nil {
			t.Fatalf("create %v: %v", p, err)
		}
	}
}

func TestListByBase(t *testing.T) {
	svc, _ := newServiceForTest(t)
	seed(t, svc)

	got, err := svc.ListByBase(context.Background(), fungible.Coin("uluna"), ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Coin(ulunab) shares a byte prefix with Coin(uluna) but not a segment
	want := []string{"Coin(uluna)/Coin(uusd)", "Coin(uluna)/Token(whDAI)"}
	if !equalStrings(names(got), want) {
		t.Fatalf("got %v want %v", names(got), want)
	}
}

func TestListByBaseKind(t *testing.T) {
	svc, _ := newServiceForTest(t)
	seed(t, svc)

	got, err := svc.ListByBaseKind(context.Background(), fungible.KindToken, ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !equalStrings(names(got), []string{"Token(whDAI)/Coin(uluna)"}) {
		t.Fatalf("token bases: %v", names(got))
	}
	got, err = svc.ListByBaseKind(context.Background(), fungible.KindCoin, ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// base payloads are length-prefixed segments: shorter bases sort first
	if !equalStrings(names(got), []string{"Coin(uusd)/Token(astro)", "Coin(uluna)/Coin(uusd)"}) {
		t.Fatalf("coin bases: %v", names(got))
	}
}

func TestListFilter(t *testing.T) {
	svc, _ := newServiceForTest(t)
	seed(t, svc)

	got, err := svc.List(context.Background(), ListOptions{Filter: `quote_kind == "Token"`})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Coin(uusd)/Token(astro)", "Coin(uluna)/Token(whDAI)"}
	if !equalStrings(names(got), want) {
		t.Fatalf("got %v want %v", names(got), want)
	}

	got, err = svc.List(context.Background(), ListOptions{Filter: `json.contract == "c-uusd"`})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("contract filter: %v", names(got))
	}
}
