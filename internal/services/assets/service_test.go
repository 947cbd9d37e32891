package assetsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
	cfgpkg "github.com/voydwalkr/fungible/internal/config"
	"github.com/voydwalkr/fungible/internal/runtime"
	"github.com/voydwalkr/fungible/pkg/fungible"
	logpkg "github.com/voydwalkr/fungible/pkg/log"
)

func newServiceForTest(t *testing.T) *Service {
	t.Helper()
	cfg := cfgpkg.Default()
	cfg.DataDir = t.TempDir()
	cfg.Registry.MaxListLimit = 3
	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: logpkg.NewNopLogger()})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	svc, err := New(rt)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func ids(as []Asset) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID.String()
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

func TestRegisterGet(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()

	in := Asset{ID: fungible.Coin("uluna"), Symbol: "LUNA", Decimals: 6, Labels: map[string]string{"chain": "terra"}}
	out, err := svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.CreatedAtMs == 0 || out.CreatedAtMs != out.UpdatedAtMs {
		t.Fatalf("timestamps not set: %+v", out)
	}
	got, err := svc.Get(ctx, fungible.Coin("uluna"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != in.ID || got.Symbol != "LUNA" || got.Decimals != 6 || got.Labels["chain"] != "terra" {
		t.Fatalf("unexpected record %+v", got)
	}
	// same payload under the other variant is a different identifier
	if _, err := svc.Get(ctx, fungible.Token("uluna")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for Token(uluna), got %v", err)
	}
}

func TestRegisterOverwritePreservesCreation(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	clock := time.UnixMilli(1_000)
	svc.now = func() time.Time { return clock }

	if _, err := svc.Register(ctx, Asset{ID: fungible.Token("whDAI"), Symbol: "DAI", Decimals: 8}); err != nil {
		t.Fatalf("register: %v", err)
	}
	clock = time.UnixMilli(2_000)
	out, err := svc.Register(ctx, Asset{ID: fungible.Token("whDAI"), Symbol: "DAI", Decimals: 18})
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if out.CreatedAtMs != 1_000 || out.UpdatedAtMs != 2_000 || out.Decimals != 18 {
		t.Fatalf("unexpected overwrite result %+v", out)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newServiceForTest(t)
	for _, a := range []Asset{
		{ID: fungible.Coin("")},
		{ID: fungible.Token("")},
		{ID: fungible.Coin("x"), Decimals: MaxDecimals + 1},
	} {
		if _, err := svc.Register(context.Background(), a); !errors.Is(err, ErrInvalidAsset) {
			t.Errorf("register %+v: expected ErrInvalidAsset, got %v", a, err)
		}
	}
}

func TestRemove(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	id := fungible.Coin("uusd")
	if err := svc.Remove(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove absent: %v", err)
	}
	if _, err := svc.Register(ctx, Asset{ID: id}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Remove(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after remove: %v", err)
	}
}

func seed(t *testing.T, svc *Service) {
	t.Helper()
	for _, a := range []Asset{
		{ID: fungible.Token("b"), Decimals: 18},
		{ID: fungible.Coin("uusd"), Decimals: 6},
		{ID: fungible.Token("a"), Decimals: 8},
		{ID: fungible.Coin("uluna"), Decimals: 6},
	} {
		if _, err := svc.Register(context.Background(), a); err != nil {
			t.Fatalf("register %v: %v", a.ID, err)
		}
	}
}

func TestListStoreOrder(t *testing.T) {
	svc := newServiceForTest(t)
	seed(t, svc)
	ctx := context.Background()

	got, err := svc.List(ctx, ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// MaxListLimit caps at 3; store order puts Coins first
	want := []string{"Coin(uluna)", "Coin(uusd)", "Token(a)"}
	if !equalStrings(ids(got), want) {
		t.Fatalf("list: got %v want %v", ids(got), want)
	}
}

func TestSortedValueOrder(t *testing.T) {
	svc := newServiceForTest(t)
	seed(t, svc)

	got, err := svc.Sorted(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("sorted: %v", err)
	}
	want := []string{"Token(a)", "Token(b)", "Coin(uluna)"}
	if !equalStrings(ids(got), want) {
		t.Fatalf("sorted: got %v want %v", ids(got), want)
	}
}

func TestListByKindAndFilter(t *testing.T) {
	svc := newServiceForTest(t)
	seed(t, svc)
	ctx := context.Background()

	token := fungible.KindToken
	got, err := svc.List(ctx, ListOptions{Kind: &token})
	if err != nil {
		t.Fatalf("list tokens: %v", err)
	}
	if !equalStrings(ids(got), []string{"Token(a)", "Token(b)"}) {
		t.Fatalf("tokens: %v", ids(got))
	}

	got, err = svc.List(ctx, ListOptions{Filter: `json.decimals == 6.0`})
	if err != nil {
		t.Fatalf("list filter: %v", err)
	}
	if !equalStrings(ids(got), []string{"Coin(uluna)", "Coin(uusd)"}) {
		t.Fatalf("filtered: %v", ids(got))
	}

	got, err = svc.List(ctx, ListOptions{Filter: `name.startsWith("u")`, Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if !equalStrings(ids(got), []string{"Coin(uluna)"}) {
		t.Fatalf("limited: %v", ids(got))
	}

	if _, err := svc.List(ctx, ListOptions{Filter: `kind ==`}); err == nil {
		t.Fatalf("expected filter compile error")
	}
}

func TestListCanceled(t *testing.T) {
	svc := newServiceForTest(t)
	seed(t, svc)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.List(ctx, ListOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestMutationsRecordChanges(t *testing.T) {
	svc := newServiceForTest(t)
	ctx := context.Background()
	id := fungible.Token("terra1abc")
	if _, err := svc.Register(ctx, Asset{ID: id, Symbol: "ABC"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Remove(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, id); err == nil {
		t.Fatalf("expected not found")
	}

	page, err := svc.changes.Read(changelog.ReadOptions{})
	if err != nil {
		t.Fatalf("read changes: %v", err)
	}
	if len(page.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %+v", page.Changes)
	}
	if page.Changes[0].Op != changelog.OpAssetPut || page.Changes[1].Op != changelog.OpAssetRemove {
		t.Fatalf("unexpected ops %+v", page.Changes)
	}
	if *page.Changes[1].ID != id {
		t.Fatalf("unexpected id %v", page.Changes[1].ID)
	}
}
