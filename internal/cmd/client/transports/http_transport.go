package transports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// HTTPTransport implements RegistryTransport over the REST API.
type HTTPTransport struct {
	base   string
	client *http.Client
}

// NewHTTPTransport constructs a transport for the server at base, e.g.
// http://127.0.0.1:8080. A nil client uses http.DefaultClient.
func NewHTTPTransport(base string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{base: strings.TrimRight(base, "/"), client: client}
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := t.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &HTTPError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func assetPath(id fungible.Fungible) string {
	return "/v1/assets/" + url.PathEscape(id.String())
}

func pairPath(p fungible.Pair) string {
	return "/v1/pairs/" + url.PathEscape(p.Base.String()) + "/" + url.PathEscape(p.Quote.String())
}

func listQuery(kind *fungible.Kind, filter string, limit int) url.Values {
	q := url.Values{}
	if kind != nil {
		q.Set("kind", kind.String())
	}
	if filter != "" {
		q.Set("filter", filter)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// PutAsset registers a.
func (t *HTTPTransport) PutAsset(ctx context.Context, a assetsvc.Asset) (assetsvc.Asset, error) {
	body := map[string]any{"symbol": a.Symbol, "decimals": a.Decimals, "label": a.Label, "labels": a.Labels}
	var out assetsvc.Asset
	err := t.do(ctx, http.MethodPut, assetPath(a.ID), nil, body, &out)
	return out, err
}

// GetAsset looks up id.
func (t *HTTPTransport) GetAsset(ctx context.Context, id fungible.Fungible) (assetsvc.Asset, error) {
	var out assetsvc.Asset
	err := t.do(ctx, http.MethodGet, assetPath(id), nil, nil, &out)
	return out, err
}

// RemoveAsset deletes id.
func (t *HTTPTransport) RemoveAsset(ctx context.Context, id fungible.Fungible) error {
	return t.do(ctx, http.MethodDelete, assetPath(id), nil, nil, nil)
}

// ListAssets lists assets in store or value order.
func (t *HTTPTransport) ListAssets(ctx context.Context, q AssetQuery) ([]assetsvc.Asset, error) {
	v := listQuery(q.Kind, q.Filter, q.Limit)
	if q.ValueOrder {
		v.Set("order", "value")
	}
	var out struct {
		Assets []assetsvc.Asset `json:"assets"`
	}
	err := t.do(ctx, http.MethodGet, "/v1/assets", v, nil, &out)
	return out.Assets, err
}

// CreatePair indexes info.
func (t *HTTPTransport) CreatePair(ctx context.Context, info pairsvc.PairInfo) (pairsvc.PairInfo, error) {
	body := map[string]any{"contract": info.Contract, "liquidityToken": info.LiquidityToken, "labels": info.Labels}
	var out pairsvc.PairInfo
	err := t.do(ctx, http.MethodPut, pairPath(info.Pair), nil, body, &out)
	return out, err
}

// GetPair looks up p.
func (t *HTTPTransport) GetPair(ctx context.Context, p fungible.Pair) (pairsvc.PairInfo, error) {
	var out pairsvc.PairInfo
	err := t.do(ctx, http.MethodGet, pairPath(p), nil, nil, &out)
	return out, err
}

// RemovePair deletes p.
func (t *HTTPTransport) RemovePair(ctx context.Context, p fungible.Pair) error {
	return t.do(ctx, http.MethodDelete, pairPath(p), nil, nil, nil)
}

// ListPairs lists pairs in store order.
func (t *HTTPTransport) ListPairs(ctx context.Context, q PairQuery) ([]pairsvc.PairInfo, error) {
	v := listQuery(q.Kind, q.Filter, q.Limit)
	if q.Base != nil {
		v.Set("base", q.Base.String())
	}
	var out struct {
		Pairs []pairsvc.PairInfo `json:"pairs"`
	}
	err := t.do(ctx, http.MethodGet, "/v1/pairs", v, nil, &out)
	return out.Pairs, err
}

// Changes reads the change feed, long-polling the server when wait > 0.
func (t *HTTPTransport) Changes(ctx context.Context, after uint64, limit int, wait time.Duration) (changelog.Page, error) {
	v := url.Values{}
	v.Set("after", strconv.FormatUint(after, 10))
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if wait > 0 {
		v.Set("wait_ms", strconv.FormatInt(wait.Milliseconds(), 10))
	}
	var page changelog.Page
	err := t.do(ctx, http.MethodGet, "/v1/changes", v, nil, &page)
	return page, err
}

// Close is a no-op; connections belong to the http.Client.
func (t *HTTPTransport) Close() error { return nil }
