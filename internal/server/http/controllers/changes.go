package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/voydwalkr/fungible/internal/changelog"
)

// maxChangeWait bounds the long-poll window of /v1/changes.
const maxChangeWait = 30 * time.Second

// ChangesController exposes the registry change feed.
type ChangesController struct {
	log      *changelog.Log
	maxLimit int
}

// NewChangesController creates a new change feed controller.
func NewChangesController(log *changelog.Log, maxLimit int) *ChangesController {
	return &ChangesController{log: log, maxLimit: maxLimit}
}

// RegisterRoutes registers change feed routes with the given mux.
func (c *ChangesController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/changes", c.handleRead)
}

// handleRead serves GET /v1/changes?after=&limit=&wait_ms=. With wait_ms set
// and nothing past after, the request blocks until the next append or the
// wait elapses.
func (c *ChangesController) handleRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	q := r.URL.Query()
	var after uint64
	if s := q.Get("after"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "after must be a sequence number")
			return
		}
		after = v
	}
	var wait time.Duration
	if s := q.Get("wait_ms"); s != "" {
		ms, err := strconv.Atoi(s)
		if err != nil || ms < 0 {
			writeError(w, http.StatusBadRequest, "wait_ms must be a non-negative integer")
			return
		}
		wait = min(time.Duration(ms)*time.Millisecond, maxChangeWait)
	}
	limit := parseLimit(q.Get("limit"))
	if limit <= 0 || limit > c.maxLimit {
		limit = c.maxLimit
	}

	page, err := c.log.ReadWait(r.Context(), changelog.ReadOptions{After: after, Limit: limit}, wait)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, page)
}
