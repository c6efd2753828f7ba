package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/game-deals-service/internal/health"
	"github.com/preston-bernstein/game-deals-service/internal/listing"
	"github.com/preston-bernstein/game-deals-service/internal/pagination"
	"github.com/preston-bernstein/game-deals-service/internal/storefront"
)

// SessionCookie names the cookie that carries the storefront session ID.
const SessionCookie = "deals_session"

const (
	noticeNoMoreResults = "no more deals available"
	msgFetchInProgress  = "a page load is already in progress"
	msgFetchFailed      = "failed to load deals"
	msgDealNotFound     = "deal not found"
)

// Handler wires HTTP routes to the storefront sessions.
type Handler struct {
	sessions *storefront.Registry
	logger   *slog.Logger
	statusFn func() health.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service is always ready.
func NewHandler(sessions *storefront.Registry, logger *slog.Logger, statusFn func() health.Status) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the upstream deals source is answering.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// session returns the caller's session, creating it and setting the cookie when needed.
// The first load is detached from the request so a dropped connection does not
// leave a new session on the fallback dataset.
func (h *Handler) session(w nethttp.ResponseWriter, r *nethttp.Request) (*storefront.Session, error) {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	sess, created := h.sessions.GetOrCreate(id)
	if created {
		nethttp.SetCookie(w, &nethttp.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: nethttp.SameSiteLaxMode,
		})
	}
	if err := sess.Init(context.WithoutCancel(r.Context())); err != nil {
		return nil, err
	}
	return sess, nil
}

// parseCriteria reads sort, store and q from the query string.
func parseCriteria(values url.Values) (listing.Criteria, error) {
	sort, err := listing.ParseCriterion(values.Get("sort"))
	if err != nil {
		return listing.Criteria{}, err
	}
	return listing.Criteria{
		Sort:    sort,
		StoreID: strings.TrimSpace(values.Get("store")),
		Query:   values.Get("q"),
	}, nil
}

// encodeCriteria is the inverse of parseCriteria; identity selections are omitted.
func encodeCriteria(c listing.Criteria) string {
	values := url.Values{}
	if c.Sort != listing.CriterionNone {
		values.Set("sort", string(c.Sort))
	}
	if c.StoreID != "" {
		values.Set("store", c.StoreID)
	}
	if c.Query != "" {
		values.Set("q", c.Query)
	}
	return values.Encode()
}

// applyIfChanged applies c unless the session already shows it, so a grid built by
// load-more survives a reload of the same criteria.
func applyIfChanged(sess *storefront.Session, c listing.Criteria) storefront.View {
	view := sess.Snapshot()
	if view.Criteria == c {
		return view
	}
	sess.ApplyCriteria(c)
	return sess.Snapshot()
}

// navigationFailure maps a failed page load to a status code and message.
func navigationFailure(err error) (int, string) {
	if errors.Is(err, pagination.ErrFetchInProgress) {
		return nethttp.StatusConflict, msgFetchInProgress
	}
	return nethttp.StatusBadGateway, msgFetchFailed
}
