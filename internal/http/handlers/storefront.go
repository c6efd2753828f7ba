package handlers

import (
	"context"
	"errors"
	nethttp "net/http"

	"github.com/preston-bernstein/game-deals-service/internal/listing"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/render"
	"github.com/preston-bernstein/game-deals-service/internal/storefront"
)

type sessionOp func(*storefront.Session, context.Context) error

// Index renders the storefront grid for the caller's session.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		page := pageFor(sess.Snapshot())
		page.Error = err.Error()
		writeHTML(w, r, nethttp.StatusBadRequest, page, h.logger)
		return
	}

	view := applyIfChanged(sess, criteria)
	logging.Info(loggerFromContext(r, h.logger), "served storefront",
		logging.FieldSessionID, sess.ID(),
		logging.FieldPage, view.State.PageIndex,
		logging.FieldCount, len(view.Grid),
	)
	writeHTML(w, r, nethttp.StatusOK, pageFor(view), h.logger)
}

// Next loads the following page and redirects back to the grid.
func (h *Handler) Next(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigate(w, r, (*storefront.Session).Next)
}

// Previous loads the preceding page and redirects back to the grid.
func (h *Handler) Previous(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigate(w, r, (*storefront.Session).Previous)
}

// LoadMore appends the following page and redirects back to the grid.
func (h *Handler) LoadMore(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigate(w, r, (*storefront.Session).LoadMore)
}

func (h *Handler) navigate(w nethttp.ResponseWriter, r *nethttp.Request, op sessionOp) {
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	err = op(sess, r.Context())
	view := sess.Snapshot()
	switch {
	case err == nil:
		nethttp.Redirect(w, r, render.GridHref(encodeCriteria(view.Criteria)), nethttp.StatusSeeOther)
	case errors.Is(err, listing.ErrNoMoreResults):
		page := pageFor(view)
		page.Notice = noticeNoMoreResults
		writeHTML(w, r, nethttp.StatusOK, page, h.logger)
	default:
		status, msg := navigationFailure(err)
		page := pageFor(view)
		page.Error = msg
		writeHTML(w, r, status, page, h.logger)
	}
}

// Detail renders the grid with the detail overlay for one loaded deal.
func (h *Handler) Detail(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	page := pageFor(sess.Snapshot())
	record, ok := sess.Detail(r.PathValue("dealId"))
	if !ok {
		page.Error = msgDealNotFound
		writeHTML(w, r, nethttp.StatusNotFound, page, h.logger)
		return
	}
	detail := render.DetailFor(record)
	page.Detail = &detail
	writeHTML(w, r, nethttp.StatusOK, page, h.logger)
}

func pageFor(view storefront.View) render.Page {
	return render.Page{
		Cards:           render.Cards(view.Grid),
		PageNumber:      view.State.PageNumber,
		PreviousEnabled: view.State.PreviousEnabled,
		Busy:            view.State.Busy,
		Degraded:        view.Degraded,
		Query:           view.Criteria.Query,
		SortOptions:     render.SortOptionsFor(view.Criteria.Sort),
		StoreOptions:    render.StoreOptionsFor(view.Criteria.StoreID),
		ReturnQuery:     encodeCriteria(view.Criteria),
	}
}
