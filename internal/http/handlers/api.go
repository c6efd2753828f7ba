package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/listing"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/storefront"
)

// ListDeals returns the derived view of the caller's session as JSON.
func (h *Handler) ListDeals(w nethttp.ResponseWriter, r *nethttp.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	view := applyIfChanged(sess, criteria)
	logging.Info(loggerFromContext(r, h.logger), "served deals",
		logging.FieldSessionID, sess.ID(),
		logging.FieldPage, view.State.PageIndex,
		logging.FieldCount, len(view.Grid),
	)
	writeJSON(w, nethttp.StatusOK, pageResponse(view, ""), h.logger)
}

// NextPage is the JSON form of Next.
func (h *Handler) NextPage(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigateJSON(w, r, (*storefront.Session).Next)
}

// PreviousPage is the JSON form of Previous.
func (h *Handler) PreviousPage(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigateJSON(w, r, (*storefront.Session).Previous)
}

// MorePage is the JSON form of LoadMore. An exhausted listing is reported as a notice.
func (h *Handler) MorePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.navigateJSON(w, r, (*storefront.Session).LoadMore)
}

func (h *Handler) navigateJSON(w nethttp.ResponseWriter, r *nethttp.Request, op sessionOp) {
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	err = op(sess, r.Context())
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusOK, pageResponse(sess.Snapshot(), ""), h.logger)
	case errors.Is(err, listing.ErrNoMoreResults):
		writeJSON(w, nethttp.StatusOK, pageResponse(sess.Snapshot(), noticeNoMoreResults), h.logger)
	default:
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
	}
}

// DealByID returns one loaded deal of the caller's session.
func (h *Handler) DealByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.session(w, r)
	if err != nil {
		status, msg := navigationFailure(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	record, ok := sess.Detail(r.PathValue("dealId"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, msgDealNotFound, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, record, h.logger)
}

func pageResponse(view storefront.View, notice string) deals.PageResponse {
	grid := view.Grid
	if grid == nil {
		grid = []deals.Deal{}
	}
	return deals.PageResponse{
		Page:            view.State.PageNumber,
		PageIndex:       view.State.PageIndex,
		PreviousEnabled: view.State.PreviousEnabled,
		Busy:            view.State.Busy,
		Degraded:        view.Degraded,
		Notice:          notice,
		Sort:            string(view.Criteria.Sort),
		Store:           view.Criteria.StoreID,
		Query:           view.Criteria.Query,
		Deals:           grid,
	}
}
