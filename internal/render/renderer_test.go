package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

func TestViewStateTracksRenderEvents(t *testing.T) {
	v := NewViewState()
	assert.Equal(t, 1, v.Snapshot().PageNumber)

	v.Render([]deals.Deal{{DealID: "a"}, {DealID: "b"}})
	v.AppendRender([]deals.Deal{{DealID: "c"}})
	v.SetBusy(true)
	v.SetPageIndicator(3)
	v.SetPreviousEnabled(true)
	v.ShowDetail(deals.Deal{DealID: "b"})

	snap := v.Snapshot()
	assert.Len(t, snap.Grid, 3)
	assert.Equal(t, "c", snap.Grid[2].DealID)
	assert.True(t, snap.Busy)
	assert.Equal(t, 3, snap.PageNumber)
	assert.True(t, snap.PreviousEnabled)
	if assert.NotNil(t, snap.Detail) {
		assert.Equal(t, "b", snap.Detail.DealID)
	}

	v.Render([]deals.Deal{{DealID: "z"}})
	snap = v.Snapshot()
	assert.Len(t, snap.Grid, 1)
	assert.Nil(t, snap.Detail, "render replaces the grid and closes the detail")
}

func TestViewStateSnapshotIsACopy(t *testing.T) {
	v := NewViewState()
	v.Render([]deals.Deal{{DealID: "a"}})

	snap := v.Snapshot()
	snap.Grid[0].DealID = "mutated"

	assert.Equal(t, "a", v.Snapshot().Grid[0].DealID)
}

func TestFanoutForwardsToEveryRenderer(t *testing.T) {
	a, b := NewViewState(), NewViewState()
	r := Fanout(a, nil, b)

	r.Render([]deals.Deal{{DealID: "x"}})
	r.AppendRender([]deals.Deal{{DealID: "y"}})
	r.ShowDetail(deals.Deal{DealID: "x"})
	r.SetBusy(true)
	r.SetPageIndicator(2)
	r.SetPreviousEnabled(true)

	for _, v := range []*ViewState{a, b} {
		snap := v.Snapshot()
		assert.Len(t, snap.Grid, 2)
		assert.NotNil(t, snap.Detail)
		assert.True(t, snap.Busy)
		assert.Equal(t, 2, snap.PageNumber)
		assert.True(t, snap.PreviousEnabled)
	}
}
