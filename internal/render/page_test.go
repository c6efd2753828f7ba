package render

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/listing"
)

func renderDoc(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHTMLRendersCardsAndPagination(t *testing.T) {
	page := Page{
		Cards: Cards([]deals.Deal{
			{DealID: "a", Title: "Elden Ring", NormalPrice: "59.99", SalePrice: "35", SavingsPercent: savings(41.7)},
			{DealID: "b"},
		}),
		PageNumber:   2,
		SortOptions:  SortOptionsFor(listing.CriterionPriceAsc),
		StoreOptions: StoreOptionsFor("7"),
		Query:        "ring",
		ReturnQuery:  "q=ring&sort=price-asc",
	}

	doc := renderDoc(t, page)

	cards := doc.Find("article.card")
	assert.Equal(t, 2, cards.Length())
	first := cards.First()
	assert.Equal(t, "Elden Ring", first.Find("h3").Text())
	assert.Equal(t, "$59.99", first.Find("s.normal").Text())
	assert.Equal(t, "$35.00", first.Find(".sale").Text())
	assert.Equal(t, "Save 42%", first.Find(".savings").Text())
	href, _ := first.Find("a.detail-link").Attr("href")
	assert.Equal(t, "/deals/a?q=ring&sort=price-asc", href)

	second := cards.Eq(1)
	assert.Equal(t, deals.UntitledGame, second.Find("h3").Text())
	assert.Equal(t, "—", second.Find("span.normal").Text())
	assert.Equal(t, 0, second.Find(".sale").Length())

	assert.Equal(t, "Page 2", doc.Find("#page-indicator").Text())
	_, prevDisabled := doc.Find("#previous").Attr("disabled")
	assert.True(t, prevDisabled)
	_, nextDisabled := doc.Find("#next").Attr("disabled")
	assert.False(t, nextDisabled)

	selectedSort, _ := doc.Find("#sort option[selected]").Attr("value")
	assert.Equal(t, "price-asc", selectedSort)
	selectedStore, _ := doc.Find("#store option[selected]").Attr("value")
	assert.Equal(t, "7", selectedStore)
	query, _ := doc.Find("#search").Attr("value")
	assert.Equal(t, "ring", query)
	assert.Equal(t, 0, doc.Find("#detail").Length())
}

func TestHTMLOmitsDetailLinkWithoutDealID(t *testing.T) {
	doc := renderDoc(t, Page{Cards: Cards([]deals.Deal{
		{DealID: "x", Title: "Known"},
		{Title: "Orphan", NormalPrice: "free"},
	})})

	cards := doc.Find("article.card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, 1, cards.First().Find("a.detail-link").Length())
	orphan := cards.Eq(1)
	assert.Equal(t, 0, orphan.Find("a.detail-link").Length())
	assert.Equal(t, "$free", orphan.Find("s.normal").Text())
}

func TestHTMLBusyDisablesControls(t *testing.T) {
	doc := renderDoc(t, Page{PageNumber: 3, PreviousEnabled: true, Busy: true})

	assert.Equal(t, 1, doc.Find("#spinner").Length())
	for _, id := range []string{"#previous", "#next", "#load-more"} {
		_, disabled := doc.Find(id).Attr("disabled")
		assert.True(t, disabled, id)
	}
}

func TestHTMLShowsBannersAndEmptyGrid(t *testing.T) {
	doc := renderDoc(t, Page{PageNumber: 1, Degraded: true, Notice: "no more deals available", Error: "upstream failed"})

	assert.Equal(t, 1, doc.Find("#degraded").Length())
	assert.Equal(t, "no more deals available", doc.Find("#notice").Text())
	assert.Equal(t, "upstream failed", doc.Find("#error").Text())
	assert.Equal(t, 1, doc.Find("#empty").Length())
}

func TestHTMLRendersDetailOverlay(t *testing.T) {
	detail := DetailFor(deals.Deal{DealID: "x", Title: "God of War", MetacriticScore: "94"})
	doc := renderDoc(t, Page{PageNumber: 1, Detail: &detail})

	assert.Equal(t, "God of War", doc.Find("#detail-title").Text())
	src, _ := doc.Find("#detail-image").Attr("src")
	assert.Equal(t, PlaceholderImage, src)
	assert.Equal(t, "Not available", doc.Find("#detail-normal").Text())
	assert.Equal(t, "No discount", doc.Find("#detail-discount").Text())
	assert.Equal(t, "Metacritic: 94", doc.Find("#detail-metacritic").Text())
	closeHref, _ := doc.Find("#close-detail").Attr("href")
	assert.Equal(t, "/", closeHref)
}

func TestDetailHrefEscapesDealID(t *testing.T) {
	assert.Equal(t, "/deals/abc%252F%253D", DetailHref("abc%2F%3D", ""))
	assert.Equal(t, "/deals/a%2Fb?sort=price-asc", DetailHref("a/b", "sort=price-asc"))
	assert.Equal(t, "/?q=x", GridHref("q=x"))
}

func TestSortOptionsIncludeDefault(t *testing.T) {
	opts := SortOptionsFor(listing.CriterionNone)
	require.Len(t, opts, 5)
	assert.Equal(t, "", opts[0].Value)
	assert.True(t, opts[0].Selected)
}
