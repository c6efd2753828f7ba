package render

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/preston-bernstein/game-deals-service/internal/listing"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"detailHref": DetailHref,
	"gridHref":   GridHref,
}).ParseFS(templateFS, "templates/*.html"))

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Page is everything the storefront template needs for one response.
type Page struct {
	Cards           []Card
	Detail          *Detail
	PageNumber      int
	PreviousEnabled bool
	Busy            bool
	Degraded        bool
	Notice          string
	Error           string
	Query           string
	SortOptions     []Option
	StoreOptions    []Option
	// ReturnQuery is the encoded criteria query string used by links back to the grid.
	ReturnQuery string
}

var sortLabels = map[listing.Criterion]string{
	listing.CriterionNone:         "Default order",
	listing.CriterionDiscountDesc: "Biggest discount",
	listing.CriterionDiscountAsc:  "Smallest discount",
	listing.CriterionPriceDesc:    "Highest price",
	listing.CriterionPriceAsc:     "Lowest price",
}

// Stores lists the store filter choices offered in the storefront.
var Stores = []Option{
	{Value: "", Label: "All stores"},
	{Value: "1", Label: "Steam"},
	{Value: "7", Label: "GOG"},
	{Value: "8", Label: "Origin"},
	{Value: "11", Label: "Humble Store"},
	{Value: "25", Label: "Epic Games Store"},
}

// SortOptionsFor builds the sort select with the active criterion marked.
func SortOptionsFor(active listing.Criterion) []Option {
	all := append([]listing.Criterion{listing.CriterionNone}, listing.SortOptions()...)
	out := make([]Option, 0, len(all))
	for _, c := range all {
		out = append(out, Option{Value: string(c), Label: sortLabels[c], Selected: c == active})
	}
	return out
}

// StoreOptionsFor builds the store select with the active store marked.
func StoreOptionsFor(active string) []Option {
	out := make([]Option, 0, len(Stores))
	for _, s := range Stores {
		s.Selected = s.Value == active
		out = append(out, s)
	}
	return out
}

// DetailHref links to the detail view of dealID, keeping the grid criteria.
func DetailHref(dealID, returnQuery string) string {
	return withQuery("/deals/"+url.PathEscape(dealID), returnQuery)
}

// GridHref links back to the grid with the given criteria.
func GridHref(returnQuery string) string {
	return withQuery("/", returnQuery)
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// HTML writes the storefront page.
func HTML(w io.Writer, page Page) error {
	return pageTemplate.ExecuteTemplate(w, "page.html", page)
}
