package bankgov

import (
	"net/url"
	"strings"

	"github.com/yshulhan/nbudata"
)

// queryDateFormat is the compact day format of the exchange endpoint.
const queryDateFormat = "20060102"

// SortByDate is the default sort field of the exchange endpoint.
const SortByDate = "exchangedate"

// RateQuery describes one windowed request for a currency's official
// exchange rates. It is an immutable value, constructed per call. The zero
// SortField sorts by date.
type RateQuery struct {
	Currency   string
	From, To   nbudata.Date
	SortField  string
	Descending bool
	JSON       bool
}

// Build serializes the query against the given endpoint and returns the full
// address along with the parameters it encodes. Build is a pure function of
// the query: the range is validated by the Client, not here, and the
// currency code travels verbatim.
func (q RateQuery) Build(endpoint string) (string, url.Values) {
	params := url.Values{}
	params.Set("start", q.From.Format(queryDateFormat))
	params.Set("end", q.To.Format(queryDateFormat))
	params.Set("valcode", q.Currency)
	sortField := q.SortField
	if sortField == "" {
		sortField = SortByDate
	}
	params.Set("sort", sortField)
	if q.Descending {
		params.Set("order", "desc")
	} else {
		params.Set("order", "asc")
	}
	if q.JSON {
		params.Set("json", "true")
	}

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + params.Encode(), params
}
