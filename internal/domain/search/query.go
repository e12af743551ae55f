package search

import (
	"net/url"
	"strconv"
	"time"
)

// PageLimit is the fixed number of records requested from SAM.gov.
// Callers cannot raise it; there is no pagination.
const PageLimit = 50

// SAM.gov query parameter names.
const (
	ParamAPIKey         = "api_key"
	ParamLimit          = "limit"
	ParamPostedFrom     = "postedFrom"
	ParamPostedTo       = "postedTo"
	ParamResponseFrom   = "rdlfrom"
	ParamResponseTo     = "rdlto"
	ParamNAICS          = "ncode"
	ParamTypeOfSetAside = "typeOfSetAside"
	ParamState          = "state"
)

const dateLayout = "01/02/2006"

// Query is the set of SAM.gov search parameters for one request. The
// credential is not part of it; the client adds that on the wire.
type Query map[string]string

// Values converts the query to url.Values.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q))
	for k, val := range q {
		v.Set(k, val)
	}
	return v
}

// FormatDate renders t as MM/DD/YYYY, the only date format SAM.gov accepts.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// BuildQuery turns a filter into SAM.gov parameters. The posting window and
// the response-deadline window are the same range: now through now plus the
// filter's day count.
func BuildQuery(f SearchFilter, now time.Time) Query {
	end := now.AddDate(0, 0, f.DueWithinDays.Days())
	from, to := FormatDate(now), FormatDate(end)

	q := Query{
		ParamLimit:        strconv.Itoa(PageLimit),
		ParamPostedFrom:   from,
		ParamPostedTo:     to,
		ParamResponseFrom: from,
		ParamResponseTo:   to,
	}

	if naics, ok := f.FirstNAICS(); ok {
		q[ParamNAICS] = naics
	}
	if setAside, ok := f.FirstSetAside(); ok {
		q[ParamTypeOfSetAside] = setAside
	}
	if f.PlaceOfPerformance.State != "" {
		q[ParamState] = f.PlaceOfPerformance.State
	}

	return q
}
