package search

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrMalformedPayload is returned when the SAM.gov body is not JSON.
var ErrMalformedPayload = errors.New("SAM.gov response is not valid JSON")

// Page is one normalized SAM.gov search response.
type Page struct {
	TotalRecords int
	Results      []Opportunity
}

// NormalizePage parses a SAM.gov search body. A body without an
// opportunitiesData list yields an empty page rather than an error.
func NormalizePage(body []byte) (Page, error) {
	if !gjson.ValidBytes(body) {
		return Page{}, ErrMalformedPayload
	}

	root := gjson.ParseBytes(body)
	results := NormalizeAll(root.Get("opportunitiesData"))

	return Page{
		TotalRecords: totalRecords(root.Get("totalRecords"), len(results)),
		Results:      results,
	}, nil
}

// NormalizeAll maps each element of a JSON array of records, keeping order.
func NormalizeAll(records gjson.Result) []Opportunity {
	out := []Opportunity{}
	if !records.IsArray() {
		return out
	}
	records.ForEach(func(_, rec gjson.Result) bool {
		out = append(out, Normalize(rec))
		return true
	})
	return out
}

// Normalize maps one raw SAM.gov record to the canonical shape. Each field
// takes the first usable value of its fallback chain.
func Normalize(rec gjson.Result) Opportunity {
	place := rec.Get("placeOfPerformance")

	return Opportunity{
		ID:              firstOf(rec.Get("noticeId"), rec.Get("solicitationNumber")),
		Title:           firstOf(rec.Get("title")),
		Agency:          firstOf(rec.Get("fullParentPathName"), rec.Get("department")),
		NAICS:           naicsCode(rec),
		SetAside:        firstOf(rec.Get("typeOfSetAsideDescription"), rec.Get("typeOfSetAside"), rec.Get("setAside")),
		ResponseDueDate: firstOf(rec.Get("responseDeadLine"), rec.Get("responseDate")),
		PlaceOfPerformance: PlaceOfPerformance{
			City:  placeField(place.Get("city"), "name", "code"),
			State: placeField(place.Get("state"), "code", "name"),
		},
		NoticeType: firstOf(rec.Get("noticeType"), rec.Get("type")),
		URL:        recordURL(rec),
	}
}

// naicsCode reads either a list of {naicsCode|code} entries, of which only
// the first counts, or a bare naicsCode/naics scalar.
func naicsCode(rec gjson.Result) *string {
	naics := rec.Get("naics")
	if naics.IsArray() {
		first := naics.Get("0")
		return firstOf(first.Get("naicsCode"), first.Get("code"))
	}
	return firstOf(rec.Get("naicsCode"), naics)
}

// placeField accepts a bare string or a SAM.gov {code, name} object.
func placeField(v gjson.Result, keys ...string) *string {
	if v.IsObject() {
		candidates := make([]gjson.Result, 0, len(keys))
		for _, k := range keys {
			candidates = append(candidates, v.Get(k))
		}
		return firstOf(candidates...)
	}
	return firstOf(v)
}

func recordURL(rec gjson.Result) *string {
	if u := firstOf(rec.Get("uiLink")); u != nil {
		return u
	}
	links := rec.Get("resourceLinks")
	if !links.IsArray() {
		return nil
	}
	return firstOf(links.Get("0.href"))
}

func totalRecords(v gjson.Result, fallback int) int {
	if s, ok := scalarString(v); ok {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
