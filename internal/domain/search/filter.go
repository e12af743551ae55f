package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultDueWithinDays is the search window used when the caller sends none
// or sends something that is not a positive number.
const DefaultDueWithinDays = 30

// maxDueWithinDays keeps absurd windows from overflowing date arithmetic.
const maxDueWithinDays = 36500

// ErrInvalidFilter is returned by ParseFilter for bodies that are not JSON.
var ErrInvalidFilter = errors.New("search filter is not valid JSON")

// SearchFilter is the caller's loosely-typed search request.
//
// Only the first NAICS code and the first set-aside are forwarded upstream;
// the rest are echoed back but otherwise ignored.
type SearchFilter struct {
	NAICSCodes         []string      `json:"naicsCodes"`
	SetAsides          []string      `json:"setAsides"`
	DueWithinDays      DueWithinDays `json:"dueWithinDays"`
	PlaceOfPerformance PlaceFilter   `json:"placeOfPerformance"`

	// Raw first elements of the request lists. They are set whenever the
	// list was a non-empty array, even when the echo lists dropped them.
	firstNAICS    *string
	firstSetAside *string
}

// FirstNAICS returns the NAICS code sent upstream and whether there is one.
func (f SearchFilter) FirstNAICS() (string, bool) {
	return firstElement(f.firstNAICS, f.NAICSCodes)
}

// FirstSetAside returns the set-aside sent upstream and whether there is one.
func (f SearchFilter) FirstSetAside() (string, bool) {
	return firstElement(f.firstSetAside, f.SetAsides)
}

func firstElement(raw *string, list []string) (string, bool) {
	if raw != nil {
		return *raw, true
	}
	if len(list) > 0 {
		return list[0], true
	}
	return "", false
}

// PlaceFilter narrows results by location. Only State reaches the query.
type PlaceFilter struct {
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
}

// MarshalJSON echoes the filter with empty lists instead of null.
func (f SearchFilter) MarshalJSON() ([]byte, error) {
	type echo SearchFilter
	e := echo(f)
	if e.NAICSCodes == nil {
		e.NAICSCodes = []string{}
	}
	if e.SetAsides == nil {
		e.SetAsides = []string{}
	}
	return json.Marshal(e)
}

// DueWithinDays keeps the caller's raw value so it can be echoed verbatim
// while Days exposes the effective window.
type DueWithinDays struct {
	raw string
}

// DueWithin builds a window from a day count.
func DueWithin(days int) DueWithinDays {
	return DueWithinDays{raw: strconv.Itoa(days)}
}

// Days returns the effective window. Zero, negative, null and non-numeric
// values fall back to DefaultDueWithinDays. Positive fractions are truncated,
// so anything below one day is a zero-day window.
func (d DueWithinDays) Days() int {
	if d.raw == "" {
		return DefaultDueWithinDays
	}

	var n float64
	r := gjson.Parse(d.raw)
	switch r.Type {
	case gjson.Number:
		n = r.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return DefaultDueWithinDays
		}
		n = parsed
	case gjson.True:
		n = 1
	default:
		return DefaultDueWithinDays
	}

	if math.IsNaN(n) || n <= 0 {
		return DefaultDueWithinDays
	}
	if n > maxDueWithinDays {
		return maxDueWithinDays
	}
	return int(n)
}

// MarshalJSON echoes the raw value, or the default when none was sent.
func (d DueWithinDays) MarshalJSON() ([]byte, error) {
	if d.raw == "" {
		return []byte(strconv.Itoa(DefaultDueWithinDays)), nil
	}
	return []byte(d.raw), nil
}

// ParseFilter reads a request body into a SearchFilter. An empty body or a
// JSON value that is not an object yields the default filter. Fields with
// unexpected shapes are ignored rather than rejected.
func ParseFilter(body []byte) (SearchFilter, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return SearchFilter{}, nil
	}
	if !gjson.ValidBytes(body) {
		return SearchFilter{}, ErrInvalidFilter
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return SearchFilter{}, nil
	}

	naics, setAsides := root.Get("naicsCodes"), root.Get("setAsides")
	f := SearchFilter{
		NAICSCodes:    stringList(naics),
		SetAsides:     stringList(setAsides),
		firstNAICS:    firstRaw(naics),
		firstSetAside: firstRaw(setAsides),
	}
	if due := root.Get("dueWithinDays"); due.Exists() {
		f.DueWithinDays = DueWithinDays{raw: due.Raw}
	}
	if place := root.Get("placeOfPerformance"); place.IsObject() {
		f.PlaceOfPerformance.State, _ = scalarString(place.Get("state"))
		f.PlaceOfPerformance.City, _ = scalarString(place.Get("city"))
	}
	return f, nil
}

// stringList stringifies the scalar elements of a JSON array. Null, object
// and array elements are dropped.
func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	out := []string{}
	r.ForEach(func(_, v gjson.Result) bool {
		switch v.Type {
		case gjson.String:
			out = append(out, v.Str)
		case gjson.Number:
			out = append(out, strconv.FormatFloat(v.Num, 'f', -1, 64))
		case gjson.True, gjson.False:
			out = append(out, strconv.FormatBool(v.Bool()))
		}
		return true
	})
	return out
}

// firstRaw stringifies the first element of a non-empty JSON array the way a
// JavaScript String() call would, so null becomes "null".
func firstRaw(r gjson.Result) *string {
	if !r.IsArray() {
		return nil
	}
	elems := r.Array()
	if len(elems) == 0 {
		return nil
	}
	s := jsString(elems[0])
	return &s
}

func jsString(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.String:
		return v.Str
	case gjson.Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case gjson.True, gjson.False:
		return strconv.FormatBool(v.Bool())
	}
	if v.IsArray() {
		parts := make([]string, 0, len(v.Array()))
		for _, e := range v.Array() {
			if e.Type == gjson.Null {
				parts = append(parts, "")
				continue
			}
			parts = append(parts, jsString(e))
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}
