package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

func mustParse(t *testing.T, body string) SearchFilter {
	t.Helper()
	f, err := ParseFilter([]byte(body))
	require.NoError(t, err)
	return f
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03/07/2025", FormatDate(testNow))
	assert.Equal(t, "12/31/1999", FormatDate(time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestBuildQuery_Defaults(t *testing.T) {
	q := BuildQuery(SearchFilter{}, testNow)

	assert.Equal(t, Query{
		ParamLimit:        "50",
		ParamPostedFrom:   "03/07/2025",
		ParamPostedTo:     "04/06/2025",
		ParamResponseFrom: "03/07/2025",
		ParamResponseTo:   "04/06/2025",
	}, q)
	assert.NotContains(t, q, ParamAPIKey)
}

func TestBuildQuery_SharedWindow(t *testing.T) {
	for _, days := range []int{1, 7, 30, 90, 365} {
		q := BuildQuery(SearchFilter{DueWithinDays: DueWithin(days)}, testNow)

		assert.Equal(t, q[ParamPostedFrom], q[ParamResponseFrom])
		assert.Equal(t, q[ParamPostedTo], q[ParamResponseTo])
		assert.Equal(t, FormatDate(testNow.AddDate(0, 0, days)), q[ParamPostedTo])
	}
}

func TestBuildQuery_DueWithinDaysFallback(t *testing.T) {
	want := FormatDate(testNow.AddDate(0, 0, DefaultDueWithinDays))

	tests := []struct {
		name string
		body string
	}{
		{"absent", `{}`},
		{"zero", `{"dueWithinDays": 0}`},
		{"negative", `{"dueWithinDays": -5}`},
		{"null", `{"dueWithinDays": null}`},
		{"non-numeric string", `{"dueWithinDays": "soon"}`},
		{"empty string", `{"dueWithinDays": ""}`},
		{"object", `{"dueWithinDays": {"days": 10}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildQuery(mustParse(t, tt.body), testNow)
			assert.Equal(t, want, q[ParamPostedTo])
			assert.Equal(t, want, q[ParamResponseTo])
		})
	}
}

func TestBuildQuery_DueWithinDaysAccepted(t *testing.T) {
	tests := []struct {
		body string
		days int
	}{
		{`{"dueWithinDays": 10}`, 10},
		{`{"dueWithinDays": "15"}`, 15},
		{`{"dueWithinDays": 7.9}`, 7},
		{`{"dueWithinDays": 0.5}`, 0},
		{`{"dueWithinDays": "0.5"}`, 0},
		{`{"dueWithinDays": 1e9}`, maxDueWithinDays},
	}
	for _, tt := range tests {
		f := mustParse(t, tt.body)
		assert.Equal(t, tt.days, f.DueWithinDays.Days(), tt.body)
		assert.Equal(t, FormatDate(testNow.AddDate(0, 0, tt.days)), BuildQuery(f, testNow)[ParamPostedTo])
	}
}

func TestBuildQuery_Filters(t *testing.T) {
	f := mustParse(t, `{
		"naicsCodes": ["541614", "484121"],
		"setAsides": ["SB", "WOSB"],
		"placeOfPerformance": {"state": "GA", "city": "Atlanta"}
	}`)

	q := BuildQuery(f, testNow)

	assert.Equal(t, "541614", q[ParamNAICS])
	assert.Equal(t, "SB", q[ParamTypeOfSetAside])
	assert.Equal(t, "GA", q[ParamState])
	assert.NotContains(t, q, "city")
}

func TestBuildQuery_OmitsEmptyFilters(t *testing.T) {
	f := mustParse(t, `{"naicsCodes": [], "setAsides": [], "placeOfPerformance": {"city": "Atlanta"}}`)

	q := BuildQuery(f, testNow)

	assert.NotContains(t, q, ParamNAICS)
	assert.NotContains(t, q, ParamTypeOfSetAside)
	assert.NotContains(t, q, ParamState)
}

func TestBuildQuery_UsesRawFirstElement(t *testing.T) {
	tests := []struct {
		body     string
		naics    string
		setAside string
	}{
		{`{"naicsCodes": [null, "541614"], "setAsides": [null, "SB"]}`, "null", "null"},
		{`{"naicsCodes": ["", "541614"], "setAsides": ["", "SB"]}`, "", ""},
		{`{"naicsCodes": [{"code": "1"}, "541614"], "setAsides": [["SB"]]}`, "[object Object]", "SB"},
	}
	for _, tt := range tests {
		q := BuildQuery(mustParse(t, tt.body), testNow)

		require.Contains(t, q, ParamNAICS, tt.body)
		require.Contains(t, q, ParamTypeOfSetAside, tt.body)
		assert.Equal(t, tt.naics, q[ParamNAICS], tt.body)
		assert.Equal(t, tt.setAside, q[ParamTypeOfSetAside], tt.body)
	}
}

func TestBuildQuery_StringifiesScalars(t *testing.T) {
	f := mustParse(t, `{"naicsCodes": [541614], "setAsides": [8], "placeOfPerformance": {"state": 13}}`)

	q := BuildQuery(f, testNow)

	assert.Equal(t, "541614", q[ParamNAICS])
	assert.Equal(t, "8", q[ParamTypeOfSetAside])
	assert.Equal(t, "13", q[ParamState])
}

func TestBuildQuery_IsDeterministic(t *testing.T) {
	f := mustParse(t, `{"naicsCodes": ["541614"], "dueWithinDays": 45}`)
	assert.Equal(t, BuildQuery(f, testNow), BuildQuery(f, testNow))
}

func TestQuery_Values(t *testing.T) {
	v := Query{ParamNAICS: "541614", ParamLimit: "50"}.Values()

	assert.Equal(t, "541614", v.Get(ParamNAICS))
	assert.Equal(t, "limit=50&ncode=541614", v.Encode())
}
