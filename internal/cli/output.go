package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
)

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintResults prints a search response as a table with a summary line.
func PrintResults(w io.Writer, resp *search.Response) error {
	fmt.Fprintf(w, "source: %s | results: %d", resp.Source, len(resp.Results))
	if resp.TotalRecords != nil {
		fmt.Fprintf(w, " | total: %d", *resp.TotalRecords)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 60))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDUE\tNAICS\tSTATE\tTITLE")
	for _, o := range resp.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			orDash(o.ID),
			orDash(o.ResponseDueDate),
			orDash(o.NAICS),
			orDash(o.PlaceOfPerformance.State),
			orDash(o.Title))
	}
	return tw.Flush()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
