package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
	"github.com/sensortower/st-cli/internal/config"
	"github.com/sensortower/st-cli/internal/filter"
	"github.com/sensortower/st-cli/internal/iocontext"
	"github.com/sensortower/st-cli/internal/outfmt"
	"github.com/sensortower/st-cli/internal/table"
)

// getClient creates an API client with the resolved token. Resolution
// order: --token flag, ST_AUTH_TOKEN, keyring. An unresolvable token is
// not an error here; the client fails with AuthMissingError before any
// request, which keeps the failure mode identical for library callers.
func getClient() *api.Client {
	client := api.New(flags.BaseURL, config.ResolveToken(flags.Token))
	client.HTTP.Timeout = flags.Timeout
	client.UserAgent = "st-cli/" + version
	return client
}

// newTabWriter creates a tabwriter for text output
func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// printTable renders a result table in the active output mode.
func printTable(cmd *cobra.Command, tbl *table.Table) error {
	ctx := cmd.Context()
	streams := iocontext.FromContext(ctx)

	if !outfmt.IsJSON(ctx) {
		return printTableText(streams.Out, tbl)
	}

	raw, err := json.Marshal(tbl)
	if err != nil {
		return err
	}

	// A jq filter needs plain maps and arrays; the round trip loses the
	// column order, so skip it when no filter is set.
	if query := outfmt.GetQuery(ctx); query != "" {
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return err
		}
		data, err = filter.Apply(data, query)
		if err != nil {
			return err
		}
		if outfmt.IsJSONL(ctx) {
			return outfmt.WriteJSONL(streams.Out, data)
		}
		return outfmt.WriteJSON(streams.Out, data)
	}

	if outfmt.IsJSONL(ctx) {
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintln(streams.Out, string(row)); err != nil {
				return err
			}
		}
		return nil
	}
	return outfmt.WriteJSON(streams.Out, json.RawMessage(raw))
}

func printTableText(out io.Writer, tbl *table.Table) error {
	if tbl.Len() == 0 {
		_, err := fmt.Fprintln(out, "No results.")
		return err
	}

	w := newTabWriter(out)
	cols := tbl.Columns()
	for i, c := range cols {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, c)
	}
	_, _ = fmt.Fprintln(w)

	for r := 0; r < tbl.Len(); r++ {
		for i, c := range cols {
			if i > 0 {
				_, _ = fmt.Fprint(w, "\t")
			}
			v, _ := tbl.Value(r, c)
			_, _ = fmt.Fprint(w, formatCell(v))
		}
		_, _ = fmt.Fprintln(w)
	}
	return w.Flush()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case time.Time:
		return val.Format("2006-01-02")
	case float64:
		// Whole-number floats read better without the trailing zero.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// splitCSV splits repeatable comma-separated flag values into their parts.
func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
