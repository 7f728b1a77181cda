package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sitesearch/internal/config"
	"sitesearch/internal/index"
	"sitesearch/internal/search"
	"sitesearch/internal/ui/views"
)

// Output formats of the query command
const (
	FormatTable = "table"
	FormatHTML  = "html"
	FormatJSON  = "json"
)

type queryOptions struct {
	format   string
	limit    int
	selected int
}

func newQueryCmd(o *options) *cobra.Command {
	qo := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <terms>...",
		Short: "Search the index once and print the results",
		Long: `Load the index and print the results for the given terms, the same way the
overlay would show them.

An index that cannot be loaded is treated as empty.

Examples:
  sitesearch query hello world
  sitesearch query --format html hello
  sitesearch query --format json --limit 5 go`,
		Args: cobra.MinimumNArgs(1),
		RunE: o.run(func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, o, qo, strings.Join(args, " "))
		}),
	}

	cmd.Flags().StringVarP(&qo.format, "format", "f", FormatTable, "output format: table, html or json")
	cmd.Flags().IntVarP(&qo.limit, "limit", "n", 0, "maximum number of results (default from config)")
	cmd.Flags().IntVar(&qo.selected, "selected", -1, "result index to mark as selected in html output")

	return cmd
}

func runQuery(cmd *cobra.Command, o *options, qo *queryOptions, query string) error {
	switch qo.format {
	case FormatTable, FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be table, html or json", qo.format)
	}

	limit := o.cfg.Search.Limit
	if qo.limit > 0 {
		limit = qo.limit
	}

	store := index.NewStore(index.NewSource(o.cfg.IndexLocation()), nil)
	store.Load(cmd.Context())

	opts := search.RenderOptions{
		Limit:        limit,
		SummaryLimit: o.cfg.Search.SummaryLimit,
		Icons:        o.cfg.Icons(),
	}
	if qo.format != FormatHTML {
		opts.Clean = views.StripTags
	}
	results := search.BuildResults(store.Pages(), query, opts)

	out := cmd.OutOrStdout()
	switch qo.format {
	case FormatHTML:
		_, err := fmt.Fprintln(out, search.RenderHTML(results, qo.selected))
		return err
	case FormatJSON:
		return writeJSON(out, o.cfg, results)
	default:
		return writeTable(out, o.cfg, results)
	}
}

// queryResult is the JSON form of one result
type queryResult struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Section   string `json:"section,omitempty"`
	Date      string `json:"date,omitempty"`
	Permalink string `json:"permalink"`
	URL       string `json:"url"`
}

type queryOutput struct {
	Query   string        `json:"query"`
	Kind    string        `json:"kind"`
	Results []queryResult `json:"results"`
}

func writeJSON(w io.Writer, cfg *config.Config, results search.Results) error {
	payload := queryOutput{
		Query:   results.Query,
		Kind:    results.Kind.String(),
		Results: make([]queryResult, 0, results.Len()),
	}
	for _, item := range results.Items {
		payload.Results = append(payload.Results, queryResult{
			Title:     search.PlainText(item.Title),
			Summary:   search.PlainText(item.Summary),
			Section:   item.Section,
			Date:      item.Date,
			Permalink: item.Permalink,
			URL:       cfg.LinkURL(item.Permalink),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeTable(w io.Writer, cfg *config.Config, results search.Results) error {
	printer := NewPrinter(w)
	if p, ok := results.Placeholder(); ok {
		printer.Header("%s", p.Title)
		printer.Dim("%s", p.Subtitle)
		return nil
	}

	mark := color.New(color.FgYellow, color.Bold).SprintFunc()
	plain := func(s string) string { return s }

	table := NewTable(w, []string{"#", "Title", "Section", "Date", "URL"})
	for _, item := range results.Items {
		table.AddRow(
			strconv.Itoa(item.Index+1),
			search.MarkSegments(item.Title, plain, func(s string) string { return mark(s) }),
			item.Section,
			item.Date,
			cfg.LinkURL(item.Permalink),
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	noun := "results"
	if results.Len() == 1 {
		noun = "result"
	}
	printer.Dim("%d %s for %q", results.Len(), noun, results.Query)
	return nil
}
