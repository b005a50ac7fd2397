package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/services/dashboard/usecase"
	"github.com/piresc/smartdustbin/services/dashboard/view"
)

const helpText = `Commands:
  list                           show the current results
  search [text]                  filter by name or address, empty clears
  filter <bucket> on|off         toggle empty, low, medium or high
  clear                          turn every fill filter off
  show <id>                      show the details of a dustbin
  directions <id>                print a directions link
  report <id> <issue> [-- text]  report a problem with a dustbin
  refresh                        reload dustbins from the server
  locate                         find your location again
  markers                        list the map markers
  stats                          show fill statistics
  help                           show this help
  quit                           exit`

type repl struct {
	uc  *usecase.DashboardUC
	in  io.Reader
	out io.Writer
}

func newREPL(uc *usecase.DashboardUC, in io.Reader, out io.Writer) *repl {
	return &repl{uc: uc, in: in, out: out}
}

// Run starts the dashboard and reads commands until quit, EOF or ctx ends.
// Failures of individual commands are reported to the user and never stop
// the loop.
func (r *repl) Run(ctx context.Context) error {
	_ = r.uc.Start(ctx)
	r.list()

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		if quit := r.exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

func (r *repl) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "list":
		r.list()
	case "search":
		r.uc.SetSearch(strings.Join(args, " "))
		r.list()
	case "filter":
		r.filter(args)
	case "clear":
		r.uc.ClearBuckets()
		r.list()
	case "show":
		r.show(args)
	case "directions":
		r.directions(args)
	case "report":
		r.report(ctx, args)
	case "refresh":
		if err := r.uc.Refresh(ctx); err == nil {
			r.list()
		}
	case "locate":
		if err := r.uc.Locate(ctx); err == nil {
			r.list()
		}
	case "markers":
		r.markers()
	case "stats":
		stats, err := r.uc.Stats(ctx)
		if err != nil {
			fmt.Fprintf(r.out, "Failed to fetch statistics: %v\n", err)
			return false
		}
		_ = view.RenderStats(r.out, stats)
	default:
		fmt.Fprintf(r.out, "Unknown command %q, type help for a list\n", cmd)
	}
	return false
}

func (r *repl) list() {
	_ = view.RenderList(r.out, r.uc.Display())
}

func (r *repl) filter(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: filter <empty|low|medium|high> on|off")
		return
	}
	bucket, ok := models.ParseFillBucket(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(r.out, "Unknown fill level %q\n", args[0])
		return
	}
	switch strings.ToLower(args[1]) {
	case "on":
		r.uc.ToggleBucket(bucket, true)
	case "off":
		r.uc.ToggleBucket(bucket, false)
	default:
		fmt.Fprintln(r.out, "Usage: filter <empty|low|medium|high> on|off")
		return
	}
	r.list()
}

func (r *repl) show(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: show <id>")
		return
	}
	detail, err := r.uc.Select(args[0])
	if err != nil {
		fmt.Fprintln(r.out, view.NoResults)
		return
	}
	_ = view.RenderDetail(r.out, detail)
}

func (r *repl) directions(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: directions <id>")
		return
	}
	for _, d := range r.uc.State().Dustbins {
		if d.ID == args[0] {
			fmt.Fprintln(r.out, r.uc.DirectionsURL(d))
			return
		}
	}
	fmt.Fprintln(r.out, view.NoResults)
}

// report accepts "report <id> <issue words> [-- description words]"
func (r *repl) report(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "Usage: report <id> <issue> [-- description]")
		return
	}
	id, rest := args[0], args[1:]

	issueWords, descWords := rest, []string(nil)
	for i, word := range rest {
		if word == "--" {
			issueWords, descWords = rest[:i], rest[i+1:]
			break
		}
	}
	issue := strings.Join(issueWords, " ")
	if issue == "" {
		fmt.Fprintln(r.out, "Usage: report <id> <issue> [-- description]")
		return
	}

	_ = r.uc.ReportIssue(ctx, id, issue, strings.Join(descWords, " "))
}

func (r *repl) markers() {
	markers := view.BuildMarkers(r.uc.Display(), r.uc.State().UserLocation)
	if len(markers) == 0 {
		fmt.Fprintln(r.out, view.NoResults)
		return
	}
	for _, m := range markers {
		id := m.DustbinID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(r.out, "%s\t%s\t%.6f,%.6f\t%s\n", id, m.Title, m.Position.Latitude, m.Position.Longitude, m.Color)
	}
}
