package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soundforge-hq/soundforge-console/internal/app"
	"github.com/soundforge-hq/soundforge-console/internal/config"
	"github.com/soundforge-hq/soundforge-console/internal/logger"
	"github.com/soundforge-hq/soundforge-console/pkg/dashboard"
)

const usage = `usage: consolectl <command> [flags]

commands:
  stats                          fetch aggregate platform stats
  artists [-genre -status -search -enrich]
                                 list artists
  artist <id>                    fetch one artist
  logs <id> [-level -limit]      fetch artist logs
  generate <id> -genre -style -length
                                 trigger content generation
  quickstats                     fetch the dashboard counter snapshot
  status                         fetch the per-service health snapshot
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "consolectl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console, err := app.NewConsole(cfg, log)
	if err != nil {
		return fmt.Errorf("init console: %w", err)
	}

	return dispatch(ctx, console, args[0], args[1:])
}

func dispatch(ctx context.Context, console *app.Console, command string, args []string) error {
	switch command {
	case "stats":
		stats, err := console.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)

	case "artists":
		fs := flag.NewFlagSet("artists", flag.ContinueOnError)
		genre := fs.String("genre", "", "filter by genre")
		status := fs.String("status", "", "filter by status")
		search := fs.String("search", "", "free-text search")
		enrichProfiles := fs.Bool("enrich", false, "merge profile page metadata")
		if err := fs.Parse(args); err != nil {
			return err
		}
		artists, err := console.Artists(ctx, dashboard.ArtistFilters{
			Genre:  *genre,
			Status: *status,
			Search: *search,
		}, *enrichProfiles)
		if err != nil {
			return err
		}
		return printJSON(artists)

	case "artist":
		if len(args) < 1 {
			return fmt.Errorf("artist requires an id")
		}
		artist, err := console.ArtistByID(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(artist)

	case "logs":
		if len(args) < 1 {
			return fmt.Errorf("logs requires an artist id")
		}
		fs := flag.NewFlagSet("logs", flag.ContinueOnError)
		level := fs.String("level", "", "filter by log level")
		limit := fs.Int("limit", 0, "maximum entries")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		entries, err := console.ArtistLogs(ctx, args[0], dashboard.LogFilters{
			Level: *level,
			Limit: *limit,
		})
		if err != nil {
			return err
		}
		return printJSON(entries)

	case "generate":
		if len(args) < 1 {
			return fmt.Errorf("generate requires an artist id")
		}
		fs := flag.NewFlagSet("generate", flag.ContinueOnError)
		genre := fs.String("genre", "", "content genre")
		style := fs.String("style", "", "content style")
		length := fs.String("length", "", "content length")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *genre == "" || *style == "" || *length == "" {
			return fmt.Errorf("generate requires -genre, -style, and -length")
		}
		result, err := console.GenerateContent(ctx, args[0], dashboard.GenerateParams{
			Genre:  *genre,
			Style:  *style,
			Length: *length,
		})
		if err != nil {
			return err
		}
		return printJSON(result)

	case "quickstats":
		qs, err := console.QuickStats(ctx)
		if err != nil {
			return err
		}
		return printJSON(qs)

	case "status":
		status, err := console.SystemStatus(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
