package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pulseboard/internal/config"
	"pulseboard/internal/pairs"
	"pulseboard/internal/rendering"
	"pulseboard/internal/telemetry"
	"pulseboard/internal/ui"
)

// logEnv overrides where the TUI writes its log.
const logEnv = "PULSEBOARD_LOG"

type options struct {
	configPath string
	html       bool
	column     string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to the board config (default $"+config.PathEnv+" or the user config dir)")
	flag.BoolVar(&opts.html, "html", false, "print the HTML markup of one column header and exit")
	flag.StringVar(&opts.column, "column", "", "column title for -html (default: first column)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulseboard [flags]\n\n")
		fmt.Fprintf(os.Stderr, "pulseboard shows token pairs in lanes, each under a sortable column header.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func loadConfig(path string) (*config.Config, error) {
	p, required := config.Path(path)
	return config.Load(p, required)
}

// printHeader writes the markup for the header of the named column.
func printHeader(w io.Writer, cfg *config.Config, title string) error {
	board := ui.NewBoardFromConfig(cfg, pairs.Sample())
	idx := 0
	if title != "" {
		idx = -1
		for i, lane := range board.Lanes {
			if lane.Title == title {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no column titled %q", title)
		}
	}
	r, err := rendering.NewHeaderRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	if err := r.Render(w, board.HeaderProps(idx)); err != nil {
		return fmt.Errorf("failed to render %q: %w", board.Lanes[idx].Title, err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

func run(opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.html {
		return printHeader(os.Stdout, cfg, opts.column)
	}

	// The TUI owns the terminal; send log output to a file.
	logPath := os.Getenv(logEnv)
	if logPath == "" {
		logPath = "pulseboard.log"
	}
	f, err := tea.LogToFile(logPath, "pulseboard")
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", logPath, err)
	}
	defer f.Close()

	ctx := context.Background()
	recorder, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	renderer, err := rendering.NewHeaderRenderer()
	if err != nil {
		log.Printf("markup preview disabled: %v", err)
	}

	board := ui.NewBoardFromConfig(cfg, pairs.Sample())
	board.Recorder = recorder
	log.Printf("starting with %d columns, view=%s", len(board.Lanes), board.Mode)

	app := ui.NewAppModel(board, renderer)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pulseboard: %v\n", err)
		os.Exit(1)
	}
}
