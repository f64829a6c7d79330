// Command vantage is a terminal system dashboard: two scrollable,
// searchable tables showing process and connection snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vantage-tui/vantage/pkg/config"
	"github.com/vantage-tui/vantage/pkg/ui/backend/tcell"
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
	"github.com/vantage-tui/vantage/pkg/ui/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vantage:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	debugLog := flag.String("debug-log", "", "write input/frame traces to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	procs := widgets.NewScrollSearchTable(1, "Processes", processColumns(), processRows())
	conns := widgets.NewScrollSearchTable(10, "Connections", connectionColumns(), connectionRows())
	procs.Table().SetTableGap(cfg.Table.Gap)
	conns.Table().SetTableGap(cfg.Table.Gap)

	root := widgets.NewColumn(0, 0)
	root.AddChild(procs, runtime.Percentage(60))
	root.AddChild(conns, runtime.Min(0))

	be, err := tcell.New()
	if err != nil {
		return err
	}

	app := runtime.NewApp(runtime.AppConfig{
		Backend:      be,
		Root:         root,
		Theme:        cfg.BuildTheme(),
		Settings:     cfg.Settings(),
		InitialFocus: procs.TableID(),
		Logger:       logger,
		GlobalKey: func(ev terminal.KeyEvent) runtime.Signal {
			if ev.Key == terminal.KeyCtrlC {
				return runtime.Quit{}
			}
			// 'q' quits unless a search strip is capturing text.
			if ev.Bare() && ev.Key == terminal.KeyRune && ev.Rune == 'q' &&
				!procs.SearchOpen() && !conns.SearchOpen() {
				return runtime.Quit{}
			}
			return nil
		},
	})

	return app.Run(context.Background())
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vantage.yaml"
	}
	return filepath.Join(dir, "vantage", "config.yaml")
}

func processColumns() []widgets.TableColumn {
	pct := runtime.Percentage(30)
	return []widgets.TableColumn{
		{Header: "PID", DesiredWidth: 7},
		{Header: "Name", DesiredWidth: 16, UpperBound: &pct},
		{Header: "CPU%", DesiredWidth: 6, Sorting: true},
		{Header: "Mem%", DesiredWidth: 6},
		{Header: "State", DesiredWidth: 8},
	}
}

func processRows() [][]string {
	return [][]string{
		{"312", "systemd", "0.1", "0.4", "S"},
		{"1204", "vantage", "1.7", "0.6", "R"},
		{"2217", "dockerd", "2.3", "3.1", "S"},
		{"2890", "postgres", "0.8", "4.2", "S"},
		{"3411", "nginx", "0.2", "0.3", "S"},
		{"4096", "redis-server", "0.5", "1.1", "S"},
		{"5120", "node", "6.4", "2.8", "R"},
		{"6001", "go build", "12.9", "1.9", "R"},
		{"7777", "sshd", "0.0", "0.2", "S"},
		{"8088", "prometheus", "1.1", "2.5", "S"},
	}
}

func connectionColumns() []widgets.TableColumn {
	return []widgets.TableColumn{
		{Header: "Proto", DesiredWidth: 6},
		{Header: "Local", DesiredWidth: 22},
		{Header: "Remote", DesiredWidth: 22},
		{Header: "State", DesiredWidth: 12, Sorting: true},
	}
}

func connectionRows() [][]string {
	return [][]string{
		{"tcp", "127.0.0.1:5432", "127.0.0.1:50312", "ESTABLISHED"},
		{"tcp", "0.0.0.0:80", "*", "LISTEN"},
		{"tcp", "0.0.0.0:443", "*", "LISTEN"},
		{"tcp", "10.0.0.5:22", "10.0.0.9:61022", "ESTABLISHED"},
		{"udp", "0.0.0.0:53", "*", ""},
		{"tcp", "127.0.0.1:6379", "127.0.0.1:50544", "TIME_WAIT"},
	}
}
