package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fixtureconv/internal/config"
	applog "fixtureconv/internal/log"
	"fixtureconv/internal/pipeline"
	"fixtureconv/internal/sheet"
	"fixtureconv/internal/web"
)

var settingUsage = map[string]string{
	pipeline.KeyTargetYear:      "year added to DD.MM. dates (default: current year)",
	pipeline.KeyDurationMinutes: "game duration in minutes",
	pipeline.KeyWarmupMinutes:   "warm-up offset in minutes, negative means before the game",
	pipeline.KeyMeetingMinutes:  "meeting buffer in minutes before the game",
	pipeline.KeyGroupName:       "group the events are published to",
	pipeline.KeyEventType:       "Match|Other",
	pipeline.KeyRegistration:    "SelectedPeople|GroupMembers|Club",
}

type inputList []string

func (l *inputList) String() string { return strings.Join(*l, ",") }

func (l *inputList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	cfg, err := config.Load()
	must(err)

	applog.Configure(applog.Config{
		Level:   cfg.LogLevel,
		Version: cfg.AppVersion,
		Pretty:  cfg.PrettyLogs,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	conv := pipeline.NewConverter(cfg)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	switch cmd {
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		var inputs inputList
		fs.Var(&inputs, "input", "schedule file (repeatable)")
		out := fs.String("out", "", "output xlsx path")
		settings := settingFlags(fs)
		_ = fs.Parse(os.Args[2:])
		if len(inputs) == 0 || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--input and --out are required"))
		}

		files, err := loadFiles(inputs)
		must(err)
		res, err := conv.Convert(ctx, files, settings.values())
		must(err)
		must(sheet.SaveXLSX(res.Events, *out))
		fmt.Printf("converted rows=%d events=%d output=%s\n", res.Rows, len(res.Events), *out)
	case "preview":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		var inputs inputList
		fs.Var(&inputs, "input", "schedule file (repeatable)")
		settings := settingFlags(fs)
		_ = fs.Parse(os.Args[2:])
		if len(inputs) == 0 {
			must(fmt.Errorf("--input is required"))
		}

		files, err := loadFiles(inputs)
		must(err)
		res, err := conv.Convert(ctx, files, settings.values())
		must(err)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		must(enc.Encode(map[string]any{"data": res.Events}))
	case "serve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		listen := fs.String("listen", cfg.ListenAddr, "listen address")
		_ = fs.Parse(os.Args[2:])
		cfg.ListenAddr = *listen
		must(cfg.Require("LISTEN_ADDR", cfg.ListenAddr))
		must(web.NewServer(cfg, conv).ListenAndServe(ctx))
	default:
		usage()
		os.Exit(1)
	}
}

type settingValues map[string]*string

func settingFlags(fs *flag.FlagSet) settingValues {
	out := make(settingValues, len(pipeline.SettingKeys))
	for _, key := range pipeline.SettingKeys {
		out[key] = fs.String(key, "", settingUsage[key])
	}
	return out
}

func (s settingValues) values() map[string]string {
	out := make(map[string]string, len(s))
	for key, v := range s {
		if strings.TrimSpace(*v) != "" {
			out[key] = *v
		}
	}
	return out
}

func loadFiles(paths []string) ([]sheet.File, error) {
	files := make([]sheet.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, sheet.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

func usage() {
	fmt.Println("usage: fixtureconv <command>")
	fmt.Println("commands:")
	fmt.Println("  convert --input=a.xlsx [--input=b.csv] --out=./out/tapahtumat.xlsx [settings]")
	fmt.Println("  preview --input=a.xlsx [settings]")
	fmt.Println("  serve [--listen=127.0.0.1:8080]")
	fmt.Println("settings:")
	for _, key := range pipeline.SettingKeys {
		fmt.Printf("  --%s  %s\n", key, settingUsage[key])
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
