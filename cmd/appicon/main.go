// appicon — Application icon generator.
//
// Usage:
//
//	appicon [--name <name>] [--glyph <glyph>] [--bg <color>] [options]
//	appicon --config icon.json [options]
//	appicon init [--output icon.json]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/xob0t/appicon/pkg/config"
	"github.com/xob0t/appicon/pkg/generator"
	"github.com/xob0t/appicon/pkg/icon"
	"github.com/xob0t/appicon/pkg/logging"
)

type options struct {
	Logging logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`

	Config     string        `short:"c" long:"config" description:"JSON or YAML icon file; explicit flags override its values"`
	Name       string        `long:"name" description:"Application display name" default:"Medtime"`
	Glyph      string        `long:"glyph" description:"Emoji or letter drawn on the icon" default:"💊"`
	Background generator.RGB `long:"bg" description:"Background color: #rrggbb, r,g,b or random" default:"#4caf50"`
	Foreground generator.RGB `long:"fg" description:"Glyph color" default:"#ffffff"`
	Size       int           `long:"size" description:"Icon size in pixels (default 512)"`
	Preset     string        `long:"preset" description:"Named size: android, ios, web, favicon, small"`
	Output     string        `short:"o" long:"output" description:"Output file (.png or .svg)" default:"assets/icon/app_icon.png"`
	Fonts      []string      `long:"font" description:"Font file tried before the system fonts (repeatable)"`
}

func main() {
	if err := dispatch(os.Args[1:], os.Stdout); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		fatal(err)
	}
}

func dispatch(args []string, stdout io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "init":
			return runInit(args[1:], stdout)
		case "help":
			_, err := parse(&options{}, []string{"--help"}, stdout)
			return err
		}
	}
	return run(args, stdout)
}

func run(args []string, stdout io.Writer) error {
	var opts options
	parser, err := parse(&opts, args, stdout)
	if err != nil {
		return err
	}
	if err := logging.Init(opts.Logging); err != nil {
		return err
	}

	f, err := resolveFile(parser, &opts)
	if err != nil {
		return err
	}

	req, err := f.Request()
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	fmt.Fprintf(stdout, "Generating %s app icon...\n", req.DisplayName)

	cfg := generator.Config{
		Vector: func(w io.Writer) error { return icon.RenderSVG(w, req) },
	}
	if isPNG(f.OutputPath()) {
		img, choice, err := icon.Render(req)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if choice.Builtin {
			slog.Warn("System fonts unavailable, using embedded font", "font", choice.Source, "size", choice.Size)
		}
		cfg.Image = img
	}

	path, err := generator.Generate(f.OutputPath(), cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ Generated %s for %s\n", path, req.DisplayName)
	return nil
}

// resolveFile layers flag defaults, then the --config file, then flags
// given on the command line.
func resolveFile(parser *flags.Parser, opts *options) (config.File, error) {
	// Size 0 means unset below, so an explicit --size 0 must not get that far.
	if isExplicit(parser, "size") && opts.Size <= 0 {
		return config.File{}, fmt.Errorf("invalid --size %d: must be positive", opts.Size)
	}

	fromFlags := config.File{
		Name:       opts.Name,
		Glyph:      opts.Glyph,
		Background: &opts.Background,
		Foreground: &opts.Foreground,
		Size:       opts.Size,
		Preset:     opts.Preset,
		Output:     opts.Output,
		Fonts:      opts.Fonts,
	}
	if opts.Config == "" {
		return fromFlags, nil
	}

	loaded, warnings, err := config.Load(opts.Config)
	if err != nil {
		return config.File{}, err
	}
	for _, w := range warnings {
		slog.Warn("Config", "file", opts.Config, "warning", w)
	}

	var explicit config.File
	if isExplicit(parser, "name") {
		explicit.Name = opts.Name
	}
	if isExplicit(parser, "glyph") {
		explicit.Glyph = opts.Glyph
	}
	if isExplicit(parser, "bg") {
		explicit.Background = &opts.Background
	}
	if isExplicit(parser, "fg") {
		explicit.Foreground = &opts.Foreground
	}
	if isExplicit(parser, "output") {
		explicit.Output = opts.Output
	}
	explicit.Size = opts.Size
	explicit.Preset = opts.Preset
	explicit.Fonts = opts.Fonts

	defaults := fromFlags
	defaults.Size, defaults.Preset, defaults.Fonts = 0, "", nil
	return config.Merge(config.Merge(defaults, *loaded), explicit), nil
}

func isExplicit(parser *flags.Parser, long string) bool {
	opt := parser.FindOptionByLongName(long)
	return opt != nil && opt.IsSet() && !opt.IsSetDefault()
}

func runInit(args []string, stdout io.Writer) error {
	var opts struct {
		Output string `short:"o" long:"output" description:"Output path for the sample icon file" default:"icon.json"`
	}
	if _, err := parse(&opts, args, stdout); err != nil {
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(config.ExampleJSON()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}

	fmt.Fprintf(stdout, "Created: %s\n", opts.Output)
	fmt.Fprintf(stdout, "Run: appicon --config %s\n", opts.Output)
	return nil
}

func parse(opts any, args []string, stdout io.Writer) (*flags.Parser, error) {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "appicon"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
		}
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", rest)
	}
	return parser, nil
}

func isPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}

func fatal(err error) {
	slog.Error("appicon failed", "error", err)
	os.Exit(1)
}
