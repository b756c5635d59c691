// walcord rewrites KEY(...) placeholder tokens in text templates into
// literal color expressions, driven by a pywal palette.
//
// Usage:
//
//	walcord                          # default Discord theme, pywal cache colors
//	walcord -t templates/ -o out/    # rewrite every file in a directory
//	cat app.css | walcord --stdin    # rewrite stdin
//	walcord -i wallpaper.png         # generate the palette first via wal
//	walcord preview                  # show the resolved palette as swatches
//
// Palette sources, in precedence order: --json <colors.json>, --image
// (runs the wal binary), the pywal cache at ~/.cache/wal/colors.json.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/danrus1100/walcord/internal/config"
	"github.com/danrus1100/walcord/internal/theme"
	"github.com/danrus1100/walcord/internal/version"
	"github.com/danrus1100/walcord/pkg/palette"
	"github.com/danrus1100/walcord/pkg/preview"
	"github.com/danrus1100/walcord/pkg/pywal"
	"github.com/danrus1100/walcord/pkg/rewrite"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 && args[0] == "preview" {
		return runPreview(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("walcord", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags cliArgs
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if flags.version {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	cfg := config.MergeWithFlags(config.Load(), config.CliFlags{
		Output:    "", // --output may be a file; resolved below, not via config
		Extension: flags.extension,
		Quiet:     flags.quiet,
		JSONPath:  flags.jsonPath,
		QuietSet:  flags.quiet,
	})
	log := newLogger(stderr, cfg.Quiet)

	if flags.useStdin && flags.themePath != "" {
		log.errorf("you can't use stdin with --theme")
		return 2
	}
	if flags.useStdin && !stdinIsPiped(stdin) {
		log.errorf("--stdin given but stdin is a terminal")
		return 2
	}

	reg, err := buildRegistry(context.Background(), flags.image, cfg.JSONPath, log)
	if err != nil {
		log.errorf("%v", err)
		return 1
	}

	inputs, err := collectInputs(flags, cfg, stdin, log)
	if err != nil {
		log.errorf("%v", err)
		return 1
	}

	outPath, outIsFile, err := resolveOutput(flags.output, cfg.OutputDir, len(inputs))
	if err != nil {
		log.errorf("%v", err)
		return 1
	}

	rw := rewrite.New(reg)
	for _, in := range inputs {
		log.infof("working on the file: %s", in.label)
		theme.ReplaceDescription(in.lines)
		text, diags := rw.Rewrite(in.lines, "\n", in.label)
		log.report(diags)

		target := outPath
		if !outIsFile {
			target = filepath.Join(outPath, in.name)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			log.errorf("creating output directory: %v", err)
			return 1
		}
		if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
			log.errorf("writing %s: %v", target, err)
			return 1
		}
		log.infof("%s generated successfully", target)
	}
	return 0
}

// cliArgs is the flag surface, long and short forms paired.
type cliArgs struct {
	image     string
	themePath string
	output    string
	extension string
	jsonPath  string
	useStdin  bool
	quiet     bool
	version   bool
}

func (a *cliArgs) register(fs *flag.FlagSet) {
	fs.StringVar(&a.image, "image", "", "Path to the image to generate colors from (runs wal).")
	fs.StringVar(&a.image, "i", "", "Shorthand for --image.")
	fs.StringVar(&a.themePath, "theme", "", "Theme file or directory to rewrite.")
	fs.StringVar(&a.themePath, "t", "", "Shorthand for --theme.")
	fs.StringVar(&a.output, "output", "", "Output file or directory (default: ~/.config/vesktop/themes).")
	fs.StringVar(&a.output, "o", "", "Shorthand for --output.")
	fs.StringVar(&a.extension, "extension", "", "Extension for stdin-derived theme files (default: .css).")
	fs.StringVar(&a.extension, "e", "", "Shorthand for --extension.")
	fs.StringVar(&a.jsonPath, "json", "", "colors.json file with pywal colors.")
	fs.StringVar(&a.jsonPath, "j", "", "Shorthand for --json.")
	fs.BoolVar(&a.useStdin, "stdin", false, "Read the theme from stdin.")
	fs.BoolVar(&a.quiet, "quiet", false, "Only print errors.")
	fs.BoolVar(&a.quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&a.version, "version", false, "Print version and exit.")
	fs.BoolVar(&a.version, "v", false, "Shorthand for --version.")
}

// input is one template to rewrite: its lines, a diagnostic label, and the
// output file name used when writing into a directory.
type input struct {
	label string
	name  string
	lines []string
}

// buildRegistry acquires the palette and builds the registry, logging
// non-fatal build warnings. Acquisition failures are fatal to the run.
func buildRegistry(ctx context.Context, image, jsonPath string, log *logger) (*palette.Registry, error) {
	var (
		doc *pywal.Document
		err error
	)
	switch {
	case jsonPath != "":
		log.infof("getting colors from json (%s)...", jsonPath)
		doc, err = pywal.LoadFile(expandHome(jsonPath))
	case image != "":
		log.infof("getting colors from image: %s", image)
		doc, err = pywal.FromImage(ctx, expandHome(image))
	default:
		var path string
		path, err = pywal.DefaultCachePath()
		if err == nil {
			log.infof("getting colors from json (%s)...", path)
			doc, err = pywal.LoadFile(path)
		}
	}
	if err != nil {
		return nil, err
	}

	flat, err := doc.Flatten()
	if err != nil {
		return nil, err
	}
	reg, warnings := palette.Build(flat)
	for _, w := range warnings {
		log.warnf("%s", w)
	}
	return reg, nil
}

// collectInputs gathers the templates to rewrite: stdin, a theme file or
// directory walk, or the embedded default theme.
func collectInputs(flags cliArgs, cfg *config.AppConfig, stdin io.Reader, log *logger) ([]input, error) {
	if flags.useStdin {
		log.infof("getting data from stdin...")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		lines := splitLines(string(data))
		name := theme.ExtractName(lines, cfg.Extension, theme.StdinFileName)
		return []input{{label: "STDIN_THEME", name: name, lines: lines}}, nil
	}

	if flags.themePath == "" {
		return []input{{
			label: "DEFAULT_THEME",
			name:  theme.DefaultFileName,
			lines: theme.DefaultLines(),
		}}, nil
	}

	path := expandHome(flags.themePath)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("is not an existing file or directory: %s", flags.themePath)
	}

	var files []string
	if info.IsDir() {
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking theme directory: %w", walkErr)
		}
	} else {
		files = []string{path}
	}
	log.infof("found %d theme files", len(files))

	inputs := make([]input, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading theme %s: %w", f, err)
		}
		inputs = append(inputs, input{
			label: f,
			name:  filepath.Base(f),
			lines: splitLines(string(data)),
		})
	}
	return inputs, nil
}

// resolveOutput decides the output target. A path with a dot past its
// first character is a single output file; anything else is a directory.
func resolveOutput(flag, defaultDir string, inputCount int) (path string, isFile bool, err error) {
	if flag == "" {
		return defaultDir, false, nil
	}
	path = expandHome(flag)
	if len(path) > 1 && strings.Contains(path[1:], ".") {
		if inputCount > 1 {
			return "", false, fmt.Errorf("you can't use multiple theme files with a single output file")
		}
		return path, true, nil
	}
	return path, false, nil
}

func expandHome(path string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return strings.ReplaceAll(path, "~", home)
	}
	return path
}

// splitLines splits text into lines without terminators, tolerating a
// missing final newline.
func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// stdinIsPiped reports whether stdin carries piped data rather than a TTY.
func stdinIsPiped(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return true // in-memory reader, e.g. tests
	}
	return !term.IsTerminal(int(f.Fd()))
}

// --- walcord preview subcommand ---

func runPreview(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("walcord preview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	interactive := fs.Bool("interactive", false, "Browse the palette in an interactive viewer.")
	jsonPath := fs.String("json", "", "colors.json file with pywal colors.")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(stderr, true)
	reg, err := buildRegistry(context.Background(), "", *jsonPath, log)
	if err != nil {
		log.errorf("%v", err)
		return 1
	}

	if *interactive {
		if err := preview.Run(context.Background(), reg); err != nil {
			log.errorf("preview: %v", err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, preview.Render(reg, previewStyles(stdout)))
	return 0
}

// previewStyles honors NO_COLOR and non-TTY stdout by falling back to
// unstyled output.
func previewStyles(w io.Writer) *preview.Styles {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		noColor = true
	}
	if noColor {
		plain := lipgloss.NewStyle()
		return &preview.Styles{Label: plain, Hex: plain, Muted: plain, Header: plain}
	}
	return preview.DefaultStyles()
}
