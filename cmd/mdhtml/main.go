package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdhtml"
	"pkt.systems/version"
)

const defaultWidth = 80

var traceKeys = []string{"mdhtml.inline", "mdhtml.block", "mdhtml.io", "mdhtml.cli"}

func init() {
	version.SetDefaultModule("pkt.systems/mdhtml")
}

// tracer traces with key 'mdhtml.cli'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.cli")
}

// errUsage reports a command line mistake; the process exits with status 2.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err != errUsage {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		outPath     string
		tokens      bool
		widthFlag   int
		frontMatter bool
		validate    bool
		traceLevel  string
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&tokens, "tokens", false, "Print the grouped token stream instead of HTML")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Token dump width (0 uses terminal width if available)")
	flags.BoolVar(&frontMatter, "front-matter", false, "Strip a leading YAML/TOML/JSON front matter block")
	flags.BoolVar(&validate, "validate", true, "Reject input that is not UTF-8 text")
	flags.StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdhtml [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nInput is a path, file:// URL or http(s):// URL. If omitted, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return nil
	}

	if err := setupTracing(traceLevel); err != nil {
		return fmt.Errorf("%w: invalid --trace %q: %v", errUsage, traceLevel, err)
	}

	inputs := flags.Args()
	if len(inputs) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", errUsage, len(inputs))
	}
	if len(inputs) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flags.Usage()
		return errUsage
	}

	reader, closer, err := openInput(inputs)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	opts := []mdhtml.RenderOption{
		mdhtml.WithFrontMatter(frontMatter),
		mdhtml.WithValidation(validate),
	}
	if tokens {
		return dumpTokens(reader, writer, resolveWidth(widthFlag), opts)
	}
	return mdhtml.Render(mdhtml.RenderRequest{
		Reader:  reader,
		Writer:  writer,
		Options: opts,
	})
}

// setupTracing routes all mdhtml trace keys to the Go log adapter at level.
func setupTracing(level string) error {
	level, err := normalizeTraceLevel(level)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func normalizeTraceLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return "Debug", nil
	case "info":
		return "Info", nil
	case "error", "":
		return "Error", nil
	default:
		return "", fmt.Errorf("expected Debug|Info|Error")
	}
}

func dumpTokens(r io.Reader, w io.Writer, width int, opts []mdhtml.RenderOption) error {
	tokens, err := mdhtml.Parse(mdhtml.ParseRequest{
		Reader:  r,
		Options: opts,
	})
	if err != nil {
		return err
	}
	return mdhtml.Dump(w, tokens, width)
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func openInput(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		tracer().Infof("reading markdown from stdin")
		return os.Stdin, nil, nil
	}
	raw := strings.TrimSpace(args[0])
	if raw == "" {
		return nil, nil, fmt.Errorf("empty input argument")
	}
	tracer().Infof("starting conversion of %s", raw)
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return openFile(path)
		}
	}
	return openFile(raw)
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := mdhtml.FetchDocument(context.Background(), nil, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
