package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/snlilm/render"
)

// Option structs for subcommands that have flags
type PreprocessOptions struct {
	InPath       string
	OutPath      string
	Prefix       string
	KeepBrackets bool
	Quiet        bool
}

type StatOptions struct {
	InPath       string
	Prefix       string
	KeepBrackets bool
	Format       string
	NoColor      bool
	Quiet        bool
}

type ImportOptions struct {
	From   string
	To     string
	Prefix string
	Quiet  bool
}

type ExportOptions struct {
	From   string
	To     string
	Prefix string
}

type QueryOptions struct {
	KeepBrackets bool
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// parseFlags parses args, printing usage to the UI streams on error.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func noArgs(fs *flag.FlagSet, ui UI) error {
	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return fmt.Errorf("%s command accepts no arguments", fs.Name())
	}
	return nil
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("snlilm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := parseFlags(fs, args, ui); err != nil {
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parsePreprocessArgs(args []string, ui UI) (PreprocessOptions, error) {
	fs := flag.NewFlagSet("preprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts PreprocessOptions
	inPath := envOr(envInPath, defaultInPath)
	outPath := envOr(envOutPath, defaultOutPath)
	fs.StringVar(&opts.InPath, "in", inPath, "Path to the corpus directory or imported SQLite file")
	fs.StringVar(&opts.InPath, "i", inPath, "alias for -in")
	fs.StringVar(&opts.OutPath, "out", outPath, "Directory to write test.txt and train.txt to")
	fs.StringVar(&opts.OutPath, "o", outPath, "alias for -out")
	fs.StringVar(&opts.Prefix, "prefix", envOr(envPrefix, ""), "Prefix of the split file names (default snli_1.0)")
	fs.BoolVar(&opts.KeepBrackets, "keep-bracket", false, "Keep the parse brackets")
	fs.BoolVar(&opts.KeepBrackets, "b", false, "alias for -keep-bracket")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Do not show progress bars")
	fs.BoolVar(&opts.Quiet, "q", false, "alias for -quiet")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s preprocess [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Write the test split to test.txt and the train and dev splits to train.txt,\n")
		_, _ = fmt.Fprintf(fs.Output(), "  one sentence per line, premises before hypotheses.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, noArgs(fs, ui)
}

func parseStatArgs(args []string, ui UI) (StatOptions, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	inPath := envOr(envInPath, defaultInPath)
	fs.StringVar(&opts.InPath, "in", inPath, "Path to the corpus directory or imported SQLite file")
	fs.StringVar(&opts.InPath, "i", inPath, "alias for -in")
	fs.StringVar(&opts.Prefix, "prefix", envOr(envPrefix, ""), "Prefix of the split file names (default snli_1.0)")
	fs.BoolVar(&opts.KeepBrackets, "keep-bracket", false, "Keep the parse brackets")
	fs.BoolVar(&opts.KeepBrackets, "b", false, "alias for -keep-bracket")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Do not color the output")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Do not show progress bars")
	fs.BoolVar(&opts.Quiet, "q", false, "alias for -quiet")

	opts.Format = render.DefaultFormat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Output format (text, json)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show per split counts of records, kept and repeated premises and removed brackets.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, noArgs(fs, ui)
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.From, "from", envOr(envInPath, defaultInPath), "Corpus directory of the JSONL split files")
	fs.StringVar(&opts.To, "to", "", "SQLite file to import to (required)")
	fs.StringVar(&opts.Prefix, "prefix", envOr(envPrefix, ""), "Prefix of the split file names (default snli_1.0)")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Do not show progress bars")
	fs.BoolVar(&opts.Quiet, "q", false, "alias for -quiet")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import [options] -to <db>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Import the corpus splits from JSONL files to SQLite.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.To == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("-to is required")
	}

	return opts, noArgs(fs, ui)
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "SQLite file to export from (required)")
	fs.StringVar(&opts.To, "to", "", "Directory to write the JSONL split files to (required)")
	fs.StringVar(&opts.Prefix, "prefix", envOr(envPrefix, ""), "Prefix of the split file names (default snli_1.0)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export -from <db> -to <dir>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Export the corpus splits from SQLite to JSONL files.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("-from and -to are required")
	}

	return opts, noArgs(fs, ui)
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.BoolVar(&opts.KeepBrackets, "keep-bracket", false, "Start with the parse brackets kept")
	fs.BoolVar(&opts.KeepBrackets, "b", false, "alias for -keep-bracket")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive mode: type a binary parse or a JSONL record to see it cleaned.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, noArgs(fs, ui)
}

func parseNoArgs(name, description string, args []string, ui UI) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s %s\n", os.Args[0], name)
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  %s\n", description)
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return err
	}

	return noArgs(fs, ui)
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Language modeling text from SNLI binary parses\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  preprocess  Write test.txt and train.txt from the corpus splits.\n")
		_, _ = fmt.Fprintf(output, "  stat        Show statistics of the corpus splits.\n")
		_, _ = fmt.Fprintf(output, "  import      Import the corpus splits from JSONL to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export      Export the corpus splits from SQLite to JSONL.\n")
		_, _ = fmt.Fprintf(output, "  query       Enter interactive mode.\n")
		_, _ = fmt.Fprintf(output, "  bash        Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version     Show version.\n")
		_, _ = fmt.Fprintf(output, "  help        Show help for a command.\n")
		_, _ = fmt.Fprintf(output, "\nEnvironment (also read from ./.env):\n")
		_, _ = fmt.Fprintf(output, "  %s, %s, %s\n", envInPath, envOutPath, envPrefix)
	}
}
