package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"qrt2csv/config"
	"qrt2csv/csvout"
	"qrt2csv/qrt"
	"qrt2csv/qrt/lbytes"
	"qrt2csv/ui"
)

type (
	Args struct {
		Input       string `arg:"positional" help:"path to the QRT file" placeholder:"QRT_FILE"`
		Output      string `arg:"positional" help:"directory for the CSV files [default: csvdir]" placeholder:"OUT_DIR"`
		Config      string `help:"path to a YAML settings file" placeholder:"FILE"`
		LogLevel    string `arg:"--log-level" help:"debug, info, warn or error" placeholder:"LEVEL"`
		NoHeader    bool   `arg:"--no-header" help:"never write the CSV header row"`
		Aligned     bool   `help:"try 252-byte instrument slots before 254-byte ones"`
		Describe    bool   `help:"print a JSON summary of the file instead of writing CSV files"`
		Interactive bool   `help:"browse the decoded instruments instead of writing CSV files"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Decode a QRT market-data snapshot into one CSV file per instrument.\n",
			"Rows are appended to existing files, so several snapshots can be",
			"collected into the same directory.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (Args) Version() string {
	return "qrt2csv 1.0.0"
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func resolveConfig(args Args) (*config.Config, error) {
	cfg, err := config.LoadAndValidate(args.Config)
	if err != nil {
		return nil, err
	}
	if args.Output != "" {
		cfg.OutputDir = args.Output
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if args.NoHeader {
		headerRow := false
		cfg.HeaderRow = &headerRow
	}
	if args.Aligned {
		cfg.InitialAlignment = qrt.ModeAligned.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate arguments")
	}
	return cfg, nil
}

// Run decodes args.Input and writes, describes or browses the result.
// Progress goes to stdout, logs to stderr.
func Run(args Args, stdout io.Writer, stderr io.Writer) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.LogLevel, stderr).
		With().
		Str("run_id", uuid.NewString()).
		Str("input", args.Input).
		Logger()

	if !CheckExistence(args.Input) {
		err := errors.Errorf(`source file "%s" does not exist`, args.Input)
		logger.Error().Err(err).Msg("nothing to decode")
		return err
	}

	reader, err := lbytes.OpenFile(args.Input)
	if err != nil {
		logger.Error().Err(err).Msg("open failed")
		return err
	}
	defer reader.Close()

	snapshot, err := qrt.Decode(reader, qrt.Options{InitialMode: cfg.Alignment(), Logger: &logger})
	if err != nil {
		logger.Error().Err(err).Msg("decode failed")
		return err
	}

	switch {
	case args.Describe:
		bs, err := json.MarshalIndent(qrt.ToLinkedHashMap(*snapshot), "", "  ")
		if err != nil {
			return errors.Wrap(err, "Run error marshalling summary")
		}
		_, err = fmt.Fprintln(stdout, string(bs))
		return err
	case args.Interactive:
		return ui.Start(*snapshot)
	}

	writer, err := csvout.NewWriter(cfg.OutputDir, cfg.WriteHeaderRow())
	if err != nil {
		logger.Error().Err(err).Msg("output directory unavailable")
		return err
	}
	fmt.Fprintln(stdout, "---Start writing files...---")
	paths, err := writer.WriteSnapshot(*snapshot, func(path string) {
		fmt.Fprintln(stdout, path)
	})
	if err != nil {
		logger.Error().Err(err).Int("written", len(paths)).Msg("write failed")
		return err
	}
	fmt.Fprintln(stdout, "---End writing files---")
	logger.Info().Int("files", len(paths)).Str("output_dir", cfg.OutputDir).Msg("done")
	return nil
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	if args.Input == "" {
		println("QRT_FILE is needed!")
		parser.WriteHelp(os.Stdout)
		return
	}
	if err := Run(args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
