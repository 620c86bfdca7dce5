package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fernandezvara/pwcheck"
	"github.com/fernandezvara/pwcheck/internal/logging"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	configFlag     = "config"
	blocklistFlag  = "blocklist"
	dictionaryFlag = "dictionary"
	formatFlag     = "format"
	noColorFlag    = "no-color"
	logLevelFlag   = "log-level"
	debugFlag      = "debug"
	workersFlag    = "workers"
)

// globalFlags builds fresh flag values for each app so repeated runs in one
// process do not share parsed state.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Usage:   "Path to a yaml file with scoring weights and thresholds",
			Sources: cli.EnvVars(pwcheck.EnvPrefix + "CONFIG"),
		},
		&cli.StringFlag{
			Name:  blocklistFlag,
			Usage: "Word list of known-bad passwords, one per line (default: built-in list)",
		},
		&cli.StringFlag{
			Name:  dictionaryFlag,
			Usage: "Word list of common words, one per line (default: built-in list)",
		},
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "Output format [text, json, yaml]",
			Value: formatText,
		},
		&cli.BoolFlag{
			Name:  noColorFlag,
			Usage: "Disable colored category labels",
		},
		&cli.StringFlag{
			Name:  logLevelFlag,
			Usage: "Log level [debug, info, warn, error]",
			Value: "info",
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Prints verbose logs, same as --log-level=debug",
		},
	}
}

// state is what every command needs after the root Before hook ran.
type state struct {
	cfg        pwcheck.Config
	blocklist  pwcheck.WordSet
	dictionary pwcheck.WordSet
	printer    *printer
}

func newApp(in io.Reader, out io.Writer) *cli.Command {
	st := &state{}

	return &cli.Command{
		Name:            "pwcheck",
		Version:         fmt.Sprintf("%s (%s)", version, commit),
		Usage:           "Score password strength",
		HideHelpCommand: true,
		Reader:          in,
		Writer:          out,
		Flags:           globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String(logLevelFlag)
			if cmd.Bool(debugFlag) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)
			return ctx, st.load(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "Score each password given as an argument",
				ArgsUsage: "PASSWORD [PASSWORD...]",
				Action:    st.scoreAction,
			},
			{
				Name:   "watch",
				Usage:  "Re-score every line read from stdin",
				Action: st.watchAction,
			},
			{
				Name:      "batch",
				Usage:     "Score every line of a file in parallel",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  workersFlag,
						Usage: "Number of passwords scored in parallel",
						Value: pwcheck.DefaultWorkers,
					},
				},
				Action: st.batchAction,
			},
		},
	}
}

func (st *state) load(cmd *cli.Command) error {
	format := cmd.String(formatFlag)
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.Errorf("unsupported format: %s", format)
	}

	path := cmd.String(configFlag)
	cfg, err := pwcheck.LoadConfig(path)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	slog.Debug("config loaded", "path", path, "weak_max", cfg.WeakMax, "fair_max", cfg.FairMax, "strong_max", cfg.StrongMax)

	st.cfg = cfg
	if st.blocklist, err = wordSetOrDefault(cmd.String(blocklistFlag), pwcheck.DefaultBlocklist); err != nil {
		return err
	}
	if st.dictionary, err = wordSetOrDefault(cmd.String(dictionaryFlag), pwcheck.DefaultDictionary); err != nil {
		return err
	}
	slog.Debug("word lists loaded", "blocklist", st.blocklist.Len(), "dictionary", st.dictionary.Len())

	st.printer = &printer{
		w:      cmd.Root().Writer,
		format: format,
		color:  !cmd.Bool(noColorFlag),
	}
	return nil
}

func wordSetOrDefault(path string, def func() pwcheck.WordSet) (pwcheck.WordSet, error) {
	if path == "" {
		return def(), nil
	}
	return pwcheck.ReadWordSetFile(path)
}

func (st *state) score(pw string) pwcheck.Detail {
	return pwcheck.ScorePassword(pw, st.blocklist, st.dictionary, st.cfg)
}

func (st *state) scoreAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("at least one password required")
	}

	results := make([]pwcheck.Detail, 0, len(args))
	for _, pw := range args {
		results = append(results, st.score(pw))
	}
	return st.printer.printAll(results)
}

// watchAction scores each line as it arrives, the terminal counterpart of
// re-scoring a form field on every change.
func (st *state) watchAction(ctx context.Context, cmd *cli.Command) error {
	sc := bufio.NewScanner(cmd.Root().Reader)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.printer.printOne(st.score(sc.Text())); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "error reading input")
}

func (st *state) batchAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("input file required")
	}

	passwords, err := readLines(path)
	if err != nil {
		return err
	}

	workers := cmd.Int(workersFlag)
	slog.Debug("scoring batch", "file", path, "passwords", len(passwords), "workers", workers)

	results, err := pwcheck.ScoreAll(ctx, passwords, st.blocklist, st.dictionary, st.cfg, int(workers))
	if err != nil {
		return errors.Wrap(err, "batch scoring interrupted")
	}
	return st.printer.printAll(results)
}

// readLines returns the non-empty lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening file: %s", path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading file: %s", path)
	}
	return lines, nil
}
