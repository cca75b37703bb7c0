// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"

	"ssrfind/internal/cliutil"
	"ssrfind/internal/cmdutil"
	"ssrfind/internal/config"
	"ssrfind/internal/output"
	"ssrfind/internal/ssr"
	"ssrfind/internal/version"
)

// viperKeys maps flag names onto config keys.
var viperKeys = map[string]string{
	"min-repeat-length":   "scan.min-repeat-length",
	"max-repeat-length":   "scan.max-repeat-length",
	"min-repeat-count":    "scan.min-repeat-count",
	"min-tandem-length":   "scan.min-tandem-length",
	"mismatch-percentage": "scan.mismatch-percentage",
	"output":              "output",
	"log-level":           "log-level",
	"quiet":               "quiet",
	"db-driver":           "db.driver",
	"db-dsn":              "db.dsn",
	"addr":                "server.addr",
	"max-body-bytes":      "server.max-body-bytes",
}

// Command is a command tree bound to one set of handlers. Code is the exit
// code reported by whichever handler ran.
type Command struct {
	Root *cobra.Command
	env  *Env
	code int
}

func (c *Command) Code() int { return c.code }

// New builds the ssrfind command tree.
func New(h Handlers, stdout, stderr io.Writer) *Command {
	c := &Command{env: &Env{Stdout: stdout, Stderr: stderr}}

	root := &cobra.Command{
		Use:   "ssrfind",
		Short: "Find simple sequence repeats (microsatellites) in DNA",
		Long: `
ssrfind scans DNA sequences for tandem repeats of short motifs (SSRs),
reports each run with its coordinates, and summarizes counts per repeat
type and density per kilobase.`,
		Version:           version.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("ssrfind version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json); default ./ssrfind.yaml if present")
	pf.String("env-file", "", "dotenv file with SSRFIND_* variables; default ./.env if present")
	pf.String("db-driver", config.DriverSQLite, "analysis store driver: sqlite | postgres")
	pf.String("db-dsn", "ssrfind.db", "sqlite file or postgres URL")
	pf.String("log-level", "info", "log level: debug | info | warn | error")
	pf.BoolP("quiet", "q", false, "only log errors")

	root.AddCommand(
		c.scanCommand(h),
		c.historyCommand(h),
		c.serveCommand(h),
		c.docsCommand(),
	)
	c.Root = root
	return c
}

// loadConfig merges defaults, config file, env and flags into c.env.
func (c *Command) loadConfig(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	for name, key := range viperKeys {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	c.env.Config = cfg
	c.env.Log = cmdutil.NewLogger(c.env.Stderr, cfg.LogLevel, cfg.Quiet)
	return nil
}

func addConstraintFlags(f *pflag.FlagSet) {
	d := ssr.DefaultConstraints()
	f.Int("min-repeat-length", d.MinRepeatLength, "shortest motif length (1-100)")
	f.Int("max-repeat-length", d.MaxRepeatLength, "longest motif length (1-100)")
	f.Int("min-repeat-count", d.MinRepeatCount, "minimum number of motif copies")
	f.Int("min-tandem-length", d.MinTandemLength, "minimum total run length (bp)")
	f.Int("mismatch-percentage", d.MismatchPercentage, "mismatches allowed per copy, as % of motif length (0-100)")
}

func addOutputFlag(f *pflag.FlagSet) {
	f.StringP("output", "o", output.FormatCSV, "output format: "+strings.Join(output.Formats(), " | "))
}

func (c *Command) scanCommand(h Handlers) *cobra.Command {
	var (
		o        ScanOptions
		noHeader bool
	)
	cmd := &cobra.Command{
		Use:   "scan [FILE...]",
		Short: "Scan FASTA or plain sequence input for SSRs",
		Long: `
Scan one or more inputs for simple sequence repeats. FILE may be FASTA or a
bare sequence, gzip-compressed or not; '-' reads stdin and globs are
expanded. All inputs are merged into one record set so finding ids are
unique across files.`,
		Example: `  ssrfind scan genome.fa
  ssrfind scan --min-repeat-count 5 --mismatch-percentage 10 -o json reads/*.fa.gz
  ssrfind scan --sequence ATATATATATATCAGCAGCAG --pretty -o text
  zcat big.fa.gz | ssrfind scan - -o summary --progress`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return err
			}
			if err := cliutil.SingleStdin(inputs); err != nil {
				return err
			}
			switch {
			case o.Sequence != "" && len(inputs) > 0:
				return fmt.Errorf("--sequence conflicts with FILE arguments")
			case o.Sequence == "" && len(inputs) == 0:
				return fmt.Errorf("no input: give FILE..., '-' for stdin, or --sequence")
			}
			if o.Sort != SortCanonical && o.Sort != SortPosition {
				return fmt.Errorf("invalid --sort %q (want %s or %s)", o.Sort, SortCanonical, SortPosition)
			}
			if o.Flank < 0 {
				return fmt.Errorf("--flank must be ≥ 0")
			}
			o.Inputs = inputs
			o.Header = !noHeader
			c.code = h.Scan(cmd.Context(), c.env, o)
			return nil
		},
	}
	f := cmd.Flags()
	addConstraintFlags(f)
	addOutputFlag(f)
	f.StringVar(&o.Sequence, "sequence", "", "analyze this sequence text instead of files")
	f.BoolVar(&noHeader, "no-header", false, "suppress the header line in csv/text")
	f.BoolVar(&o.Pretty, "pretty", false, "ASCII block per finding with mismatch carets (text)")
	f.IntVar(&o.Flank, "flank", 0, "bases of context on each side of the repeat (fasta)")
	f.StringVar(&o.Sort, "sort", SortCanonical, "presentation order: canonical | position")
	f.BoolVar(&o.Save, "save", false, "store the analysis (see history)")
	f.BoolVar(&o.Progress, "progress", false, "progress bar on stderr")
	f.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is found")
	return cmd
}

func (c *Command) historyCommand(h Handlers) *cobra.Command {
	var (
		o        HistoryOptions
		noHeader bool
	)
	cmd := &cobra.Command{
		Use:   "history [RUN_ID]",
		Short: "List stored analyses or print one",
		Example: `  ssrfind history
  ssrfind history 1b4e28ba-2fa1-11d2-883f-0016d3cca427 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.RunID = args[0]
			}
			o.Header = !noHeader
			c.code = h.History(cmd.Context(), c.env, o)
			return nil
		},
	}
	addOutputFlag(cmd.Flags())
	cmd.Flags().IntVar(&o.Limit, "limit", 50, "runs to list")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress header lines")

	del := &cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Delete a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.code = h.Delete(cmd.Context(), c.env, DeleteOptions{RunID: args[0]})
			return nil
		},
	}
	cmd.AddCommand(del)
	return cmd
}

func (c *Command) serveCommand(h Handlers) *cobra.Command {
	var o ServeOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.code = h.Serve(cmd.Context(), c.env, o)
			return nil
		},
	}
	f := cmd.Flags()
	addConstraintFlags(f)
	f.String("addr", ":8080", "listen address")
	f.Int64("max-body-bytes", 32<<20, "request body limit")
	f.BoolVar(&o.NoStore, "no-store", false, "run without a database (no saving, no history routes)")
	return cmd
}

func (c *Command) docsCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "docs DIR",
		Short:  "Write Markdown documentation for every command",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0o755); err != nil {
				fmt.Fprintln(c.env.Stderr, err)
				c.code = 3
				return nil
			}
			if err := doc.GenMarkdownTree(cmd.Root(), args[0]); err != nil {
				fmt.Fprintln(c.env.Stderr, err)
				c.code = 3
			}
			return nil
		},
	}
}
