package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/uuid4"
)

type app struct {
	cfg    config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	a := &app{cfg: defaultConfig(), out: stdout, errOut: stderr}
	fromEnv(&a.cfg, getenv)

	rootCmd := &cobra.Command{
		Use:          "uuidgen",
		Short:        "Generate, parse and hash version 4 UUIDs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.errOut, a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error (env UUIDGEN_LOG_LEVEL)")

	rootCmd.AddCommand(
		a.newCmd(),
		a.parseCmd(),
		a.hashCmd(),
		a.benchCmd(),
		a.auditCmd(),
	)
	return rootCmd
}

func (a *app) newCmd() *cobra.Command {
	var (
		count  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			encode, err := formatter(format)
			if err != nil {
				return err
			}
			gen := uuid4.NewGenerator()
			for i := 0; i < count; i++ {
				fmt.Fprintln(a.out, encode(gen.New()))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	cmd.Flags().StringVarP(&format, "format", "f", "canonical", "output format: canonical, upper, hex, braced, urn, base64")
	return cmd
}

func formatter(name string) (func(uuid4.UUID) string, error) {
	switch name {
	case "canonical", "":
		return uuid4.UUID.String, nil
	case "upper":
		return func(u uuid4.UUID) string { return strings.ToUpper(u.String()) }, nil
	case "hex":
		return uuid4.UUID.EncodeToHex, nil
	case "braced":
		return func(u uuid4.UUID) string { return "{" + u.String() + "}" }, nil
	case "urn":
		return uuid4.UUID.URN, nil
	case "base64":
		return uuid4.UUID.EncodeToBase64, nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse UUIDs and describe them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rejected := 0
			for _, arg := range args {
				id, err := uuid4.Parse(arg)
				if err != nil {
					a.logger.Error("rejected", "input", arg, "err", err)
					rejected++
					continue
				}
				fmt.Fprintf(a.out, "%s\tversion=%d\tvariant=%s\thash=%#x\n", id, id.Version(), id.Variant(), id.Hash())
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d inputs rejected", rejected, len(args))
			}
			return nil
		},
	}
}

func (a *app) hashCmd() *cobra.Command {
	var width string
	cmd := &cobra.Command{
		Use:   "hash TEXT...",
		Short: "Print the FNV-1a hash of UUIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hash func(uuid4.UUID) uint64
			switch width {
			case "native":
				hash = func(u uuid4.UUID) uint64 { return uint64(uuid4.Hash(u)) }
			case "32":
				hash = func(u uuid4.UUID) uint64 { return uint64(uuid4.Hash32(u)) }
			case "64":
				hash = uuid4.Hash64
			default:
				return fmt.Errorf("unknown width %q", width)
			}
			for _, arg := range args {
				id, err := uuid4.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s\t%d\n", id, hash(id))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&width, "width", "w", "native", "hash width: native, 32, 64")
	return cmd
}

func (a *app) benchCmd() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Generate many UUIDs and count collisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runBench(cmd.Context(), opts)
			if err != nil {
				return err
			}
			a.logger.Info("bench finished", "generated", res.Generated, "workers", opts.Workers, "elapsed", res.Elapsed)
			fmt.Fprintf(a.out, "generated %d UUIDs with %d workers in %s (%.0f/s), %d collisions\n",
				res.Generated, opts.Workers, res.Elapsed, res.Rate(), res.Collisions)
			if res.Collisions > 0 {
				return fmt.Errorf("%d collisions", res.Collisions)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10000000, "number of UUIDs to generate")
	cmd.Flags().IntVar(&opts.Workers, "workers", runtime.GOMAXPROCS(0), "goroutines, each with its own generator")
	cmd.Flags().IntVar(&opts.Shards, "shards", 64, "lock shards of the seen set")
	return cmd
}

func (a *app) auditCmd() *cobra.Command {
	var opts auditOptions
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Register generated UUIDs in MySQL and report duplicates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.DSN == "" {
				opts.DSN = a.cfg.DSN
			}
			if opts.DSN == "" {
				return fmt.Errorf("no DSN: pass --dsn or set UUIDGEN_DSN")
			}
			res, err := runAudit(cmd.Context(), a.logger, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "registered %d of %d UUIDs in %s, %d duplicates, table now holds %d\n",
				res.Inserted, res.Generated, res.Elapsed, res.Generated-res.Inserted, res.Total)
			if res.Inserted != res.Generated {
				return fmt.Errorf("%d duplicates", res.Generated-res.Inserted)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.DSN, "dsn", "", "MySQL DSN (env UUIDGEN_DSN)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "registry table (default uuid_registry)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 100000, "number of UUIDs to register")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "goroutines, each with its own generator")
	cmd.Flags().IntVar(&opts.Batch, "batch", 1000, "rows per INSERT")
	return cmd
}
