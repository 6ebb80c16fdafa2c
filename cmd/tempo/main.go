package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coolbeans/tempo/pkg/offsets"
	"github.com/coolbeans/tempo/pkg/temporal"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tempo",
		Short: "UTC calendar and time arithmetic",
		Long: `Tempo works with UTC timestamps: it parses and formats ISO 8601 /
RFC 3339 text, converts to and from Unix timestamps, performs
nanosecond-precision duration arithmetic, and re-renders instants in
fixed UTC offsets (named via an offset registry or literal ±HH:MM).`,
		Version: version,
	}

	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(offsetsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// instantInfo is the JSON shape shared by the inspection commands.
type instantInfo struct {
	Text      string `json:"text"`
	Unix      int64  `json:"unix"`
	UnixNanos *int64 `json:"unix_nanos,omitempty"`
	Weekday   string `json:"weekday"`
	Ordinal   int    `json:"ordinal"`
	Offset    string `json:"offset,omitempty"`
}

func describe(odt temporal.OffsetDateTime) instantInfo {
	info := instantInfo{
		Text:    odt.String(),
		Unix:    odt.UnixTimestamp(),
		Weekday: odt.UTC.Date.Weekday().String(),
		Ordinal: odt.UTC.Date.Ordinal(),
	}
	if nanos, err := odt.UnixTimestampNanos(); err == nil {
		info.UnixNanos = &nanos
	}
	if !odt.Offset.IsUTC() {
		info.Offset = odt.Offset.String()
	}
	return info
}

func emit(cmd *cobra.Command, asJSON bool, info instantInfo) error {
	if asJSON {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}
	cmd.Println(info.Text)
	cmd.Printf("  unix:    %d\n", info.Unix)
	if info.UnixNanos != nil {
		cmd.Printf("  nanos:   %d\n", *info.UnixNanos)
	}
	cmd.Printf("  weekday: %s\n", info.Weekday)
	cmd.Printf("  ordinal: %d\n", info.Ordinal)
	return nil
}

func nowCmd() *cobra.Command {
	var asJSON bool
	var offsetFlag, dirFlag string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current UTC instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			utc, err := temporal.Now()
			if err != nil {
				return err
			}
			offset, err := resolveOffset(offsetFlag, dirFlag)
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, describe(temporal.FromUTC(utc, offset)))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	cmd.Flags().StringVar(&offsetFlag, "offset", "Z", "render in this offset (name or ±HH:MM)")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "directory of extra offset definitions")
	return cmd
}

func parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <timestamp>",
		Short: "Parse a date, time, or timestamp and print its normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := parseInstant(args[0])
			if err == nil {
				return emit(cmd, asJSON, describe(odt))
			}

			// Bare dates and times are still worth normalizing.
			if d, derr := temporal.ParseDate(args[0]); derr == nil {
				cmd.Printf("%s (weekday %s, ordinal %d)\n", d, d.Weekday(), d.Ordinal())
				return nil
			}
			if tm, terr := temporal.ParseTime(args[0]); terr == nil {
				cmd.Printf("%s (%d ns since midnight)\n", tm, tm.NanosSinceMidnight())
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	return cmd
}

func addCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add <timestamp> <duration>",
		Short: "Shift a timestamp by a signed duration",
		Long: `Shift a timestamp by a signed duration such as 90s, -250ms, 1h30m
or 2d12h. Units: ns, us, ms, s, m, h, d.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			dur, err := parseDuration(args[1])
			if err != nil {
				return err
			}
			shifted, err := odt.AddDuration(dur)
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, describe(shifted))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	return cmd
}

func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the signed duration a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			b, err := parseInstant(args[1])
			if err != nil {
				return err
			}
			diff := a.Difference(b)
			cmd.Println(diff.String())
			if nanos, err := diff.TotalNanos(); err == nil {
				cmd.Printf("  nanos: %d\n", nanos)
			}
			return nil
		},
	}
	return cmd
}

func convertCmd() *cobra.Command {
	var asJSON bool
	var offsetFlag, dirFlag string

	cmd := &cobra.Command{
		Use:   "convert <timestamp>",
		Short: "Re-render an instant in another fixed offset",
		Long: `Re-render an instant in another fixed offset. The instant itself is
preserved; only the local reading changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			offset, err := resolveOffset(offsetFlag, dirFlag)
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, describe(temporal.FromUTC(odt.UTC, offset)))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	cmd.Flags().StringVar(&offsetFlag, "offset", "Z", "target offset (name or ±HH:MM)")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "directory of extra offset definitions")
	return cmd
}

func offsetsCmd() *cobra.Command {
	var asJSON, watch bool
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "offsets",
		Short: "List the named fixed offsets the registry knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(dirFlag)
			if err != nil {
				return err
			}

			printAll := func() error {
				defs := registry.List()
				if asJSON {
					out, err := json.MarshalIndent(defs, "", "  ")
					if err != nil {
						return err
					}
					cmd.Println(string(out))
					return nil
				}
				for _, def := range defs {
					cmd.Printf("%-8s %-7s %s\n", def.Name, def.Offset, def.Description)
				}
				return nil
			}
			if err := printAll(); err != nil {
				return err
			}

			if !watch {
				return nil
			}
			if dirFlag == "" {
				return fmt.Errorf("--watch requires --dir")
			}

			registry.SetOnChange(func(event string, _ *offsets.Definition) {
				cmd.Printf("-- definitions changed (%s) --\n", event)
				_ = printAll()
			})
			if err := registry.Watch(); err != nil {
				return err
			}
			defer registry.StopWatch()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON output")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and reprint on definition changes")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "directory of extra offset definitions")
	return cmd
}

// parseInstant accepts an RFC 3339 timestamp with or without an offset, or
// a bare date (interpreted as midnight UTC).
func parseInstant(s string) (temporal.OffsetDateTime, error) {
	if odt, err := temporal.ParseOffsetDateTime(s); err == nil {
		return odt, nil
	}
	if dt, err := temporal.ParseDateTime(s); err == nil {
		return temporal.FromUTC(dt, temporal.UtcOffset{}), nil
	}
	if d, err := temporal.ParseDate(s); err == nil {
		return temporal.FromUTC(temporal.NewDateTime(d, temporal.Time{}), temporal.UtcOffset{}), nil
	}
	_, err := temporal.ParseOffsetDateTime(s)
	return temporal.OffsetDateTime{}, err
}

func loadRegistry(dir string) (*offsets.DefaultRegistry, error) {
	if dir == "" {
		return offsets.NewRegistry(), nil
	}
	return offsets.NewRegistryWithDirectory(dir)
}

func resolveOffset(s, dir string) (temporal.UtcOffset, error) {
	registry, err := loadRegistry(dir)
	if err != nil {
		return temporal.UtcOffset{}, err
	}
	return registry.Resolve(s)
}
