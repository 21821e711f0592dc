// trc - Tribble balanced-ternary codec CLI
//
// Usage:
//
//	trc encode "message"          Encode text (character mode)
//	trc encode --bytes "data"     Encode raw bytes (base-81 byte mode)
//	trc decode "symbols"          Decode a symbol stream (dialects accepted)
//	trc opcode WORD               Encode a vocabulary opcode
//	trc vocab                     List the opcode vocabulary
//	trc stream encode "message"   Emit an envelope message (sync + width)
//	trc stream decode [file]      Decode envelope messages
//	trc version                   Print version info
//
// The carrier "+=-=" is applied by default; use --no-carrier to disable it
// or --carrier to override the pattern. --profile loads a YAML profile
// with the full wire configuration.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/tribble/config"
	"github.com/Neumenon/tribble/tribble"
)

const version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trc:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	profile    string
	carrier    string
	carrierSet bool
	noCarrier  bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "trc",
		Short:         "Balanced-ternary tribble codec",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags.carrierSet = cmd.Flags().Changed("carrier")

			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}

	root.PersistentFlags().StringVar(&flags.profile, "profile", "", "YAML codec profile")
	root.PersistentFlags().StringVar(&flags.carrier, "carrier", "+=-=", "carrier pattern")
	root.PersistentFlags().BoolVar(&flags.noCarrier, "no-carrier", false, "disable the carrier overlay")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		encodeCmd(flags),
		decodeCmd(flags),
		opcodeCmd(flags),
		vocabCmd(flags),
		streamCmd(flags),
		versionCmd(),
	)
	return root
}

// buildCodec resolves profile and carrier flags into a codec.
// Precedence: profile file, then carrier flags on top.
func buildCodec(flags *rootFlags) (*tribble.Codec, error) {
	cfg := tribble.DefaultConfig()
	if flags.profile != "" {
		var err error
		cfg, err = config.Load(flags.profile)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded profile", "path", flags.profile)
	}

	switch {
	case flags.noCarrier:
		cfg.Carrier = nil
	case flags.carrierSet || (flags.profile == "" && flags.carrier != ""):
		pat, err := tribble.ParsePattern(flags.carrier, cfg.Alphabet)
		if err != nil {
			return nil, err
		}
		cfg.Carrier = pat
	}

	slog.Debug("codec configured", "carrier", len(cfg.Carrier) > 0)
	return tribble.New(cfg)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trc %s (frame width %d)\n", version, tribble.FrameWidth)
		},
	}
}
