package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neumenon/tribble/stream"
	"github.com/Neumenon/tribble/tribble"
)

func encodeCmd(flags *rootFlags) *cobra.Command {
	var asBytes bool
	var led bool

	c := &cobra.Command{
		Use:   "encode [message]",
		Short: "Encode a message to a symbol stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var out string
			if asBytes {
				out, err = codec.Encode([]byte(input))
			} else {
				out, err = codec.EncodeText(input)
			}
			if err != nil {
				return err
			}
			slog.Debug("encoded", "symbols", len(out), "frames", len(out)/tribble.FrameWidth)

			if led {
				out = tribble.ToLED(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().BoolVar(&asBytes, "bytes", false, "byte mode (base-81 split) instead of character mode")
	c.Flags().BoolVar(&led, "led", false, "render output as LED glyphs")
	return c
}

func decodeCmd(flags *rootFlags) *cobra.Command {
	var asBytes bool

	c := &cobra.Command{
		Use:   "decode [symbols]",
		Short: "Decode a symbol stream (LED and dialect notations accepted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			symbols := tribble.Normalize(input)

			if asBytes {
				data, err := codec.Decode(symbols)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			text, err := codec.DecodeText(symbols)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	c.Flags().BoolVar(&asBytes, "bytes", false, "byte mode (base-81 split) instead of character mode")
	return c
}

func opcodeCmd(flags *rootFlags) *cobra.Command {
	var led bool

	c := &cobra.Command{
		Use:   "opcode WORD",
		Short: "Encode a vocabulary opcode as a single frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}
			out, err := codec.EncodeOpcode(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			if led {
				out = tribble.ToLED(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().BoolVar(&led, "led", false, "render output as LED glyphs")
	return c
}

func vocabCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "List the opcode vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}
			for _, word := range tribble.Opcodes() {
				wire, err := codec.EncodeOpcode(word)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderVocabRow(word, wire))
			}
			return nil
		},
	}
}

func streamCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "stream",
		Short: "Envelope messages: sync preamble + width header",
	}
	c.AddCommand(streamEncodeCmd(flags), streamDecodeCmd(flags))
	return c
}

func streamEncodeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [message]",
		Short: "Encode text and wrap it in an envelope message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			payload, err := codec.EncodeText(input)
			if err != nil {
				return err
			}
			w := stream.NewWriter(cmd.OutOrStdout())
			return w.WriteMessage(stream.WidthFramed, payload)
		},
	}
}

func streamDecodeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode envelope messages from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := buildCodec(flags)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			r := stream.NewReader(in)
			for {
				msg, err := r.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				if msg.Width != stream.WidthFramed {
					return fmt.Errorf("unsupported payload width %s", msg.Width)
				}
				slog.Debug("message", "width", msg.Width, "offset", msg.Offset, "symbols", len(msg.Payload))

				text, err := codec.DecodeText(msg.Payload)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
		},
	}
}

// readInput returns the positional argument, or stdin when absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
