// Package main is the entry point for the umpdump CLI.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/convert"
	"github.com/danmuck/umpwire/internal/logging"
	"github.com/danmuck/umpwire/message"
	"github.com/danmuck/umpwire/muid"
	"github.com/danmuck/umpwire/ump"
)

var (
	configPath string
	modeFlag   string
	groupFlag  int
	countFlag  int
	seedFlag   int64
)

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "umpdump",
	Short: "Inspect and transform Universal MIDI Packet streams",
	Long: `umpdump decodes packet words into typed messages, raises legacy
channel voice traffic to full resolution, and allocates negotiation
identifiers.

Examples:
  umpdump decode 21903C64
  umpdump decode --mode lenient < words.txt
  umpdump convert 20B20005 20B2200A 20C20300
  umpdump muid --count 4 --seed 1`,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [words...]",
	Short: "Decode hex packet words into typed messages",
	RunE:  runDecode,
}

var convertCmd = &cobra.Command{
	Use:   "convert [words...]",
	Short: "Decode legacy channel voice words and raise them to full resolution",
	RunE:  runConvert,
}

var muidCmd = &cobra.Command{
	Use:   "muid",
	Short: "Allocate negotiation identifiers",
	RunE:  runMUID,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config path")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "", "decode mode (strict, lenient)")

	convertCmd.Flags().IntVarP(&groupFlag, "group", "g", -1, "only convert messages on this group")

	muidCmd.Flags().IntVarP(&countFlag, "count", "n", 0, "identifiers to allocate")
	muidCmd.Flags().Int64VarP(&seedFlag, "seed", "s", 0, "deterministic seed (0 means time-based)")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(muidCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	mode, err := codec.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	words, err := gatherWords(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for len(words) > 0 {
		t, n, ok := ump.Classify(words[0])
		if !ok {
			return fmt.Errorf("word %#08x: %w", words[0], codec.ErrUnsupportedMessageType)
		}
		if len(words) < n {
			return fmt.Errorf("%w: have %d words, need %d", codec.ErrMalformedPacket, len(words), n)
		}
		m, err := codec.Decode(words[:n], mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-20s group=%d words=%s\n", t, m.Group(), formatWords(words[:n]))
		words = words[n:]
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	mode, err := codec.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	words, err := gatherWords(args)
	if err != nil {
		return err
	}

	group := groupFlag
	if group < 0 {
		group = cfg.Group
	}

	var state convert.State
	out := cmd.OutOrStdout()
	for len(words) > 0 {
		_, n, ok := ump.Classify(words[0])
		if !ok {
			return fmt.Errorf("word %#08x: %w", words[0], codec.ErrUnsupportedMessageType)
		}
		if len(words) < n {
			return fmt.Errorf("%w: have %d words, need %d", codec.ErrMalformedPacket, len(words), n)
		}
		m, err := codec.Decode(words[:n], mode)
		words = words[n:]
		if err != nil {
			return err
		}

		legacy, ok := m.(message.Midi1ChannelVoice)
		if !ok {
			log.Debug().Str("type", m.Type().String()).Msg("skipping non-legacy message")
			continue
		}
		if group >= 0 && int(legacy.Group()) != group {
			continue
		}

		res, err := state.Convert(legacy)
		if err != nil {
			return err
		}
		if res.Deferred() {
			fmt.Fprintf(out, "deferred             group=%d channel=%d\n", legacy.Group(), legacy.Channel())
			continue
		}
		fmt.Fprintf(out, "%-20s group=%d words=%s\n",
			res.Message.Type(), res.Message.Group(), formatWords(codec.Encode(res.Message)))
	}
	return nil
}

func runMUID(cmd *cobra.Command, args []string) error {
	count := countFlag
	if count <= 0 {
		count = 1
	}
	var rng *rand.Rand
	if seedFlag != 0 {
		rng = rand.New(rand.NewSource(seedFlag))
	} else {
		rng = rand.New(rand.NewSource(int64(os.Getpid())))
	}

	registry := muid.NewRegistry()
	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		id, err := muid.Allocate(registry, rng)
		if err != nil {
			return err
		}
		b := id.Bytes7()
		fmt.Fprintf(out, "%s  sysex=[%02X %02X %02X %02X]\n", id, b[0], b[1], b[2], b[3])
	}
	return nil
}

func resolveConfig() (dumpConfig, error) {
	cfg := defaultDumpConfig()
	if configPath != "" {
		loaded, err := loadDumpConfig(configPath)
		if err != nil {
			return dumpConfig{}, err
		}
		cfg = loaded
	}
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}
	return cfg, nil
}

func gatherWords(args []string) ([]uint32, error) {
	if len(args) > 0 {
		return parseWords(args)
	}

	var fields []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return parseWords(fields)
}

func parseWords(fields []string) ([]uint32, error) {
	words := make([]uint32, 0, len(fields))
	for _, f := range fields {
		raw := strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad word %q: %w", f, err)
		}
		words = append(words, uint32(v))
	}
	return words, nil
}

func formatWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%08X", w)
	}
	return strings.Join(parts, " ")
}
