package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/umpwire/codec"
	"github.com/danmuck/umpwire/internal/config"
	"github.com/danmuck/umpwire/internal/monitor"
	"github.com/danmuck/umpwire/internal/observability"
	"github.com/danmuck/umpwire/ump"
)

func main() {
	configPath := flag.String("config", "", "TOML config path")
	follow := flag.Bool("follow", false, "decode hex words from stdin and record metrics")
	flag.Parse()

	observability.InitLogger("umpmon")

	cfg := config.DefaultMonitorConfig()
	if *configPath != "" {
		loaded, err := config.LoadMonitorConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load monitor config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded monitor config")
	}

	mode, err := codec.ParseMode(cfg.Mode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid decode mode")
	}

	mon := monitor.New(cfg.Name, cfg.Addr, mode)

	if *follow {
		go followStdin(cfg.Name, mode)
	}

	log.Info().Str("name", cfg.Name).Str("addr", cfg.Addr).Str("mode", mode.String()).Msg("monitor started")
	if err := mon.Serve(); err != nil {
		log.Fatal().Err(err).Msg("monitor stopped")
	}
}

// followStdin consumes whitespace-separated hex words, grouping them into
// packets by the type nibble and recording decode outcomes. Truncated
// trailing packets are counted as malformed.
func followStdin(app string, mode codec.Mode) {
	var pending []uint32

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		raw := strings.TrimPrefix(strings.TrimPrefix(scanner.Text(), "0x"), "0X")
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			log.Warn().Str("word", scanner.Text()).Msg("skipping unparseable word")
			continue
		}
		pending = append(pending, uint32(v))

		t, n, ok := ump.Classify(pending[0])
		if !ok {
			observability.RecordDecodeError(app, codec.ErrUnsupportedMessageType)
			log.Warn().Uint32("word", pending[0]).Msg("unsupported message type")
			pending = pending[:0]
			continue
		}
		if len(pending) < n {
			continue
		}

		m, err := codec.Decode(pending, mode)
		pending = pending[:0]
		if err != nil {
			observability.RecordDecodeError(app, err)
			log.Warn().Err(err).Msg("decode failed")
			continue
		}
		observability.RecordDecode(app, t)
		log.Debug().Str("type", t.String()).Uint8("group", m.Group()).Msg("packet decoded")
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("stdin read failed")
		return
	}
	if len(pending) > 0 {
		observability.RecordDecodeError(app, codec.ErrMalformedPacket)
		log.Warn().Int("words", len(pending)).Msg("truncated trailing packet")
	}
}
