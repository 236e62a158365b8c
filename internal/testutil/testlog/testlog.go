package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/umpwire/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
