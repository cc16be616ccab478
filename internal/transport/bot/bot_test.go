package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dnf_rate/internal/config"
	"dnf_rate/internal/transport/bot"
)

func TestReadyBeforeRun(t *testing.T) {
	b := bot.New(nil, nil, config.Bot{})

	require.EqualError(t, b.Ready(context.Background()), "bot is not polling updates")
}
