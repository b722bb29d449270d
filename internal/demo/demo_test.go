package demo

import (
	"context"
	"testing"

	"convar/pkg/cvar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameConfigTree(t *testing.T) {
	c := cvar.New(NewGameConfig())

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"paused", "color_test", "echo",
		"arena.width", "arena.height",
		"paddle.velocity", "paddle.color",
	}, names)
}

func TestGameConfigDefaults(t *testing.T) {
	cfg := NewGameConfig()
	c := cvar.New(cfg)
	ctx := context.Background()

	_, err := c.Eval(ctx, "arena.width 120")
	require.NoError(t, err)
	_, err = c.Eval(ctx, "paddle.color red")
	require.NoError(t, err)

	_, err = c.Eval(ctx, "reset")
	require.NoError(t, err)
	assert.Equal(t, DefaultArenaConfig(), cfg.Arena)
	assert.Equal(t, DefaultPaddleConfig(), cfg.Paddle)
}

func TestEchoForwardsArguments(t *testing.T) {
	c := cvar.New(NewGameConfig())

	lines, err := c.Eval(context.Background(), "echo hello world")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, lines)
}

func TestColorTestEmitsRows(t *testing.T) {
	c := cvar.New(NewGameConfig())

	lines, err := c.Eval(context.Background(), "color_test")
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}
