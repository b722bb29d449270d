// Package demo provides the sample configuration served by the
// `convar console` and `convar eval` commands: a small game-style
// settings object with nested groups and a couple of actions, useful
// for exploring the interpreter without embedding it anywhere.
package demo

import (
	"context"
	"strings"

	"convar/pkg/cvar"
)

// ArenaConfig holds playfield dimensions.
type ArenaConfig struct {
	Height float64
	Width  float64
}

// DefaultArenaConfig returns the factory settings for the arena.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{Height: 100, Width: 100}
}

// VisitNodes reports the arena's properties. Defaults are re-derived
// from the factory instance on every build.
func (a *ArenaConfig) VisitNodes(b *cvar.Builder) {
	def := DefaultArenaConfig()
	b.Add(cvar.NewProperty("width", "Arena width", &a.Width, def.Width))
	b.Add(cvar.NewProperty("height", "Arena height", &a.Height, def.Height))
}

// PaddleConfig holds paddle tuning values.
type PaddleConfig struct {
	Velocity float64
	Color    string
}

// DefaultPaddleConfig returns the factory settings for the paddle.
func DefaultPaddleConfig() PaddleConfig {
	return PaddleConfig{Velocity: 3, Color: "white"}
}

func (p *PaddleConfig) VisitNodes(b *cvar.Builder) {
	def := DefaultPaddleConfig()
	b.Add(cvar.NewProperty("velocity", "Paddle velocity", &p.Velocity, def.Velocity))
	b.Add(cvar.NewProperty("color", "Paddle color", &p.Color, def.Color))
}

// GameConfig is the root configuration object. It owns all property
// values; the console only borrows references into it while a command
// executes.
type GameConfig struct {
	Arena  ArenaConfig
	Paddle PaddleConfig
	Paused bool
}

// NewGameConfig returns a GameConfig at factory settings.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Arena:  DefaultArenaConfig(),
		Paddle: DefaultPaddleConfig(),
	}
}

// VisitNodes exposes the game's settings tree: root-level properties
// and actions plus the arena and paddle groups.
func (g *GameConfig) VisitNodes(b *cvar.Builder) {
	b.Add(cvar.NewProperty("paused", "Freeze the simulation", &g.Paused, false))
	b.Add(cvar.NewAction("color_test", "Test console colors", colorTest))
	b.Add(cvar.NewAction("echo", "Repeat the given arguments", echo))
	b.Group("arena", &g.Arena)
	b.Group("paddle", &g.Paddle)
}

// colorTest emits a block of colored squares, one row per red level.
// With a front-end that strips ANSI codes the output degrades to plain
// squares.
func colorTest(ctx context.Context, args []string, out cvar.Output) error {
	for r := 2; r >= 0; r-- {
		for g := 2; g >= 0; g-- {
			for b := 2; b >= 0; b-- {
				out.Printf("\033[38;2;%d;%d;%dm■\033[0m", r*127, g*127, b*127)
			}
		}
		out.Println("")
	}
	return nil
}

// echo demonstrates argument forwarding to actions.
func echo(ctx context.Context, args []string, out cvar.Output) error {
	out.Println("%s", strings.Join(args, " "))
	return nil
}
