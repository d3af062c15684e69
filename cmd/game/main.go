package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/galactic-rebellion/engine/ai"
	"github.com/1siamBot/galactic-rebellion/engine/audio"
	"github.com/1siamBot/galactic-rebellion/engine/config"
	"github.com/1siamBot/galactic-rebellion/engine/core"
	"github.com/1siamBot/galactic-rebellion/engine/input"
	"github.com/1siamBot/galactic-rebellion/engine/render"
	"github.com/1siamBot/galactic-rebellion/engine/replay"
	"github.com/1siamBot/galactic-rebellion/engine/sim"
)

const (
	ScreenWidth  = int(core.ArenaWidth)
	ScreenHeight = int(core.ArenaHeight)
)

// Game implements ebiten.Game interface
type Game struct {
	sim      *sim.Simulation
	scene    *render.Scene
	renderer *render.Renderer
	input    *input.InputState
	sounds   *audio.SoundManager
	pilot    *ai.Autopilot
	recorder *replay.Recorder
	cfg      config.Config

	last time.Time
}

func NewGame(cfg config.Config, assetsDir string) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		sim:      sim.New(seed),
		scene:    render.NewScene(seed),
		renderer: render.NewRenderer(assetsDir),
		input:    input.NewInputState(),
		cfg:      cfg,
	}
	g.scene.Attach(g.sim.Bus)

	if cfg.Audio.Enabled {
		g.sounds = audio.NewSoundManager(cfg.Audio.Volume)
		if err := g.sounds.Initialize(); err != nil {
			slog.Warn("audio disabled", "err", err)
		} else {
			g.sounds.Attach(g.sim.Bus)
		}
	}
	if cfg.Autopilot != "" {
		g.pilot = ai.NewAutopilot(ai.ParseDifficulty(cfg.Autopilot))
	}
	if err := g.startRecording(); err != nil {
		return nil, err
	}

	slog.Info("session started", "seed", seed, "autopilot", cfg.Autopilot)
	return g, nil
}

func (g *Game) startRecording() error {
	if g.cfg.Replay.Record == "" {
		return nil
	}
	rec, err := replay.NewRecorder(g.cfg.Replay.Record, g.sim.Seed)
	if err != nil {
		return err
	}
	g.recorder = rec
	return nil
}

func (g *Game) stopRecording() {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Close(); err != nil {
		slog.Error("closing replay", "err", err)
	} else {
		slog.Info("replay saved", "path", g.cfg.Replay.Record, "frames", g.recorder.Frames())
	}
	g.recorder = nil
}

func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	elapsed := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now

	g.input.Update()

	if g.input.PauseJustPressed && !g.sim.Over() {
		g.sim.TogglePause()
	}
	if g.input.RestartJustPressed && g.sim.Over() {
		g.restart()
		return nil
	}

	if !g.sim.Paused() && !g.sim.Over() {
		var in core.Input
		if g.pilot != nil {
			in = g.pilot.Decide(g.sim.World, elapsed)
		} else {
			in = input.Translate(g.input.Snapshot, elapsed)
		}
		if g.recorder != nil {
			if err := g.recorder.Record(g.sim.World.TickCount+1, in); err != nil {
				slog.Error("recording stopped", "err", err)
				g.stopRecording()
			}
		}
		g.sim.Step(in)

		if g.sim.Over() {
			r := g.sim.Result()
			slog.Info("game over", "score", r.Score, "survived_ms", r.SurvivedMs, "ticks", r.Ticks)
			g.stopRecording()
		}
	}

	g.scene.Update(elapsed)
	return nil
}

func (g *Game) restart() {
	g.stopRecording()
	// the scene must be empty before the new world's opening events are dispatched
	g.scene.Reset(g.sim.Seed + 1)
	g.sim.Restart()
	if err := g.startRecording(); err != nil {
		slog.Error("recording disabled", "err", err)
	}
	slog.Info("session restarted", "seed", g.sim.Seed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene, g.sim.Paused())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	autopilot := flag.String("autopilot", "", "Let the bot play: easy, medium or hard")
	record := flag.String("record", "", "Record the session to this replay file")
	mute := flag.Bool("mute", false, "Disable audio")
	assets := flag.String("assets", "assets", "Directory with optional sprite overrides")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "autopilot":
			cfg.Autopilot = *autopilot
		case "record":
			cfg.Replay.Record = *record
		case "mute":
			cfg.Audio.Enabled = !*mute
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	ebiten.SetWindowSize(int(float64(ScreenWidth)*cfg.Window.Scale), int(float64(ScreenHeight)*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	game, err := NewGame(cfg, *assets)
	if err != nil {
		log.Fatal(err)
	}
	defer game.stopRecording()
	if game.sounds != nil {
		defer game.sounds.Cleanup()
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
