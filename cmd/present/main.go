package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/LiamKula/ICS-685-3D/internal/app"
	"github.com/LiamKula/ICS-685-3D/internal/audio"
	"github.com/LiamKula/ICS-685-3D/internal/config"
	"github.com/LiamKula/ICS-685-3D/internal/ws"
)

const sampleRate = 48000

func main() {
	var (
		configPath = flag.String("config", "show.yaml", "path to show.yaml")
		addr       = flag.String("addr", "", "control server listen address (overrides config)")
		fps        = flag.Int("fps", 0, "ticks per second (overrides config)")
		assets     = flag.String("assets", "", "music clip directory (overrides config)")
		mute       = flag.Bool("mute", false, "log music transitions instead of playing them")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config (file, then flag overrides) ----
	cfg := config.Defaults()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
	} else {
		cfg = c
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *assets != "" {
		cfg.AssetsDir = *assets
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	// ---- Audio channels ----
	var chA, chB audio.Channel
	if *mute {
		chA = audio.NewLogChannel("a", log.Logger)
		chB = audio.NewLogChannel("b", log.Logger)
	} else {
		actx := eaudio.NewContext(sampleRate)
		lib, err := audio.LoadLibrary(actx, cfg.AssetsDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.AssetsDir).Msg("clip library incomplete")
		}
		log.Info().Strs("clips", lib.Names()).Msg("clip library loaded")
		chA = audio.NewEbitenChannel(actx, lib)
		chB = audio.NewEbitenChannel(actx, lib)
	}

	// ---- Deck ----
	trig := keyTriggers{
		advance: keyByName(cfg.Keys.Advance, ebiten.KeyArrowRight),
		retreat: keyByName(cfg.Keys.Retreat, ebiten.KeyArrowLeft),
	}
	core, err := app.New(cfg, chA, chB, trig)
	if err != nil {
		log.Fatal().Err(err).Msg("deck setup failed")
	}
	core.Start()

	// ---- Control server ----
	var srv *http.Server
	if cfg.Addr != "" {
		state := ws.NewState(core)
		mux := http.NewServeMux()
		mux.HandleFunc("/control", state.HandleControlWS)
		mux.HandleFunc("/state", state.HandleStateWS)
		mux.HandleFunc("/health", state.HandleHealth)
		srv = &http.Server{
			Addr:         cfg.Addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go state.RunBroadcastLoop(cfg.FPS)
		go func() {
			log.Info().Str("addr", cfg.Addr).Msg("control server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("control server crashed")
			}
		}()
	}

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Info().Str("signal", s.String()).Msg("shutting down")
		if srv != nil {
			_ = srv.Close()
		}
		os.Exit(0)
	}()

	// ---- Window ----
	ebiten.SetWindowTitle(fmt.Sprintf("ICS-685 Presentation (%d slides)", len(cfg.Slides)))
	ebiten.SetWindowSize(960, 540)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(newGame(core, cfg)); err != nil {
		log.Fatal().Err(err).Msg("window closed with error")
	}
	log.Info().Msg("window closed; shutting down")
	if srv != nil {
		_ = srv.Close()
	}
}
