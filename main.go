// robot-battle is a turn-based terminal game: cross a generated map,
// collect keys and reach the exit while robots close in.
//
//	go build -o robot-battle .
//	./robot-battle [-config file.yaml] [-difficulty easy] [-seed 42]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"robot-battle/internal/audio"
	"robot-battle/internal/config"
	"robot-battle/internal/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a YAML config (embedded defaults if empty)")
	difficulty := flag.String("difficulty", "", "Start at this difficulty instead of showing the menu")
	seed := flag.Int64("seed", 0, "Map seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "Append a game log to this file")
	locale := flag.String("locale", "", "Language for game text, e.g. fr_FR (reads locales/<lang>/LC_MESSAGES/default.po)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *difficulty != "" {
		if _, err := cfg.Difficulty(*difficulty); err != nil {
			return err
		}
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	if *locale != "" {
		game.SetLocale("locales", *locale)
	}

	sounds := audio.NewSoundManager(audio.Config{
		Enabled: cfg.Audio.Enabled && !*mute,
		Volume:  cfg.Audio.Volume,
	})
	if err := sounds.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
	}
	defer sounds.Close()

	g, err := game.New(game.Options{
		Levels:     cfg,
		Difficulty: *difficulty,
		Seed:       *seed,
		Logger:     logger,
		Sounds:     sounds,
	})
	if err != nil {
		return err
	}
	return g.Run()
}

func loadConfig(path string) (*config.File, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
