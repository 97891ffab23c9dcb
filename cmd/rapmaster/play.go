package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/config"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/platform/tui"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/storage"
)

var (
	flagSlot       int
	flagNew        bool
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or continue a career",
	Long: `Start a new career or continue the one saved in the chosen slot.

Controls:
  Left/Right   - Switch screens
  Up/Down      - Move cursor
  Enter        - Select
  N            - Advance to next week
  A            - Announce a release (catalog screen)
  Ctrl+S       - Save
  Q/Ctrl+C     - Save and quit

Difficulty presets:
  easy   - Forgiving decay, more frequent viral weeks
  normal - Default balance
  grind  - Harsh decay, slower fame

Examples:
  rapmaster play
  rapmaster play --slot 2
  rapmaster play --new --difficulty grind
  rapmaster play --config ./my-balance.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSlot, "slot", 1, "Save slot (1-3)")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start over, ignoring the slot's existing save")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom balance YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, grind")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset := config.DifficultyPreset(flagDifficulty)
	if !config.IsValidPreset(preset) {
		return fmt.Errorf("unknown difficulty %q (easy, normal, grind)", flagDifficulty)
	}

	balance, err := config.LoadBalance(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&balance, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath, storage.DefaultMaxSlots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Playing without persistence.")
		store = nil
	} else {
		defer store.Close()
	}

	st := game.NewState()
	if store != nil && !flagNew {
		loaded, loadErr := store.LoadSlot(flagSlot)
		switch {
		case loadErr == nil:
			st = loaded
		case errors.Is(loadErr, game.ErrCorruptSnapshot):
			return fmt.Errorf("slot %d is unreadable: %w (use --new to overwrite)", flagSlot, loadErr)
		case !errors.Is(loadErr, storage.ErrNoSave):
			return loadErr
		}
	}

	return tui.Run(tui.SessionConfig{
		Engine:           game.NewEngine(&balance, seed),
		State:            st,
		Store:            store,
		Slot:             flagSlot,
		AutosaveInterval: tui.DefaultAutosaveInterval,
		Width:            width,
		Height:           height,
	})
}
