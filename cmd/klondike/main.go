// Package main provides the klondike CLI: an interactive game of patience
// and a batch training mode that measures win rates across difficulty
// levels.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"klondike/engine"
	"klondike/player"
	"klondike/simulation"
	"klondike/view"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Optional .env supplies defaults for the training flags.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "play":
		runPlay(os.Args[2:])
	case "train":
		runTrain(os.Args[2:])
	case "version", "-version", "--version":
		fmt.Printf("klondike %s (built %s)\n", Version, BuildTime)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: klondike <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  play     Play an interactive game of Solitaire")
	fmt.Fprintln(os.Stderr, "  train    Measure win rates across difficulty levels")
	fmt.Fprintln(os.Stderr, "  version  Show version information")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Deal seed (0 = use current time)")
	auto := fs.Bool("auto", false, "Let the first-move strategy play instead of prompting")
	fs.Parse(args)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	board := engine.NewBoard()
	board.Setup(rand.New(rand.NewSource(*seed)))

	v := view.New(os.Stdout)

	var p player.Player
	if *auto {
		p = &player.FirstMove{Out: os.Stdout}
	} else {
		p = player.NewHuman(os.Stdin, os.Stdout)
	}

	res := simulation.RunGame(board, p, simulation.Options{
		View:           v,
		AutoPlayForced: true,
	})

	switch res.Outcome {
	case simulation.OutcomeWon:
		fmt.Println("\nCongratulations, you won!")
	case simulation.OutcomeStuck:
		fmt.Println("\nNo legal moves available. Game over!")
	case simulation.OutcomeMoveCapReached:
		fmt.Printf("\nMaximum move limit of %d reached. Game over!\n", engine.MaxMoves)
	case simulation.OutcomeQuit:
		fmt.Println("\nQuitting game. Goodbye!")
	}
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	maxCards := fs.Int("max-cards", envInt("KLONDIKE_MAX_CARDS", 5), "Maximum number of face-down cards to test (difficulty)")
	trials := fs.Int("trials", envInt("KLONDIKE_TRIALS", 5000), "Number of games to run for each difficulty level")
	workers := fs.Int("workers", envInt("KLONDIKE_WORKERS", 0), "Number of worker goroutines (0 = auto-detect CPU count)")
	seed := fs.Int64("seed", 0, "Random seed (0 = use current time)")
	output := fs.String("output", "", "Path to save the training report as JSON")
	params := fs.String("params", "", "Path to a file with strategy parameters (not yet implemented)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	fs.Parse(args)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *params != "" {
		log.Warnf("loading parameters from %q is not yet implemented", *params)
	}

	log.WithFields(logrus.Fields{
		"max_cards": *maxCards,
		"trials":    *trials,
		"workers":   *workers,
	}).Info("starting training session")

	start := time.Now()
	report, err := simulation.RunTrainingSweep(simulation.TrainingConfig{
		MaxCards: *maxCards,
		Trials:   *trials,
		Workers:  *workers,
		Seed:     *seed,
		Log:      log,
	})
	if err != nil {
		log.WithError(err).Fatal("training failed")
	}

	for _, lvl := range report.Levels {
		fmt.Printf("Level %d (%d face-down cards): Win rate: %.1f%% (%d/%d wins) in %s.\n",
			lvl.Level, lvl.Level, lvl.WinRate*100, lvl.Wins, lvl.Trials,
			formatDuration(lvl.Duration))
	}
	fmt.Printf("\nTraining complete in %s\n", formatDuration(time.Since(start)))

	if *output != "" {
		if err := report.Save(*output); err != nil {
			log.WithError(err).Fatal("saving report failed")
		}
		log.WithField("path", *output).Info("report saved")
	}
}

// envInt reads an integer environment variable, falling back on absence or
// a malformed value.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
