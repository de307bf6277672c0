package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"klondike/engine"
)

// LevelStats summarizes one difficulty level of a training sweep.
type LevelStats struct {
	Level    int           `json:"level"`
	Trials   int           `json:"trials"`
	Wins     int           `json:"wins"`
	Stuck    int           `json:"stuck"`
	Capped   int           `json:"capped"`
	WinRate  float64       `json:"win_rate"`
	Duration time.Duration `json:"duration_ns"`
}

// TrainingReport is the artifact of a full sweep, saved as JSON when the
// CLI is given an output path.
type TrainingReport struct {
	Timestamp time.Time    `json:"timestamp"`
	Seed      int64        `json:"seed"`
	Trials    int          `json:"trials_per_level"`
	Levels    []LevelStats `json:"levels"`
}

// TrainingConfig parameterizes RunTrainingSweep.
type TrainingConfig struct {
	// MaxCards is the hardest level: levels 1..MaxCards are each played
	// Trials times.
	MaxCards int
	Trials   int

	// Workers sizes the worker pool; zero auto-detects the CPU count.
	Workers int

	// Seed makes the whole sweep reproducible; zero uses the current time.
	Seed int64

	// Log receives a structured report per level; nil uses the standard
	// logger.
	Log *logrus.Logger
}

// RunTrainingSweep plays Trials games at every difficulty level from 1 up
// to MaxCards, measuring the win rate of the first-move strategy per
// level. Difficulty is the number of face-down cards in the starting
// scenario.
func RunTrainingSweep(cfg TrainingConfig) (*TrainingReport, error) {
	if cfg.MaxCards < 1 || cfg.MaxCards > engine.MaxScenarioHidden {
		return nil, fmt.Errorf("max cards %d out of range [1, %d]", cfg.MaxCards, engine.MaxScenarioHidden)
	}
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	report := &TrainingReport{
		Timestamp: time.Now(),
		Seed:      seed,
		Trials:    cfg.Trials,
		Levels:    make([]LevelStats, 0, cfg.MaxCards),
	}

	rng := rand.New(rand.NewSource(seed))
	for level := 1; level <= cfg.MaxCards; level++ {
		start := time.Now()
		results := runLevelParallel(level, cfg.Trials, cfg.Workers, rng.Int63())
		stats := aggregateLevel(level, results)
		stats.Duration = time.Since(start)

		log.WithFields(logrus.Fields{
			"level":    level,
			"trials":   stats.Trials,
			"wins":     stats.Wins,
			"win_rate": fmt.Sprintf("%.1f%%", stats.WinRate*100),
			"duration": stats.Duration.Round(time.Millisecond),
		}).Info("level complete")

		report.Levels = append(report.Levels, stats)
	}

	return report, nil
}

// aggregateLevel folds per-game results into one level summary.
func aggregateLevel(level int, results []GameResult) LevelStats {
	s := LevelStats{Level: level, Trials: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeWon:
			s.Wins++
		case OutcomeStuck:
			s.Stuck++
		case OutcomeMoveCapReached:
			s.Capped++
		}
	}
	if s.Trials > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Trials)
	}
	return s
}

// Save writes the report as indented JSON.
func (r *TrainingReport) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
