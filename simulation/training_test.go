package simulation

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunTrainingSweepRejectsBadConfig(t *testing.T) {
	_, err := RunTrainingSweep(TrainingConfig{MaxCards: 0, Trials: 5})
	assert.Error(t, err)

	_, err = RunTrainingSweep(TrainingConfig{MaxCards: 46, Trials: 5})
	assert.Error(t, err)

	_, err = RunTrainingSweep(TrainingConfig{MaxCards: 3, Trials: 0})
	assert.Error(t, err)
}

func TestRunTrainingSweepTrivialLevelsAlwaysWin(t *testing.T) {
	// One or two face-down cards is already a won position, so levels 1
	// and 2 must report a 100% win rate.
	report, err := RunTrainingSweep(TrainingConfig{
		MaxCards: 2,
		Trials:   6,
		Workers:  2,
		Seed:     123,
		Log:      quietLogger(),
	})
	require.NoError(t, err)
	require.Len(t, report.Levels, 2)

	for _, lvl := range report.Levels {
		assert.Equal(t, 6, lvl.Trials)
		assert.Equal(t, 6, lvl.Wins)
		assert.Equal(t, 1.0, lvl.WinRate)
		assert.Zero(t, lvl.Stuck)
		assert.Zero(t, lvl.Capped)
	}
	assert.Equal(t, int64(123), report.Seed)
	assert.Equal(t, 6, report.Trials)
}

func TestRunTrainingSweepIsSeedDeterministic(t *testing.T) {
	cfg := TrainingConfig{MaxCards: 4, Trials: 8, Workers: 3, Seed: 99, Log: quietLogger()}

	r1, err := RunTrainingSweep(cfg)
	require.NoError(t, err)
	r2, err := RunTrainingSweep(cfg)
	require.NoError(t, err)

	require.Len(t, r2.Levels, len(r1.Levels))
	for i := range r1.Levels {
		assert.Equal(t, r1.Levels[i].Wins, r2.Levels[i].Wins, "level %d", i+1)
		assert.Equal(t, r1.Levels[i].Stuck, r2.Levels[i].Stuck, "level %d", i+1)
		assert.Equal(t, r1.Levels[i].Capped, r2.Levels[i].Capped, "level %d", i+1)
	}
}

func TestAggregateLevel(t *testing.T) {
	results := []GameResult{
		{Outcome: OutcomeWon},
		{Outcome: OutcomeWon},
		{Outcome: OutcomeStuck},
		{Outcome: OutcomeMoveCapReached},
	}
	s := aggregateLevel(3, results)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 4, s.Trials)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Stuck)
	assert.Equal(t, 1, s.Capped)
	assert.Equal(t, 0.5, s.WinRate)
}

func TestTrainingReportSave(t *testing.T) {
	report := &TrainingReport{
		Timestamp: time.Now(),
		Seed:      42,
		Trials:    10,
		Levels:    []LevelStats{{Level: 1, Trials: 10, Wins: 10, WinRate: 1}},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded TrainingReport
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.Seed, loaded.Seed)
	assert.Equal(t, report.Levels, loaded.Levels)
}

func TestRunLevelParallelPlaysAllTrials(t *testing.T) {
	results := runLevelParallel(3, 12, 4, 7)
	assert.Len(t, results, 12)
	for _, r := range results {
		assert.NotEmpty(t, r.ID)
	}
}
