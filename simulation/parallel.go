package simulation

import (
	"math/rand"
	"runtime"
	"sync"

	"klondike/engine"
	"klondike/player"
)

// trialJob is a single game to be played by a worker.
type trialJob struct {
	TrialID int
	Seed    int64
}

// runLevelParallel plays trials games at one difficulty level on a worker
// pool. Per-game seeds derive from the batch seed up front, so a batch is
// reproducible regardless of worker count or scheduling. Games share
// nothing — each worker owns its board and visited set.
func runLevelParallel(level, trials, workers int, seed int64) []GameResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan trialJob, trials)
	results := make(chan GameResult, trials)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go trialWorker(&wg, jobs, results, level)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < trials; i++ {
		jobs <- trialJob{TrialID: i, Seed: rng.Int63()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]GameResult, 0, trials)
	for r := range results {
		out = append(out, r)
	}
	return out
}

// trialWorker plays jobs until the channel drains.
func trialWorker(wg *sync.WaitGroup, jobs <-chan trialJob, results chan<- GameResult, level int) {
	defer wg.Done()

	for job := range jobs {
		results <- runTrial(level, job.Seed)
	}
}

// runTrial plays one headless training game at the given difficulty level.
func runTrial(level int, seed int64) GameResult {
	rng := rand.New(rand.NewSource(seed))
	b := engine.NewBoard()
	if err := b.SetupRandomScenario(level, rng); err != nil {
		// The sweep validates levels before fanning out.
		panic(err)
	}
	return RunGame(b, &player.FirstMove{}, Options{})
}
