package matching

import (
	"context"
	"sort"
	"sync"
)

// Batch scoring is an embarrassingly parallel map over candidates: no
// candidate's score depends on another's, so a bounded worker pool fans the
// work out and the final sort acts as the collection barrier. Cancelling the
// context stops further submissions; candidates already handed to a worker
// still finish, and nothing needs rolling back since nothing is mutated.

const defaultWorkers = 4

// ScoreAll scores every candidate against the profile and returns the ranked
// results. The weight table is validated once up front. On cancellation the
// results scored so far are returned ranked, along with the context error.
func (s *Scorer) ScoreAll(ctx context.Context, profile Profile, candidates []Candidate, workers int) ([]MatchResult, error) {
	if _, err := profile.weights(); err != nil {
		return nil, err
	}
	results := make([]MatchResult, len(candidates))
	scored := forEachCandidate(ctx, len(candidates), workers, func(i int) {
		results[i], _ = s.Score(profile, candidates[i])
	})
	out := make([]MatchResult, 0, len(candidates))
	for i := range candidates {
		if scored[i] {
			out = append(out, results[i])
		}
	}
	return Rank(out), ctx.Err()
}

// SearchAll classifies every candidate against a free-text query and orders
// the results by the additive location score. The classifier result carries
// the display tier and label; the additive score is only the sort key, and
// the two may disagree.
func (s *Scorer) SearchAll(ctx context.Context, query string, candidates []Candidate, workers int) ([]MatchResult, error) {
	results := make([]MatchResult, len(candidates))
	keys := make([]float64, len(candidates))
	scored := forEachCandidate(ctx, len(candidates), workers, func(i int) {
		res := s.classifier.Classify(query, candidates[i].Location)
		res.CandidateID = candidates[i].ID
		results[i] = res
		keys[i] = LocationScore(query, candidates[i])
	})

	idx := make([]int, 0, len(candidates))
	for i := range candidates {
		if scored[i] {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if keys[i] != keys[j] {
			return keys[i] > keys[j]
		}
		if results[i].Tier != results[j].Tier {
			return results[i].Tier > results[j].Tier
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	out := make([]MatchResult, len(idx))
	for n, i := range idx {
		out[n] = results[i]
	}
	return out, ctx.Err()
}

// forEachCandidate runs fn(i) for i in [0, n) on a bounded worker pool and
// returns which indices completed. Cancellation stops further submissions;
// in-flight work still finishes.
func forEachCandidate(ctx context.Context, n, workers int, fn func(i int)) []bool {
	done := make([]bool, n)
	if n == 0 {
		return done
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
				done[i] = true
			}
		}()
	}

submit:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break submit
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return done
}
