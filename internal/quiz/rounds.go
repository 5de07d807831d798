package quiz

import (
	"math/rand"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

// Round is one batch of entries shown together in the matching test. No entry id repeats within a round.
type Round []vocabulary.Entry

type RoundOptions struct {
	RoundSize   int
	Repetitions int
	// MaxAttempts bounds the sampling attempts spent on one round.
	MaxAttempts int
}

func DefaultRoundOptions() RoundOptions {
	return RoundOptions{
		RoundSize:   5,
		Repetitions: 3,
		MaxAttempts: 100,
	}
}

// minimumRoundSize is the smallest round worth keeping; shorter rounds are discarded.
func (o RoundOptions) minimumRoundSize() int {
	return max(1, o.RoundSize-2)
}

// GenerationStats describes how well a schedule met its repetition target.
type GenerationStats struct {
	Rounds int
	// Scheduled counts appearances that consumed a repetition.
	Scheduled int
	// Shortfall counts repetitions that could not be scheduled.
	Shortfall int
	// Padded counts filler placements, which do not consume repetitions.
	Padded int
	// Discarded counts rounds dropped for being too short.
	Discarded int
}

// EstimatedRounds is the number of rounds a perfectly packed schedule needs.
func EstimatedRounds(entryCount, roundSize, repetitions int) int {
	if roundSize <= 0 {
		return 0
	}
	return (entryCount*repetitions + roundSize - 1) / roundSize
}

// GenerateRounds schedules every entry Repetitions times across rounds of RoundSize.
//
// Rounds are filled greedily by sampling uniformly among the entries that owe the most
// appearances and are not yet in the round, so owed counts never differ by more than one.
// A round shorter than RoundSize-2 is discarded, which ends generation; a shorter accepted
// round is padded from the full set without consuming repetitions. The schedule is shuffled
// before it is returned.
//
// Every entry appears exactly Repetitions times when len(entries)*Repetitions is a multiple
// of RoundSize, or when len(entries) is between RoundSize-2 and RoundSize. Otherwise the
// remainder that cannot fill a round is reported as Shortfall.
func GenerateRounds(entries []vocabulary.Entry, options RoundOptions, rng *rand.Rand) ([]Round, GenerationStats) {
	var stats GenerationStats
	if len(entries) == 0 || options.RoundSize <= 0 || options.Repetitions <= 0 {
		return []Round{}, stats
	}

	remaining := make(map[string]int, len(entries))
	owed := 0
	for _, entry := range entries {
		if _, ok := remaining[entry.ID]; ok {
			continue
		}
		remaining[entry.ID] = options.Repetitions
		owed += options.Repetitions
	}

	rounds := []Round{}
	for owed > 0 {
		round, used := sampleRound(entries, remaining, options, rng)
		if len(round) < options.minimumRoundSize() {
			for _, entry := range round {
				remaining[entry.ID]++
			}
			stats.Discarded++
			break
		}
		owed -= len(round)
		stats.Scheduled += len(round)

		for len(round) < options.RoundSize {
			filler, ok := pickFiller(entries, used, rng)
			if !ok {
				break
			}
			round = append(round, filler)
			used[filler.ID] = struct{}{}
			stats.Padded++
		}
		rounds = append(rounds, round)
	}

	Shuffle(rng, rounds)
	stats.Rounds = len(rounds)
	stats.Shortfall = owed
	return rounds, stats
}

func sampleRound(
	entries []vocabulary.Entry,
	remaining map[string]int,
	options RoundOptions,
	rng *rand.Rand,
) (Round, map[string]struct{}) {
	round := make(Round, 0, options.RoundSize)
	used := make(map[string]struct{}, options.RoundSize)

	for attempts := 0; len(round) < options.RoundSize && attempts < options.MaxAttempts; attempts++ {
		eligible := make([]vocabulary.Entry, 0, len(entries))
		most := 0
		for _, entry := range entries {
			if _, ok := used[entry.ID]; ok {
				continue
			}
			switch owed := remaining[entry.ID]; {
			case owed <= 0 || owed < most:
			case owed > most:
				most = owed
				eligible = append(eligible[:0], entry)
			default:
				eligible = append(eligible, entry)
			}
		}
		if len(eligible) == 0 {
			break
		}

		picked := eligible[rng.Intn(len(eligible))]
		round = append(round, picked)
		used[picked.ID] = struct{}{}
		remaining[picked.ID]--
	}
	return round, used
}

func pickFiller(entries []vocabulary.Entry, used map[string]struct{}, rng *rand.Rand) (vocabulary.Entry, bool) {
	candidates := make([]vocabulary.Entry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := used[entry.ID]; !ok {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return vocabulary.Entry{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
