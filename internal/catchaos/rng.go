package catchaos

import "math/rand"

// newSeededRand builds the session RNG. All randomness (round generation,
// wander angles, target jitter, press rerolls) flows through this source so a
// fixed seed replays identically.
func newSeededRand(seed int64) rngSource {
	return rand.New(rand.NewSource(seed))
}
