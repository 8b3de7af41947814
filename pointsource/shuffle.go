package pointsource

import "math/rand"

// Return a shuffled copy of the points. The same seed always produces the same
// order. Insertion order only affects running time, but a random order keeps
// the expected number of flips low for sorted input.
func Shuffle(points []Point, seed int64) []Point {
	shuffled := append([]Point(nil), points...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
