package coverage

import "math/rand"

// defaultRNGSeed replaces a zero Options.Seed so the default run is still
// reproducible.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// workerRNG returns the random stream of worker id under seed.
// math/rand.Rand is not goroutine-safe: one stream per worker.
func workerRNG(seed int64, id int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(id))))
}
