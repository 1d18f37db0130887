package kcrypt

// shuffle permutes seq in place with a Fisher-Yates pass whose swap choices come
// from seed instead of a random source. seed must be at least as long as seq.
func shuffle(seed, seq []byte) {
	for i := len(seq) - 1; i > 0; i-- {
		j := int(seed[i]) % (i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
