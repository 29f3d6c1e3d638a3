package services

// Verdict is the binary authenticity decision derived from a classifier
// score.
type Verdict int

const (
	VerdictReal Verdict = iota
	VerdictFake
)

// fakeThreshold splits the classifier's confidence: strictly above means
// synthetic, the boundary itself counts as genuine.
const fakeThreshold = 0.5

// VerdictFromScore applies the threshold policy to a classifier score.
func VerdictFromScore(score float64) Verdict {
	if score > fakeThreshold {
		return VerdictFake
	}
	return VerdictReal
}

// Genuine reports whether the verdict allows the image to be treated as real.
func (v Verdict) Genuine() bool {
	return v == VerdictReal
}

func (v Verdict) String() string {
	if v == VerdictFake {
		return "fake"
	}
	return "real"
}
