package mastery

const (
	remoteMaxScore = 5
	percentPerStep = 100 / MaxScore
)

// The canonical score unifies the two scales the app has to speak:
// the remote package scale (0-5) and the local display percent (0-100).
//
//	canonical: 0  1  2  3  4  5  6  7  8  9  10
//	remote:    0  0  1  1  2  2  3  3  4  4  5
//	percent:   0 10 20 30 40 50 60 70 80 90 100
//
// Conversion happens only at the I/O boundary; the engine itself never sees
// a remote or percent value.

// FromRemoteScore converts a remote package score (0-5) to the canonical scale.
func FromRemoteScore(remote int) int {
	if remote < 0 {
		remote = 0
	}
	if remote > remoteMaxScore {
		remote = remoteMaxScore
	}
	return remote * 2
}

// ToRemoteScore converts a canonical score to the remote package scale (0-5).
func ToRemoteScore(score int) int {
	return clampScore(score) / 2
}

// ToPercent converts a canonical score to the local display percent (0-100).
func ToPercent(score int) int {
	return clampScore(score) * percentPerStep
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
