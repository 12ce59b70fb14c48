package icon

// Format base scores: vector beats any bitmap before file size enters.
var formatScores = map[string]int{
	"svg": 1000,
	"png": 500,
	"xpm": 100,
	"ico": 50,
}

// Score ranks a candidate: format base, a file-size bonus capped at 100
// points, and for PNGs a pixel-area bonus capped at 200. pixelArea is
// width*height, or 0 when the image could not be decoded; an undecodable
// PNG simply forfeits the bonus.
func Score(c Candidate, pixelArea int) int {
	score := formatScores[c.Format]
	score += int(min(c.Size/1024, 100))
	if c.Format == "png" {
		score += min(pixelArea/1000, 200)
	}
	return score
}

// best returns the index of the highest-scoring candidate. Comparison is
// strictly greater, so ties keep the first-seen candidate. probe supplies
// the pixel area for PNGs and is only consulted for them.
func best(candidates []Candidate, probe func(Candidate) int) (int, int) {
	bestIdx, bestScore := 0, -1
	for i, c := range candidates {
		var area int
		if c.Format == "png" {
			area = probe(c)
		}
		if s := Score(c, area); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return bestIdx, bestScore
}
