package icon

import "testing"

func TestScore(t *testing.T) {
	noProbe := 0

	tests := []struct {
		name      string
		candidate Candidate
		pixelArea int
		want      int
	}{
		{
			name:      "svg base plus size bonus",
			candidate: Candidate{Path: "a.svg", Format: "svg", Size: 2048},
			pixelArea: noProbe,
			want:      1002,
		},
		{
			name:      "png without decodable dimensions",
			candidate: Candidate{Path: "a.png", Format: "png", Size: 20000},
			pixelArea: 0,
			want:      519, // 500 + 20000/1024
		},
		{
			name:      "png with dimensions",
			candidate: Candidate{Path: "a.png", Format: "png", Size: 20000},
			pixelArea: 64 * 64,
			want:      523, // 519 + 4096/1000
		},
		{
			name:      "size bonus caps at 100",
			candidate: Candidate{Path: "a.svg", Format: "svg", Size: 5 << 20},
			pixelArea: noProbe,
			want:      1100,
		},
		{
			name:      "pixel bonus caps at 200",
			candidate: Candidate{Path: "a.png", Format: "png", Size: 512},
			pixelArea: 1024 * 1024,
			want:      700, // 500 + 0 + 200
		},
		{
			name:      "pixel area ignored for non-png",
			candidate: Candidate{Path: "a.xpm", Format: "xpm", Size: 1024},
			pixelArea: 1024 * 1024,
			want:      101,
		},
		{
			name:      "ico base",
			candidate: Candidate{Path: "a.ico", Format: "ico", Size: 0},
			pixelArea: noProbe,
			want:      50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.candidate, tt.pixelArea); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBest(t *testing.T) {
	noProbe := func(Candidate) int { return 0 }

	t.Run("highest score wins", func(t *testing.T) {
		candidates := []Candidate{
			{Path: "b.png", Format: "png", Size: 10240},
			{Path: "a.svg", Format: "svg", Size: 1024},
			{Path: "c.ico", Format: "ico", Size: 512},
		}
		idx, score := best(candidates, noProbe)
		if idx != 1 {
			t.Errorf("best index = %d, want 1 (the svg)", idx)
		}
		if score != 1001 {
			t.Errorf("best score = %d, want 1001", score)
		}
	})

	t.Run("tie keeps first seen", func(t *testing.T) {
		candidates := []Candidate{
			{Path: "first.png", Format: "png", Size: 4096},
			{Path: "second.png", Format: "png", Size: 4096},
		}
		idx, _ := best(candidates, noProbe)
		if idx != 0 {
			t.Errorf("best index = %d, want 0 on tie", idx)
		}
	})

	t.Run("probe consulted only for pngs", func(t *testing.T) {
		probed := make(map[string]bool)
		probe := func(c Candidate) int {
			probed[c.Path] = true
			return 0
		}
		candidates := []Candidate{
			{Path: "a.svg", Format: "svg", Size: 100},
			{Path: "b.png", Format: "png", Size: 100},
			{Path: "c.xpm", Format: "xpm", Size: 100},
		}
		best(candidates, probe)
		if len(probed) != 1 || !probed["b.png"] {
			t.Errorf("probed = %v, want only b.png", probed)
		}
	})
}
