package parallel

import "testing"

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name  string
		y0    int
		y1    int
		parts int
		want  []RowRange
	}{
		{
			name: "even split",
			y0:   0, y1: 8, parts: 4,
			want: []RowRange{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name: "remainder goes to early ranges",
			y0:   0, y1: 10, parts: 4,
			want: []RowRange{{0, 3}, {3, 6}, {6, 8}, {8, 10}},
		},
		{
			name: "more parts than rows",
			y0:   0, y1: 3, parts: 8,
			want: []RowRange{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "single part",
			y0:   0, y1: 5, parts: 1,
			want: []RowRange{{0, 5}},
		},
		{
			name: "zero parts treated as one",
			y0:   0, y1: 5, parts: 0,
			want: []RowRange{{0, 5}},
		},
		{
			name: "offset interval",
			y0:   10, y1: 15, parts: 2,
			want: []RowRange{{10, 13}, {13, 15}},
		},
		{
			name: "empty interval",
			y0:   5, y1: 5, parts: 4,
			want: nil,
		},
		{
			name: "inverted interval",
			y0:   5, y1: 3, parts: 4,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.y0, tt.y1, tt.parts)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitRows() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("range %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitRowsCoversExactly(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 1080, 4321} {
		for _, parts := range []int{1, 2, 3, 8, 16, 100} {
			ranges := SplitRows(0, n, parts)

			covered := 0
			prev := 0
			for _, r := range ranges {
				if r.Y0 != prev {
					t.Fatalf("n=%d parts=%d: gap before %v", n, parts, r)
				}
				if r.Len() <= 0 {
					t.Fatalf("n=%d parts=%d: empty range %v", n, parts, r)
				}
				covered += r.Len()
				prev = r.Y1
			}
			if covered != n || prev != n {
				t.Errorf("n=%d parts=%d: covered %d rows ending at %d", n, parts, covered, prev)
			}
		}
	}
}

func TestRowRange(t *testing.T) {
	r := RowRange{Y0: 4, Y1: 9}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
	if !r.Contains(4) || !r.Contains(8) {
		t.Error("Contains should include both interval ends minus one")
	}
	if r.Contains(3) || r.Contains(9) {
		t.Error("Contains should exclude rows outside the half-open range")
	}
}

func TestDefaultPool(t *testing.T) {
	p1 := Default()
	p2 := Default()
	if p1 != p2 {
		t.Error("Default() should return the same pool")
	}
	if !p1.IsRunning() {
		t.Error("default pool should be running")
	}
	if p1.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", p1.Workers())
	}
}
