package rename

import (
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal strings", "img1.mp3", "img1.mp3", 0},
		{"numeric order beats lexicographic", "img2.mp3", "img10.mp3", -1},
		{"numeric order reversed", "img10.mp3", "img2.mp3", 1},
		{"adjacent numbers", "img10.mp3", "img11.mp3", -1},
		{"plain lexicographic", "apple", "banana", -1},
		{"prefix sorts first", "img", "img1", -1},
		{"leading zeros same value", "img01.mp3", "img1.mp3", 0},
		{"leading zeros different value", "img02.mp3", "img10.mp3", -1},
		{"digits before letters", "1file", "afile", -1},
		{"case sensitive non-digit runs", "IMG2", "img10", -1},
		{"number at end", "track9", "track10", -1},
		{"multiple number runs", "disc1track10", "disc2track1", -1},
		{"multiple runs same first", "disc1track2", "disc1track10", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortNatural(t *testing.T) {
	paths := []string{"img2.mp3", "img10.mp3", "img1.mp3"}
	SortNatural(paths)

	want := []string{"img1.mp3", "img2.mp3", "img10.mp3"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("SortNatural() = %v, want %v", paths, want)
	}
}

func TestLess_Antisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"img2.mp3", "img10.mp3"},
		{"a", "b"},
		{"file", "file1"},
	}
	for _, p := range pairs {
		if Less(p[0], p[1]) == Less(p[1], p[0]) {
			t.Errorf("Less(%q, %q) and Less(%q, %q) are both %v", p[0], p[1], p[1], p[0], Less(p[0], p[1]))
		}
	}
}
