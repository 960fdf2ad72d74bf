package spatial

import (
	"slices"
	"testing"
)

func TestIndexSearch(t *testing.T) {
	ix := New[string]()
	ix.Set("a", Box{0, 0, 1, 1})
	ix.Set("b", Box{5, 5, 6, 6})
	ix.Set("c", Box{0.5, 0.5, 5.5, 5.5})

	tests := []struct {
		name string
		q    Box
		want []string
	}{
		{"origin", Box{0.2, 0.2, 0.4, 0.4}, []string{"a"}},
		{"middle", Box{2, 2, 3, 3}, []string{"c"}},
		{"corner", Box{0.7, 0.7, 0.8, 0.8}, []string{"a", "c"}},
		{"far", Box{50, 50, 60, 60}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Search(tt.q)
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Search(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestIndexSetReplaces(t *testing.T) {
	ix := New[int]()
	ix.Set(1, Box{0, 0, 1, 1})
	ix.Set(1, Box{10, 10, 11, 11})

	if ix.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ix.Len())
	}
	if got := ix.Search(Box{0.2, 0.2, 0.8, 0.8}); len(got) != 0 {
		t.Errorf("old box still indexed: %v", got)
	}
	if got := ix.Search(Box{10.2, 10.2, 10.8, 10.8}); len(got) != 1 {
		t.Errorf("new box not found: %v", got)
	}
}

func TestIndexDelete(t *testing.T) {
	ix := New[int]()
	ix.Set(1, Box{0, 0, 1, 1})
	if !ix.Delete(1) {
		t.Fatal("Delete(1) = false")
	}
	if ix.Delete(1) {
		t.Error("second Delete(1) = true")
	}
	if got := ix.Search(Box{0, 0, 1, 1}); len(got) != 0 {
		t.Errorf("deleted key found: %v", got)
	}
}

func TestIndexDegenerateBoxes(t *testing.T) {
	ix := New[string]()
	ix.Set("point", Box{2, 2, 2, 2})
	ix.Set("hline", Box{0, 3, 4, 3})

	got := ix.Search(Box{1.5, 1.5, 3.5, 3.5})
	slices.Sort(got)
	if !slices.Equal(got, []string{"hline", "point"}) {
		t.Errorf("Search = %v, want [hline point]", got)
	}
}

func TestIndexMany(t *testing.T) {
	ix := New[int]()
	for i := range 200 {
		x := float64(i)
		ix.Set(i, Box{x, 0, x + 0.5, 0.5})
	}
	for i := 0; i < 200; i += 2 {
		ix.Delete(i)
	}
	got := ix.Search(Box{-1, -1, 300, 1})
	if len(got) != 100 {
		t.Fatalf("found %d, want 100", len(got))
	}
	for _, k := range got {
		if k%2 == 0 {
			t.Errorf("deleted key %d returned", k)
		}
	}
}
