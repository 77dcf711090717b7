package pattern

import (
	"errors"
	"testing"
)

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []Pair
		wantErr error
		wantIdx int // -1 when no *PairError expected
	}{
		{"nil pairs", nil, ErrNoPairs, -1},
		{"empty pairs", []Pair{}, ErrNoPairs, -1},
		{"nil key", []Pair{{Key: nil, Value: []byte("v")}}, ErrEmptyKey, 0},
		{"empty key", []Pair{{Key: []byte{}, Value: []byte("v")}}, ErrEmptyKey, 0},
		{"nil value", []Pair{{Key: []byte("k"), Value: nil}}, ErrEmptyValue, 0},
		{
			"second pair invalid",
			[]Pair{
				{Key: []byte("k"), Value: []byte("v")},
				{Key: []byte("x"), Value: []byte{}},
			},
			ErrEmptyValue, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.pairs)
			if table != nil {
				t.Fatalf("NewTable returned a table alongside error %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTable error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantIdx >= 0 {
				var pe *PairError
				if !errors.As(err, &pe) {
					t.Fatalf("NewTable error = %v, want *PairError", err)
				}
				if pe.Index != tt.wantIdx {
					t.Errorf("PairError.Index = %d, want %d", pe.Index, tt.wantIdx)
				}
			}
		})
	}
}

func TestNewTableOrdering(t *testing.T) {
	pairs := []Pair{
		{Key: []byte("b"), Value: []byte("B")},
		{Key: []byte("abcde"), Value: []byte("X")},
		{Key: []byte("a"), Value: []byte("A")},
		{Key: []byte("33"), Value: []byte("T")},
	}
	table, err := NewTable(pairs)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	var keys []string
	for _, e := range table.Entries() {
		keys = append(keys, string(e.Pair.Key))
	}
	// Longest first; equal lengths keep caller order ("b" before "a").
	want := []string{"abcde", "33", "b", "a"}
	if len(keys) != len(want) {
		t.Fatalf("Entries() has %d entries, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("entry %d key = %q, want %q", i, keys[i], want[i])
		}
	}
	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}
}

func TestNewTableCopiesPairList(t *testing.T) {
	pairs := []Pair{{Key: []byte("a"), Value: []byte("A")}}
	table, err := NewTable(pairs)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	// Mutating the caller's slice must not reach the table.
	pairs[0] = Pair{Key: []byte("zz"), Value: []byte("Z")}
	if got := string(table.Entries()[0].Pair.Key); got != "a" {
		t.Errorf("table key = %q after caller mutation, want %q", got, "a")
	}
}

func TestEntryMetadata(t *testing.T) {
	table, err := NewTable([]Pair{{Key: []byte("33"), Value: []byte("threethree")}})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	e := table.Entries()[0]
	if e.KeyHash != 153 { // ('3'<<1)+'3' = 51*2+51
		t.Errorf("KeyHash = %d, want 153", e.KeyHash)
	}
	if e.RemCoef != 2 {
		t.Errorf("RemCoef = %d, want 2", e.RemCoef)
	}
	if e.Pair.Delta() != 8 {
		t.Errorf("Delta() = %d, want 8", e.Pair.Delta())
	}
}
