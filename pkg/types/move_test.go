package types

import (
	"errors"
	"testing"
)

func TestMoveTableCoversEveryAxisAndLayer(t *testing.T) {
	seen := make(map[[3]int]bool)
	for _, m := range AllMoves() {
		key := [3]int{int(m.Axis()), m.Layer(), int(m.Turn())}
		if seen[key] {
			t.Errorf("%v duplicates axis %v layer %d turn %d", m, m.Axis(), m.Layer(), m.Turn())
		}
		seen[key] = true
	}
	if len(seen) != NumMoves {
		t.Errorf("expected %d distinct moves, got %d", NumMoves, len(seen))
	}
}

func TestInverse(t *testing.T) {
	for _, m := range AllMoves() {
		inv := m.Inverse()
		if inv == m {
			t.Errorf("%v is its own inverse", m)
		}
		if inv.Inverse() != m {
			t.Errorf("inverse of inverse of %v is %v", m, inv.Inverse())
		}
		if inv.Face() != m.Face() || inv.Turn() != -m.Turn() {
			t.Errorf("%v and %v are not a pair", m, inv)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves() {
		got, err := ParseMove(m.Notation())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.Notation(), err)
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.Notation(), got, m)
		}
	}
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []Move
	}{
		{"R U R' U'", []Move{R, U, RPrime, UPrime}},
		{"RUR'U'", []Move{R, U, RPrime, UPrime}},
		{"r u`", []Move{R, UPrime}},
		{"M E' S", []Move{M, EPrime, S}},
		{"F2", []Move{F, F}},
		{"B2'", []Move{B, B}},
		{"", nil},
	}

	for _, tt := range tests {
		got, err := ParseMoves(tt.in)
		if err != nil {
			t.Errorf("ParseMoves(%q): %v", tt.in, err)
			continue
		}
		if FormatMoves(got) != FormatMoves(tt.want) {
			t.Errorf("ParseMoves(%q) = %q, want %q", tt.in, FormatMoves(got), FormatMoves(tt.want))
		}
	}
}

func TestParseMovesInvalid(t *testing.T) {
	for _, in := range []string{"X", "R U Q", "'"} {
		if _, err := ParseMoves(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMoves(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
	if _, err := ParseMove("R U"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMove of two moves should fail, got %v", err)
	}
}

func TestConcatAndInvert(t *testing.T) {
	if got := ConcatMoves(SexyMove); got != "RUR'U'" {
		t.Errorf("ConcatMoves = %q", got)
	}
	if got := FormatMoves(InvertMoves(SexyMove)); got != "U R U' R'" {
		t.Errorf("InvertMoves = %q", got)
	}
}

func TestLookupSequence(t *testing.T) {
	seq, err := LookupSequence("basic-move")
	if err != nil {
		t.Fatal(err)
	}
	seq[0] = L
	if SexyMove[0] != R {
		t.Error("LookupSequence must not alias the algorithm table")
	}

	seq, err = LookupSequence("R U")
	if err != nil || len(seq) != 2 {
		t.Errorf("LookupSequence(notation) = %v, %v", seq, err)
	}

	if _, err := LookupSequence("   "); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("empty sequence error = %v", err)
	}
}

func TestFaceLayout(t *testing.T) {
	tests := []struct {
		face  Face
		axis  Axis
		layer int
	}{
		{FaceF, AxisXY, 0}, {FaceS, AxisXY, 1}, {FaceB, AxisXY, 2},
		{FaceU, AxisXZ, 0}, {FaceE, AxisXZ, 1}, {FaceD, AxisXZ, 2},
		{FaceL, AxisYZ, 0}, {FaceM, AxisYZ, 1}, {FaceR, AxisYZ, 2},
	}
	for _, tt := range tests {
		if tt.face.Axis() != tt.axis || tt.face.Layer() != tt.layer {
			t.Errorf("%s: got %v/%d, want %v/%d", tt.face, tt.face.Axis(), tt.face.Layer(), tt.axis, tt.layer)
		}
		if tt.face.IsSlice() != (tt.layer == 1) {
			t.Errorf("%s: IsSlice = %v", tt.face, tt.face.IsSlice())
		}
	}
}
