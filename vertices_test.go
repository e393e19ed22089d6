package stim

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeVerticesForms(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []Loop
	}{
		{"int scalar", 2, []Loop{{Pt(2, 2)}}},
		{"float scalar", 0.5, []Loop{{Pt(0.5, 0.5)}}},
		{"point", Pt(1, -2), []Loop{{Pt(1, -2)}}},
		{"pair", [2]float64{3, 4}, []Loop{{Pt(3, 4)}}},
		{
			"loop",
			Loop{{0, 0}, {1, 0}, {0, 1}},
			[]Loop{{{0, 0}, {1, 0}, {0, 1}}},
		},
		{
			"point slice",
			[]Point{{0, 0}, {1, 1}},
			[]Loop{{{0, 0}, {1, 1}}},
		},
		{
			"array rows",
			[][2]float64{{0, 0}, {1, 0}, {0.5, 1}},
			[]Loop{{{0, 0}, {1, 0}, {0.5, 1}}},
		},
		{
			"slice rows",
			[][]float64{{0, 0}, {1, 0}, {0.5, 1}},
			[]Loop{{{0, 0}, {1, 0}, {0.5, 1}}},
		},
		{
			"loop list",
			[]Loop{{{0, 0}, {1, 0}, {0, 1}}, {{2, 2}, {3, 2}, {2, 3}}},
			[]Loop{{{0, 0}, {1, 0}, {0, 1}}, {{2, 2}, {3, 2}, {2, 3}}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeVertices(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeVerticesPresets(t *testing.T) {
	cases := []struct {
		name      string
		wantVerts int
	}{
		{"cross", 12},
		{"star7", 14},
		{"triangle", 3},
		{"rectangle", 4},
		{"circle", 60},
		{"CROSS", 12}, // lookup is case-insensitive
	}
	for _, tc := range cases {
		loops, err := normalizeVertices(tc.name)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(loops) != 1 || len(loops[0]) != tc.wantVerts {
			t.Errorf("%s: got %d loops, first of %d vertices; want 1 of %d",
				tc.name, len(loops), len(loops[0]), tc.wantVerts)
		}
	}
}

func TestNormalizeVerticesErrors(t *testing.T) {
	cases := []any{
		nil,
		"no-such-shape",
		struct{}{},
		[]string{"a"},
		[][]float64{{1}},
		[][]float64{{1, 2, 3}},
		Loop{},
		[]Point{},
		[]Loop{},
		[]Loop{{{0, 0}}, {}},
	}
	for _, in := range cases {
		if _, err := normalizeVertices(in); !errors.Is(err, ErrInvalidVertexShape) {
			t.Errorf("normalizeVertices(%#v) error = %v, want ErrInvalidVertexShape", in, err)
		}
	}
}

func TestNormalizeVerticesCopiesInput(t *testing.T) {
	in := []Point{{0, 0}, {1, 0}, {0, 1}}
	loops, err := normalizeVertices(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = Pt(9, 9)
	if loops[0][0] == Pt(9, 9) {
		t.Error("normalized loops share memory with the input")
	}
}

func TestPresetLoopsAreIsolated(t *testing.T) {
	a, _ := resolvePreset("cross")
	a[0] = Pt(42, 42)
	b, _ := resolvePreset("cross")
	if b[0] == Pt(42, 42) {
		t.Error("preset table leaked a mutable reference")
	}
}
