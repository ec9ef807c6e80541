package ui

import (
	"testing"

	"game-of-life/internal/core"
)

func TestSparklineScales(t *testing.T) {
	pts := sparkline([]int{0, 5, 10}, 100, 50)
	want := []point{{0, 50}, {50, 25}, {100, 0}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("pts[%d] = %+v, want %+v", i, pts[i], want[i])
		}
	}
}

func TestSparklineFlatAndEmpty(t *testing.T) {
	pts := sparkline([]int{7, 7}, 10, 20)
	if pts[0].Y != 10 || pts[1].Y != 10 {
		t.Fatalf("flat series should sit mid-box: %+v", pts)
	}
	if sparkline(nil, 10, 10) != nil {
		t.Fatal("no samples, no points")
	}
	if one := sparkline([]int{3}, 10, 10); len(one) != 1 || one[0].X != 0 {
		t.Fatalf("single sample = %+v", one)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		ctrl core.ParameterControl
		v    float64
		want string
	}{
		{core.ParameterControl{Type: core.ParamTypeInt, Step: 10}, 59.6, "60"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 1}, 12, "12.0"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05}, 0.35, "0.35"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.001}, 0.1234, "0.123"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.ctrl, tc.v); got != tc.want {
			t.Errorf("formatValue(%+v, %v) = %q, want %q", tc.ctrl, tc.v, got, tc.want)
		}
	}
}
