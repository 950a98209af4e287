package engine

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEvaluateCurveControlPoints(t *testing.T) {
	tests := []struct {
		id   CurveID
		x    float64
		want float64
	}{
		{CurveTaskStreak, 0, 1},
		{CurveTaskStreak, 1, 1},
		{CurveTaskStreak, 5, 1.3},
		{CurveDailyStreak, 0, 1},
		{CurveDailyStreak, 30, 2.16},
		{CurveDailyStreak, 3652, 9.783},
		{CurveLevel, 1, 1},
		{CurveLevel, 1000, 6},
		{CurveDayTasksCompleted, 1, 1},
		{CurveDayTasksCompleted, 10000, 16},
		{CurveTotalTasksCompleted, 1000000, 55},
		{CurveActiveTasks, 10, 2.5},
		{CurveDaysCompleted, 365, 3.2025},
	}
	for _, tt := range tests {
		if got := EvaluateCurve(tt.id, tt.x); got != tt.want {
			t.Errorf("EvaluateCurve(%s, %v) = %v, want %v", tt.id, tt.x, got, tt.want)
		}
	}
}

func TestEvaluateCurveInterpolates(t *testing.T) {
	// Halfway between (3,1.2) and (7,1.4).
	approx(t, EvaluateCurve(CurveDailyStreak, 5), 1.3)
	// A quarter of the way between (1,1.1) and (5,1.3).
	approx(t, EvaluateCurve(CurveTaskStreak, 2), 1.15)
	// Halfway between (1,1) and (3,1.5).
	approx(t, EvaluateCurve(CurveActiveTasks, 2), 1.25)
}

func TestEvaluateCurveFlatBeyondEnds(t *testing.T) {
	if got := EvaluateCurve(CurveDailyStreak, 100000); got != 9.783 {
		t.Fatalf("beyond last point = %v, want 9.783", got)
	}
	if got := EvaluateCurve(CurveDaysCompleted, 50000); got != 6.4886 {
		t.Fatalf("beyond last point = %v, want 6.4886", got)
	}
}

func TestEvaluateCurveFloor(t *testing.T) {
	// Every curve returns at least its first control point's value for any
	// non-negative input.
	for id, c := range curves {
		floor := c.points[0].y
		if c.flatThroughOne && floor > 1 {
			floor = 1
		}
		for _, x := range []float64{0, 0.5, 1, 2, 17, 999, 1e7} {
			if got := EvaluateCurve(id, x); got < floor {
				t.Errorf("EvaluateCurve(%s, %v) = %v below floor %v", id, x, got, floor)
			}
		}
	}
}

func TestEvaluateCurveUnknownID(t *testing.T) {
	if got := EvaluateCurve("bogus", 42); got != 1 {
		t.Fatalf("unknown curve = %v, want 1", got)
	}
}

func TestRankForRating(t *testing.T) {
	tests := []struct {
		rating float64
		want   int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{49, 1},
		{50, 2},
		{7500, 10},
		{999999, 29},
		{1000000, 30},
		{999999999, 70},
		{1000000000, 71},
		{5000000000, 71},
	}
	for _, tt := range tests {
		if got := RankForRating(tt.rating); got != tt.want {
			t.Errorf("RankForRating(%v) = %d, want %d", tt.rating, got, tt.want)
		}
	}
}
