package engine

// CurveID names one of the staged multiplier curves.
type CurveID string

const (
	CurveDailyStreak         CurveID = "dailyStreak"
	CurveTaskStreak          CurveID = "taskStreak"
	CurveDayTasksCompleted   CurveID = "dayTasksCompleted"
	CurveLevel               CurveID = "level"
	CurveTotalTasksCompleted CurveID = "totalTasksCompleted"
	CurveActiveTasks         CurveID = "activeTasks"
	CurveDaysCompleted       CurveID = "daysCompleted"
)

type curvePoint struct {
	x, y float64
}

// stagedCurve is a piecewise-linear interpolation over ordered control
// points. Below the first point it returns the first y, beyond the last it
// stays flat at the last y. flatThroughOne forces inputs 0 and 1 to exactly
// 1 regardless of what interpolation would yield.
type stagedCurve struct {
	points         []curvePoint
	flatThroughOne bool
}

func (c stagedCurve) evaluate(x float64) float64 {
	if c.flatThroughOne && x <= 1 {
		return 1
	}
	pts := c.points
	if x <= pts[0].x {
		return pts[0].y
	}
	last := pts[len(pts)-1]
	if x >= last.x {
		return last.y
	}
	for i := 1; i < len(pts); i++ {
		if x < pts[i].x {
			lo, hi := pts[i-1], pts[i]
			t := (x - lo.x) / (hi.x - lo.x)
			return lo.y + t*(hi.y-lo.y)
		}
	}
	return last.y
}

var curves = map[CurveID]stagedCurve{
	CurveDailyStreak: {points: []curvePoint{
		{0, 1}, {1, 1}, {3, 1.2}, {7, 1.4}, {14, 1.68}, {30, 2.16}, {60, 2.76},
		{90, 3.21}, {180, 4.11}, {365, 5.035}, {730, 6.13}, {1461, 7.592}, {3652, 9.783},
	}},
	CurveTaskStreak: {flatThroughOne: true, points: []curvePoint{
		{1, 1.1}, {5, 1.3}, {10, 1.5}, {20, 1.8}, {50, 2.4}, {100, 2.9},
		{200, 3.4}, {500, 4}, {1000, 4.5}, {2000, 5}, {5000, 5.6}, {10000, 6.1},
	}},
	CurveDayTasksCompleted: {flatThroughOne: true, points: []curvePoint{
		{1, 1}, {5, 1.5}, {10, 2}, {20, 2.5}, {50, 3.25}, {100, 4.25},
		{200, 5.25}, {500, 6.75}, {1000, 8}, {2000, 10}, {5000, 13}, {10000, 16},
	}},
	CurveLevel: {flatThroughOne: true, points: []curvePoint{
		{1, 1}, {3, 1.2}, {5, 1.3}, {10, 1.5}, {20, 1.8}, {50, 2.4}, {100, 3},
		{200, 4}, {300, 4.5}, {500, 5}, {1000, 6}, {2000, 7}, {5000, 8.5}, {10000, 9.5},
	}},
	CurveTotalTasksCompleted: {flatThroughOne: true, points: []curvePoint{
		{1, 1}, {3, 1.2}, {5, 1.3}, {10, 1.5}, {20, 1.8}, {50, 2.4}, {100, 3},
		{200, 4}, {500, 5.5}, {1000, 7}, {2000, 9}, {5000, 12}, {10000, 14.5},
		{20000, 17.5}, {50000, 25}, {100000, 30}, {200000, 36}, {500000, 45}, {1000000, 55},
	}},
	CurveActiveTasks: {flatThroughOne: true, points: []curvePoint{
		{1, 1}, {3, 1.5}, {5, 1.9}, {10, 2.5}, {20, 3}, {50, 3.9}, {100, 5},
		{200, 6.5}, {500, 9.5}, {1000, 12}, {2000, 16}, {5000, 22}, {10000, 27},
	}},
	CurveDaysCompleted: {flatThroughOne: true, points: []curvePoint{
		{1, 1}, {3, 1.2}, {7, 1.4}, {14, 1.61}, {30, 1.93}, {60, 2.23}, {90, 2.38},
		{180, 2.74}, {365, 3.2025}, {730, 3.9325}, {1461, 4.6625}, {3652, 5.758}, {7305, 6.4886},
	}},
}

// EvaluateCurve returns the multiplier for the named curve at x. Unknown
// curve ids return 1 so a bad lookup can never zero out a reward product.
func EvaluateCurve(id CurveID, x float64) float64 {
	c, ok := curves[id]
	if !ok {
		return 1
	}
	return c.evaluate(x)
}

// rankThresholds maps rating thresholds to ranks 1..71: the rank for a
// rating is the number of thresholds at or below it, 0 below the first.
var rankThresholds = []float64{
	10, 50, 100, 250, 500, 1000, 2000, 3000, 5000, 7500,
	10000, 15000, 20000, 25000, 30000, 40000, 50000, 60000, 75000, 100000,
	125000, 150000, 200000, 250000, 300000, 400000, 500000, 600000, 750000, 1000000,
	1250000, 1500000, 2000000, 2500000, 3000000, 4000000, 5000000, 6000000, 8000000, 10000000,
	12500000, 15000000, 17500000, 20000000, 25000000, 30000000, 35000000, 40000000, 45000000, 50000000,
	60000000, 70000000, 80000000, 90000000, 100000000, 125000000, 150000000, 175000000, 200000000, 225000000,
	250000000, 300000000, 350000000, 400000000, 450000000, 500000000, 600000000, 700000000, 800000000, 900000000,
	1000000000,
}

// RankForRating is the step table behind the "rank" curve.
func RankForRating(rating float64) int {
	rank := 0
	for _, threshold := range rankThresholds {
		if rating < threshold {
			break
		}
		rank++
	}
	return rank
}
