package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitRange(t *testing.T) {
	t.Parallel()

	r := FitRange([]float64{2, 4, 6}, false)
	assert.InDelta(t, 4, r.Mean, 1e-9)
	assert.InDelta(t, 2, r.Std, 1e-9)

	assert.Equal(t, 80, r.Rating(6))
	assert.Equal(t, 70, r.Rating(4))
	assert.Equal(t, 50, r.Rating(0))
}

func TestFitRangeDegenerate(t *testing.T) {
	t.Parallel()

	// Empty and single-sample populations fall back to a unit spread so
	// every value rates as league average territory, not NaN.
	empty := FitRange(nil, false)
	assert.Equal(t, 70, empty.Rating(0))

	single := FitRange([]float64{5}, false)
	assert.InDelta(t, 5, single.Mean, 1e-9)
	assert.Equal(t, 70, single.Rating(5))

	flat := FitRange([]float64{3, 3, 3}, false)
	assert.InDelta(t, 1, flat.Std, 1e-9)
	assert.Equal(t, 70, flat.Rating(3))
}

func TestRangeLowerIsBetter(t *testing.T) {
	t.Parallel()

	r := FitRange([]float64{2, 4, 6}, true)
	assert.Equal(t, 80, r.Rating(2), "below the mean scores above average")
	assert.Equal(t, 60, r.Rating(6))
}

func TestRatingFromZClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 70, RatingFromZ(0))
	assert.Equal(t, 80, RatingFromZ(1))
	assert.Equal(t, RatingMax, RatingFromZ(3))
	assert.Equal(t, RatingMax, RatingFromZ(250))
	assert.Equal(t, RatingMin, RatingFromZ(-4.5))
	assert.Equal(t, RatingMin, RatingFromZ(-250))
}

func TestRatingsLeagueAverageLine(t *testing.T) {
	t.Parallel()

	// A line sitting exactly on every NBA population mean rates 70 in
	// every slot.
	line := StatLine{
		Games:               1,
		Rebounds:            3.7,
		Assists:             2.2,
		Steals:              0.6,
		Blocks:              0.6, // impact 1.5*0.6 + 0.6 = 1.5
		Turnovers:           1.2,
		FieldGoalsMade:      3.2,
		FieldGoalsAttempted: 3.2 / 0.46,
		ThreesMade:          1.1,
		ThreesAttempted:     1.1 / 0.34,
		FreeThrowsMade:      1.9,
		FreeThrowsAttempted: 2.5,
	}
	conv := NewConverter(NBARanges())
	assert.Equal(t, Ratings{
		InsideScoring: 70,
		MidRange:      70,
		ThreePoint:    70,
		Defense:       70,
		Rebounding:    70,
		Passing:       70,
	}, conv.Ratings(line))
}

func TestRatingsStarLine(t *testing.T) {
	t.Parallel()

	line := StatLine{
		Games:               1,
		Rebounds:            8,
		Assists:             8,
		Steals:              1.5,
		Blocks:              1,
		Turnovers:           2.5,
		FieldGoalsMade:      10,
		FieldGoalsAttempted: 18,
		ThreesMade:          3,
		ThreesAttempted:     8,
		FreeThrowsMade:      7,
		FreeThrowsAttempted: 8,
	}
	conv := NewConverter(NBARanges())
	assert.Equal(t, Ratings{
		InsideScoring: 93,
		MidRange:      84,
		ThreePoint:    83,
		Defense:       89,
		Rebounding:    87,
		Passing:       88,
	}, conv.Ratings(line))
}

func TestRatingsThreePointAttemptFloor(t *testing.T) {
	t.Parallel()

	conv := NewConverter(NBARanges())

	line := StatLine{Games: 1, FieldGoalsMade: 3, FieldGoalsAttempted: 7}
	assert.Equal(t, RatingMin, conv.Ratings(line).ThreePoint,
		"no attempts means no sample, not a 70")

	line.ThreesAttempted = 0.05
	assert.Equal(t, RatingMin, conv.Ratings(line).ThreePoint)

	line.ThreesAttempted = 3
	line.ThreesMade = 1.1
	assert.Greater(t, conv.Ratings(line).ThreePoint, RatingMin)
}

func TestRatingsTurnoverCare(t *testing.T) {
	t.Parallel()

	conv := NewConverter(NBARanges())
	careful := StatLine{Games: 1, Assists: 5, Turnovers: 0.5, FieldGoalsAttempted: 1}
	loose := careful
	loose.Turnovers = 3

	assert.Greater(t, conv.Ratings(careful).Passing, conv.Ratings(loose).Passing)
}

func TestPerGame(t *testing.T) {
	t.Parallel()

	totals := StatLine{
		Games:               50,
		Minutes:             1500,
		Points:              1000,
		Rebounds:            250,
		Assists:             150,
		FieldGoalsMade:      400,
		FieldGoalsAttempted: 800,
	}
	pg := totals.PerGame()

	assert.InDelta(t, 20, pg.Points, 1e-9)
	assert.InDelta(t, 5, pg.Rebounds, 1e-9)
	assert.InDelta(t, 8, pg.FieldGoalsMade, 1e-9)
	assert.InDelta(t, 50, pg.Games, 1e-9, "games are the divisor, not divided")
	assert.InDelta(t, totals.FieldGoalPct(), pg.FieldGoalPct(), 1e-9)

	dnp := StatLine{Points: 12}
	assert.Equal(t, dnp, dnp.PerGame())
}

func TestFitLeagueRanges(t *testing.T) {
	t.Parallel()

	low := StatLine{
		Games: 1, Rebounds: 2, Assists: 1, Steals: 1, Blocks: 0, Turnovers: 1,
		FieldGoalsMade: 2, FieldGoalsAttempted: 8,
		ThreesMade: 1, ThreesAttempted: 4,
		FreeThrowsMade: 1, FreeThrowsAttempted: 2,
	}
	high := StatLine{
		Games: 1, Rebounds: 6, Assists: 3, Steals: 1, Blocks: 2, Turnovers: 3,
		FieldGoalsMade: 6, FieldGoalsAttempted: 8,
		ThreesMade: 3, ThreesAttempted: 4,
		FreeThrowsMade: 2, FreeThrowsAttempted: 2,
	}
	center := StatLine{
		Games: 1, Rebounds: 4, Assists: 2, Steals: 1, Blocks: 1, Turnovers: 2,
		FieldGoalsMade: 4, FieldGoalsAttempted: 8,
		ThreesMade: 2, ThreesAttempted: 4,
		FreeThrowsMade: 1.5, FreeThrowsAttempted: 2,
	}

	ranges := FitLeagueRanges([]StatLine{low, high})
	assert.True(t, ranges.Turnovers.LowerIsBetter)

	conv := NewConverter(ranges)
	assert.Equal(t, Ratings{
		InsideScoring: 70,
		MidRange:      70,
		ThreePoint:    70,
		Defense:       70,
		Rebounding:    70,
		Passing:       70,
	}, conv.Ratings(center), "the population center rates league average")
}
