package stats

// StatLine holds one player's season box-score aggregates. Counting stats
// may be season totals or per-game averages; call PerGame before rating a
// totals line.
type StatLine struct {
	Games               float64 `json:"games"`
	Minutes             float64 `json:"minutes"`
	Points              float64 `json:"points"`
	Rebounds            float64 `json:"rebounds"`
	Assists             float64 `json:"assists"`
	Steals              float64 `json:"steals"`
	Blocks              float64 `json:"blocks"`
	Turnovers           float64 `json:"turnovers"`
	FieldGoalsMade      float64 `json:"fgm"`
	FieldGoalsAttempted float64 `json:"fga"`
	ThreesMade          float64 `json:"fg3m"`
	ThreesAttempted     float64 `json:"fg3a"`
	FreeThrowsMade      float64 `json:"ftm"`
	FreeThrowsAttempted float64 `json:"fta"`
}

// PerGame converts a totals line into per-game averages. Lines with no
// games played are returned unchanged.
func (l StatLine) PerGame() StatLine {
	if l.Games <= 0 {
		return l
	}
	g := l.Games
	l.Minutes /= g
	l.Points /= g
	l.Rebounds /= g
	l.Assists /= g
	l.Steals /= g
	l.Blocks /= g
	l.Turnovers /= g
	l.FieldGoalsMade /= g
	l.FieldGoalsAttempted /= g
	l.ThreesMade /= g
	l.ThreesAttempted /= g
	l.FreeThrowsMade /= g
	l.FreeThrowsAttempted /= g
	return l
}

// FieldGoalPct returns makes over attempts, 0 when the player never shot.
func (l StatLine) FieldGoalPct() float64 { return pct(l.FieldGoalsMade, l.FieldGoalsAttempted) }

// ThreePct returns three-point makes over attempts.
func (l StatLine) ThreePct() float64 { return pct(l.ThreesMade, l.ThreesAttempted) }

// FreeThrowPct returns free-throw makes over attempts.
func (l StatLine) FreeThrowPct() float64 { return pct(l.FreeThrowsMade, l.FreeThrowsAttempted) }

// DefenseImpact blends steals and blocks into one defensive events number.
// Steals weigh heavier: a steal both ends the possession and starts a
// break, a block usually only contests the shot.
func (l StatLine) DefenseImpact() float64 { return 1.5*l.Steals + l.Blocks }

func pct(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return made / attempted
}

// Ratings are the renderer attribute slots derived from a stat line.
type Ratings struct {
	InsideScoring int `json:"inside_scoring"`
	MidRange      int `json:"mid_range"`
	ThreePoint    int `json:"three_point"`
	Defense       int `json:"defense"`
	Rebounding    int `json:"rebounding"`
	Passing       int `json:"passing"`
}

// LeagueRanges holds the population ranges every rated signal is scored
// against.
type LeagueRanges struct {
	FieldGoalPct   Range
	ThreePct       Range
	FreeThrowPct   Range
	FieldGoalsMade Range
	ThreesMade     Range
	Rebounds       Range
	Assists        Range
	Turnovers      Range
	DefenseImpact  Range
}

// NBARanges returns per-game population ranges fitted on recent NBA
// seasons. They suit pro box scores; fit college or synthetic leagues
// with FitLeagueRanges instead.
func NBARanges() LeagueRanges {
	return LeagueRanges{
		FieldGoalPct:   Range{Mean: 0.46, Std: 0.06},
		ThreePct:       Range{Mean: 0.34, Std: 0.07},
		FreeThrowPct:   Range{Mean: 0.76, Std: 0.10},
		FieldGoalsMade: Range{Mean: 3.2, Std: 2.2},
		ThreesMade:     Range{Mean: 1.1, Std: 1.0},
		Rebounds:       Range{Mean: 3.7, Std: 2.5},
		Assists:        Range{Mean: 2.2, Std: 2.0},
		Turnovers:      Range{Mean: 1.2, Std: 0.8, LowerIsBetter: true},
		DefenseImpact:  Range{Mean: 1.5, Std: 0.9},
	}
}

// FitLeagueRanges fits every range from a population of per-game lines.
func FitLeagueRanges(lines []StatLine) LeagueRanges {
	n := len(lines)
	cols := make(map[string][]float64, 9)
	for _, key := range []string{
		"fg_pct", "fg3_pct", "ft_pct", "fgm", "fg3m", "reb", "ast", "tov", "def",
	} {
		cols[key] = make([]float64, 0, n)
	}
	for _, l := range lines {
		cols["fg_pct"] = append(cols["fg_pct"], l.FieldGoalPct())
		cols["fg3_pct"] = append(cols["fg3_pct"], l.ThreePct())
		cols["ft_pct"] = append(cols["ft_pct"], l.FreeThrowPct())
		cols["fgm"] = append(cols["fgm"], l.FieldGoalsMade)
		cols["fg3m"] = append(cols["fg3m"], l.ThreesMade)
		cols["reb"] = append(cols["reb"], l.Rebounds)
		cols["ast"] = append(cols["ast"], l.Assists)
		cols["tov"] = append(cols["tov"], l.Turnovers)
		cols["def"] = append(cols["def"], l.DefenseImpact())
	}
	return LeagueRanges{
		FieldGoalPct:   FitRange(cols["fg_pct"], false),
		ThreePct:       FitRange(cols["fg3_pct"], false),
		FreeThrowPct:   FitRange(cols["ft_pct"], false),
		FieldGoalsMade: FitRange(cols["fgm"], false),
		ThreesMade:     FitRange(cols["fg3m"], false),
		Rebounds:       FitRange(cols["reb"], false),
		Assists:        FitRange(cols["ast"], false),
		Turnovers:      FitRange(cols["tov"], true),
		DefenseImpact:  FitRange(cols["def"], false),
	}
}

// Blend weights. Inside scoring mixes efficiency with volume; mid range
// leans on shooting touch; three point rewards makes over raw percentage
// so low-volume hot streaks do not rate as snipers.
const (
	insideEfficiencyWeight = 0.5
	insideVolumeWeight     = 0.5
	midTouchWeight         = 0.5
	midFreeThrowWeight     = 0.5
	threePctWeight         = 0.4
	threeMakesWeight       = 0.6
	passingAssistWeight    = 0.75
	passingCareWeight      = 0.25

	// Below this many attempts per game the three-point sample is noise
	// and the rating pins to the floor.
	minThreeAttempts = 0.1
)

// Converter rates per-game stat lines against a fixed set of league
// ranges. Converters are safe for concurrent use.
type Converter struct {
	ranges LeagueRanges
}

// NewConverter returns a converter scoring against ranges.
func NewConverter(ranges LeagueRanges) *Converter {
	return &Converter{ranges: ranges}
}

// Ratings derives the attribute slots for one per-game line.
func (c *Converter) Ratings(line StatLine) Ratings {
	r := c.ranges
	out := Ratings{
		InsideScoring: RatingFromZ(
			insideEfficiencyWeight*r.FieldGoalPct.Z(line.FieldGoalPct()) +
				insideVolumeWeight*r.FieldGoalsMade.Z(line.FieldGoalsMade)),
		MidRange: RatingFromZ(
			midTouchWeight*r.FieldGoalPct.Z(line.FieldGoalPct()) +
				midFreeThrowWeight*r.FreeThrowPct.Z(line.FreeThrowPct())),
		Defense:    r.DefenseImpact.Rating(line.DefenseImpact()),
		Rebounding: r.Rebounds.Rating(line.Rebounds),
		Passing: RatingFromZ(
			passingAssistWeight*r.Assists.Z(line.Assists) +
				passingCareWeight*r.Turnovers.Z(line.Turnovers)),
	}
	if line.ThreesAttempted < minThreeAttempts {
		out.ThreePoint = RatingMin
	} else {
		out.ThreePoint = RatingFromZ(
			threePctWeight*r.ThreePct.Z(line.ThreePct()) +
				threeMakesWeight*r.ThreesMade.Z(line.ThreesMade))
	}
	return out
}
