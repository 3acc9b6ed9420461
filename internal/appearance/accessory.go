package appearance

import (
	"image"

	"hoopvision/pkg/imgutil"
)

// extractAccessory fills the forehead band geometry and the eye-level
// dark-row count. A headband shows as a run of rows with near-uniform
// color in the forehead window; sunglasses show as dark uniform rows at
// eye level.
func extractAccessory(fs *FeatureSet, gray *image.Gray, p Params) {
	fs.BandStart = -1
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}

	// The longest uniform run in the window wins; its start row is kept
	// relative to the window so the position rule is height-independent.
	top := clampRow(int(float64(h)*p.ForeheadTopFrac), h)
	bottom := clampRow(int(float64(h)*p.ForeheadBottomFrac), h)
	runStart, runLen := 0, 0
	runSum := 0.0
	bestStart, bestLen := -1, 0
	bestSum := 0.0
	for i, y := 0, top; y < bottom; i, y = i+1, y+1 {
		mean, std := imgutil.RowStats(gray, y, 0, w)
		if std < p.BandStdMax {
			if runLen == 0 {
				runStart = i
				runSum = 0
			}
			runLen++
			runSum += mean
			if runLen > bestLen {
				bestStart, bestLen, bestSum = runStart, runLen, runSum
			}
		} else {
			runLen = 0
		}
	}
	if bestLen > 0 {
		fs.BandStart = bestStart
		fs.BandHeight = bestLen
		fs.BandBrightness = bestSum / float64(bestLen)
	}

	eyeTop := clampRow(int(float64(h)*p.EyeTopFrac), h)
	eyeBottom := clampRow(int(float64(h)*p.EyeBottomFrac), h)
	for y := eyeTop; y < eyeBottom; y++ {
		mean, std := imgutil.RowStats(gray, y, 0, w)
		if mean < p.EyeDarkMax && std < p.EyeStdMax {
			fs.EyeDarkRows++
		}
	}
}

func clampRow(y, h int) int {
	if y < 0 {
		return 0
	}
	if y > h {
		return h
	}
	return y
}
