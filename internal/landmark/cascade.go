package landmark

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"hoopvision/pkg/geometry"
	"hoopvision/pkg/imgutil"
)

// CascadeDetector refines regions from Haar-cascade face and eye
// detections. When no face is found in an image it falls back to the
// fixed-fraction regions, so Detect never fails.
type CascadeDetector struct {
	face     gocv.CascadeClassifier
	eyes     gocv.CascadeClassifier
	hasEyes  bool
	fallback *PercentDetector
}

// NewCascadeDetector loads the face cascade from faceFile and, optionally,
// an eye cascade from eyeFile (empty string to skip). Returns an error when
// the face cascade cannot be loaded; the caller should then stay on the
// PercentDetector.
func NewCascadeDetector(faceFile, eyeFile string) (*CascadeDetector, error) {
	d := &CascadeDetector{fallback: NewPercentDetector()}

	d.face = gocv.NewCascadeClassifier()
	if !d.face.Load(faceFile) {
		d.face.Close()
		return nil, fmt.Errorf("load face cascade %q failed", faceFile)
	}

	if eyeFile != "" {
		d.eyes = gocv.NewCascadeClassifier()
		if d.eyes.Load(eyeFile) {
			d.hasEyes = true
		} else {
			d.eyes.Close()
		}
	}

	return d, nil
}

// Close releases the cascade classifiers.
func (d *CascadeDetector) Close() {
	d.face.Close()
	if d.hasEyes {
		d.eyes.Close()
	}
}

// Detect implements Detector. The largest detected face defines the
// regions; eye detections sharpen the eyebrow line when available. Ear
// visibility is never attested (frontal cascades cannot see ears).
func (d *CascadeDetector) Detect(img image.Image) Regions {
	h := img.Bounds().Dy()

	mat, err := grayToMat(img)
	if err != nil {
		return d.fallback.Detect(img)
	}
	defer mat.Close()

	face, ok := largestRect(d.face.DetectMultiScale(mat))
	if !ok {
		return d.fallback.Detect(img)
	}

	faceH := face.Dy()
	regions := Regions{
		// Brow line sits roughly a third into the face box.
		EyebrowY: clampRow(face.Min.Y+faceH*3/10, h),
		ChinTop:  clampRow(face.Min.Y+faceH*55/100, h),
		Chin:     chinPolygon(face),
	}

	if d.hasEyes {
		// Restrict the eye search to the upper half of the face box.
		upper := face
		upper.Max.Y = face.Min.Y + faceH/2
		sub := mat.Region(upper)
		eyes := d.eyes.DetectMultiScale(sub)
		sub.Close()
		if len(eyes) > 0 {
			top := eyes[0].Min.Y
			eyeH := eyes[0].Dy()
			for _, e := range eyes[1:] {
				if e.Min.Y < top {
					top = e.Min.Y
					eyeH = e.Dy()
				}
			}
			// Eyebrows sit about half an eye height above the eye box.
			regions.EyebrowY = clampRow(upper.Min.Y+top-eyeH/2, h)
		}
	}

	return regions
}

// chinPolygon approximates the jaw outline from a face box: straight sides
// down to 65% of the face, then a curve to the chin tip. Points are ordered
// around the centroid so the polygon is simple.
func chinPolygon(face image.Rectangle) []geometry.Point2D {
	fx, fy := float64(face.Min.X), float64(face.Min.Y)
	fw, fh := float64(face.Dx()), float64(face.Dy())
	pts := []geometry.Point2D{
		{X: fx, Y: fy + 0.55*fh},
		{X: fx + fw, Y: fy + 0.55*fh},
		{X: fx, Y: fy + 0.75*fh},
		{X: fx + fw, Y: fy + 0.75*fh},
		{X: fx + 0.2*fw, Y: fy + 0.92*fh},
		{X: fx + 0.8*fw, Y: fy + 0.92*fh},
		{X: fx + 0.5*fw, Y: fy + fh},
	}
	return geometry.SortAroundCentroid(pts)
}

// grayToMat converts an image to a single-channel OpenCV Mat.
func grayToMat(img image.Image) (gocv.Mat, error) {
	gray := imgutil.ToGray(imgutil.ToNRGBA(img))
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	if w == 0 || h == 0 {
		return gocv.Mat{}, fmt.Errorf("empty image")
	}
	return gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, gray.Pix)
}

// largestRect picks the rectangle with the largest area.
func largestRect(rects []image.Rectangle) (image.Rectangle, bool) {
	if len(rects) == 0 {
		return image.Rectangle{}, false
	}
	best := rects[0]
	for _, r := range rects[1:] {
		if r.Dx()*r.Dy() > best.Dx()*best.Dy() {
			best = r
		}
	}
	return best, true
}
