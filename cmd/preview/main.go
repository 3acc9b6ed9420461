// Command preview shows a headshot beside its inferred appearance
// attributes. Developer tool for eyeballing threshold changes.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"

	"hoopvision/internal/appearance"
	"hoopvision/internal/catalog"
	"hoopvision/internal/imgio"
)

const maxPreviewSide = 512

func main() {
	imagePath := flag.String("image", "", "Path to a headshot image")
	catalogPath := flag.String("catalog", "", "Path to a catalog mappings JSON (default: embedded)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: preview -image <path> [-catalog mappings.json]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		if cat, err = catalog.LoadFile(*catalogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
	}

	an := appearance.New(cat, appearance.DefaultParams())
	res := an.Analyze(data)

	img, err := imgio.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	fs := an.ExtractFeatures(img)

	form := widget.NewForm(
		widget.NewFormItem("Skin tone", widget.NewLabel(fmt.Sprintf("%d / 10", res.SkinTone))),
		widget.NewFormItem("Hair", widget.NewLabel(fmt.Sprintf("%d (%s)", res.Hair, cat.Hair[res.Hair].Description))),
		widget.NewFormItem("Facial hair", widget.NewLabel(fmt.Sprintf("%d (%s)", res.FacialHair, cat.FacialHair[res.FacialHair].Description))),
		widget.NewFormItem("Accessory", widget.NewLabel(fmt.Sprintf("%d (%s)", res.Accessory, cat.Accessories[res.Accessory].Description))),
		widget.NewFormItem("Hair coverage", widget.NewLabel(fmt.Sprintf("%.3f", fs.HairCoverage))),
		widget.NewFormItem("Hair texture", widget.NewLabel(fmt.Sprintf("%.3f", fs.HairTexture))),
		widget.NewFormItem("Chin dark / edge", widget.NewLabel(fmt.Sprintf("%.3f / %.3f", fs.ChinDarkRatio, fs.ChinEdgeRatio))),
	)

	photo := fynecanvas.NewImageFromImage(scaleDown(img))
	photo.FillMode = fynecanvas.ImageFillContain
	photo.SetMinSize(fyne.NewSize(380, 280))

	a := app.New()
	win := a.NewWindow("hoopvision preview")
	win.SetContent(container.NewBorder(nil, nil, nil, form, photo))
	win.Resize(fyne.NewSize(760, 480))
	win.ShowAndRun()
}

// scaleDown resizes img so its longest side fits maxPreviewSide, keeping
// aspect. Small images pass through untouched.
func scaleDown(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxPreviewSide && h <= maxPreviewSide {
		return img
	}
	scale := float64(maxPreviewSide) / float64(w)
	if h > w {
		scale = float64(maxPreviewSide) / float64(h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
