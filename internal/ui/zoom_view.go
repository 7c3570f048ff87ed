package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/booru-gallery/internal/download"
)

// ZoomView shows one cached image at full window size with its tags
type ZoomView struct {
	localization *Localization

	path    string
	image   *canvas.Image
	title   *widget.Label
	caption *widget.Label

	container *fyne.Container
}

// NewZoomView creates the hidden zoom view
func NewZoomView(localization *Localization) *ZoomView {
	zv := &ZoomView{localization: localization}

	zv.image = &canvas.Image{FillMode: canvas.ImageFillContain}
	zv.title = widget.NewLabel("")
	zv.title.TextStyle = fyne.TextStyle{Bold: true}
	zv.title.Truncation = fyne.TextTruncateEllipsis

	zv.caption = widget.NewLabel("")
	zv.caption.Wrapping = fyne.TextWrapWord

	captionScroll := container.NewVScroll(zv.caption)
	captionScroll.SetMinSize(fyne.NewSize(0, ZoomCaptionMinHeight))

	zv.container = container.NewBorder(
		zv.title,
		captionScroll,
		nil,
		nil,
		zv.image,
	)
	zv.container.Hide()
	return zv
}

// Container returns the view's root object
func (zv *ZoomView) Container() *fyne.Container {
	return zv.container
}

// Path returns the image currently shown
func (zv *ZoomView) Path() string {
	return zv.path
}

// Show loads path and its tag sidecar into the view
func (zv *ZoomView) Show(path string) {
	zv.path = path
	zv.image.File = path
	zv.image.Image = nil
	zv.image.Refresh()

	zv.title.SetText(filepath.Base(path))

	tags, err := download.ReadTags(path)
	if err != nil || tags == "" {
		tags = zv.localization.GetText(KeyNoTags)
	}
	zv.caption.SetText(tags)

	zv.container.Show()
}

// Hide clears and hides the view
func (zv *ZoomView) Hide() {
	zv.path = ""
	zv.image.File = ""
	zv.image.Image = nil
	zv.container.Hide()
}
