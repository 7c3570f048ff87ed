package ui

import (
	"image"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ImageTile is one thumbnail in the gallery grid. A primary tap toggles the
// selection, a secondary tap opens the zoomed view.
type ImageTile struct {
	widget.BaseWidget

	path     string
	selected bool

	image   *canvas.Image
	border  *canvas.Rectangle
	overlay *canvas.Rectangle
	caption *canvas.Rectangle
	name    *canvas.Text
	check   *canvas.Text

	onTapped    func(path string)
	onSecondary func(path string)
}

// NewImageTile creates an empty tile used as a grid template
func NewImageTile() *ImageTile {
	t := &ImageTile{}
	t.image = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleFastest}

	t.border = canvas.NewRectangle(color.Transparent)
	t.border.StrokeWidth = 3
	t.overlay = canvas.NewRectangle(tileOverlayColor)
	t.caption = canvas.NewRectangle(tileCaptionColor)

	t.name = canvas.NewText("", color.White)
	t.name.TextSize = theme.CaptionTextSize()
	t.check = canvas.NewText(IconCheck, color.White)
	t.check.TextStyle = fyne.TextStyle{Bold: true}
	t.overlay.Hide()
	t.check.Hide()

	t.ExtendBaseWidget(t)
	return t
}

// SetCallbacks sets the tap handlers
func (t *ImageTile) SetCallbacks(onTapped, onSecondary func(path string)) {
	t.onTapped = onTapped
	t.onSecondary = onSecondary
}

// Path returns the image shown by the tile
func (t *ImageTile) Path() string {
	return t.path
}

// Bind points the tile at a new path. The image is cleared until
// SetImage delivers the thumbnail.
func (t *ImageTile) Bind(path string, selected bool) {
	if t.path != path {
		t.image.Image = nil
	}
	t.path = path
	t.selected = selected
	t.Refresh()
}

// SetImage shows img if the tile still points at path
func (t *ImageTile) SetImage(path string, img image.Image) {
	if t.path != path {
		return
	}
	t.image.Image = img
	t.image.Refresh()
}

// SetSelected updates the selection highlight
func (t *ImageTile) SetSelected(selected bool) {
	if t.selected == selected {
		return
	}
	t.selected = selected
	t.Refresh()
}

// Tapped toggles the selection
func (t *ImageTile) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil && t.path != "" {
		t.onTapped(t.path)
	}
}

// TappedSecondary opens the zoomed view
func (t *ImageTile) TappedSecondary(_ *fyne.PointEvent) {
	if t.onSecondary != nil && t.path != "" {
		t.onSecondary(t.path)
	}
}

// MinSize keeps every tile square
func (t *ImageTile) MinSize() fyne.Size {
	return fyne.NewSize(TileSize, TileSize)
}

// CreateRenderer creates the widget renderer
func (t *ImageTile) CreateRenderer() fyne.WidgetRenderer {
	return &imageTileRenderer{tile: t}
}

type imageTileRenderer struct {
	tile *ImageTile
}

func (r *imageTileRenderer) Layout(size fyne.Size) {
	t := r.tile
	t.image.Resize(size)
	t.image.Move(fyne.NewPos(0, 0))
	t.border.Resize(size)
	t.overlay.Resize(size)

	t.caption.Resize(fyne.NewSize(size.Width, TileCaptionSize))
	t.caption.Move(fyne.NewPos(0, size.Height-TileCaptionSize))
	textSize := t.name.MinSize()
	t.name.Resize(fyne.NewSize(size.Width-2*TileCheckInset, textSize.Height))
	t.name.Move(fyne.NewPos(TileCheckInset, size.Height-TileCaptionSize+(TileCaptionSize-textSize.Height)/2))

	checkSize := t.check.MinSize()
	t.check.Resize(checkSize)
	t.check.Move(fyne.NewPos(size.Width-checkSize.Width-TileCheckInset, TileCheckInset))
}

func (r *imageTileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TileSize, TileSize)
}

func (r *imageTileRenderer) Refresh() {
	t := r.tile
	t.name.Text = filepath.Base(t.path)
	if t.path == "" {
		t.name.Text = ""
	}

	if t.selected {
		t.border.StrokeColor = selectedTileColor
		t.overlay.Show()
		t.check.Show()
	} else {
		t.border.StrokeColor = color.Transparent
		t.overlay.Hide()
		t.check.Hide()
	}

	t.name.Refresh()
	t.border.Refresh()
	t.overlay.Refresh()
	t.check.Refresh()
	t.image.Refresh()
}

func (r *imageTileRenderer) Objects() []fyne.CanvasObject {
	t := r.tile
	return []fyne.CanvasObject{t.image, t.overlay, t.caption, t.name, t.border, t.check}
}

func (r *imageTileRenderer) Destroy() {}
