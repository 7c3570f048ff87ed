package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
	"github.com/ytget/booru-gallery/internal/thumbnail"
)

// GalleryView renders the session gallery as a wrapping grid of tiles and
// owns the user's selection. All methods must run on the Fyne thread.
type GalleryView struct {
	gallery   *model.Gallery
	selection *model.Selection
	thumbs    thumbnail.Thumbnailer

	grid *widget.GridWrap

	onSelectionChanged func(count int, mode model.SelectionMode)
	onZoom             func(path string)

	log *log.Entry
}

// NewGalleryView creates the grid over gallery
func NewGalleryView(gallery *model.Gallery, thumbs thumbnail.Thumbnailer) *GalleryView {
	gv := &GalleryView{
		gallery:   gallery,
		selection: model.NewSelection(),
		thumbs:    thumbs,
		log:       logging.For("ui"),
	}

	gv.grid = widget.NewGridWrap(
		func() int {
			return gv.gallery.Len()
		},
		func() fyne.CanvasObject {
			return gv.createTile()
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			gv.updateTile(id, obj)
		},
	)
	return gv
}

// SetCallbacks sets the selection and zoom handlers
func (gv *GalleryView) SetCallbacks(onSelectionChanged func(count int, mode model.SelectionMode), onZoom func(path string)) {
	gv.onSelectionChanged = onSelectionChanged
	gv.onZoom = onZoom
}

// Widget returns the grid
func (gv *GalleryView) Widget() fyne.CanvasObject {
	return gv.grid
}

// Selection returns the current selection
func (gv *GalleryView) Selection() *model.Selection {
	return gv.selection
}

// Refresh redraws the grid after items were merged
func (gv *GalleryView) Refresh() {
	gv.grid.Refresh()
}

// Reset drops the selection and cached thumbnails after the gallery was
// emptied
func (gv *GalleryView) Reset() {
	gv.thumbs.Purge()
	gv.grid.UnselectAll()
	gv.grid.ScrollToTop()
	gv.setSelection(nil)
}

// SelectOnly replaces the selection with a single image
func (gv *GalleryView) SelectOnly(path string) {
	if !gv.gallery.Contains(path) {
		gv.setSelection(nil)
		return
	}
	gv.setSelection([]string{path})
}

// Toggle flips the selection state of one image
func (gv *GalleryView) Toggle(path string) {
	if !gv.selection.Contains(path) && !gv.gallery.Contains(path) {
		return
	}
	gv.notify(gv.selection.Toggle(path))
}

// setSelection rebuilds the selection from paths and notifies listeners
func (gv *GalleryView) setSelection(paths []string) {
	gv.notify(gv.selection.Replace(paths))
}

func (gv *GalleryView) notify(mode model.SelectionMode) {
	gv.log.Tracef("Selection now %d (%s)", gv.selection.Count(), mode)
	gv.grid.Refresh()
	if gv.onSelectionChanged != nil {
		gv.onSelectionChanged(gv.selection.Count(), mode)
	}
}

func (gv *GalleryView) zoom(path string) {
	if gv.onZoom != nil {
		gv.onZoom(path)
	}
}

func (gv *GalleryView) createTile() fyne.CanvasObject {
	tile := NewImageTile()
	tile.SetCallbacks(gv.Toggle, gv.zoom)
	return tile
}

func (gv *GalleryView) updateTile(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	tile, ok := obj.(*ImageTile)
	if !ok {
		return
	}
	path := gv.gallery.At(id)
	needsImage := tile.Path() != path || tile.image.Image == nil
	tile.Bind(path, gv.selection.Contains(path))
	if path != "" && needsImage {
		gv.loadThumbnail(tile, path)
	}
}

// loadThumbnail decodes off the Fyne thread and hands the result back
func (gv *GalleryView) loadThumbnail(tile *ImageTile, path string) {
	go func() {
		img, err := gv.thumbs.Thumbnail(path)
		if err != nil {
			gv.log.WithError(err).Debugf("No thumbnail for %s", path)
			return
		}
		fyne.Do(func() {
			tile.SetImage(path, img)
		})
	}()
}
