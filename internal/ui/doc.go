// Package ui contains the Fyne-based desktop user interface for the gallery.
// It drives a browse.Session from the tag entry, paging buttons and page-size
// select, renders the cached images as a grid of selectable tiles, and exports
// the selection. All UI strings are localized via Localization.
package ui
