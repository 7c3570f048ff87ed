package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "◀"
	IconNext     = "▶"
	IconSave     = "💾"
	IconFolder   = "📁"
	IconBack     = "↩"
	IconCheck    = "✔"
	IconClose    = "×"
)

// Grid tile sizing
const (
	TileSize        float32 = 160
	TileCaptionSize float32 = 20
	TileCheckInset  float32 = 6

	// ThumbnailPixels is the decode size for grid thumbnails
	ThumbnailPixels = 256
)

// Zoom view sizing
const (
	ZoomCaptionMinHeight float32 = 60
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Debounce durations
const (
	GridRefreshDebounce = 100 * time.Millisecond
)

// Window sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)
