package platform

// Package platform contains OS/platform integration: the image cache
// directory (creation, clearing, scanning), exporting cached images to a
// user folder, and opening files with the system's default application.
