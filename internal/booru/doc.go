package booru

// Package booru is the client for Danbooru-compatible image-board APIs. It
// issues the authenticated, paginated tag search and turns the JSON post list
// into search results. All connection details come from an explicit Config.
