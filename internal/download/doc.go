package download

// Package download implements the image acquisition pipeline: it fetches
// search results one at a time into a flat cache directory, skips files that
// are already cached, and hands newly available paths to the UI in batches.
