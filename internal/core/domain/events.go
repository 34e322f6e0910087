package domain

// FileEventKind distinguishes tracked-set changes.
type FileEventKind string

const (
	// FileAdded indicates a matching file appeared in the listing.
	FileAdded FileEventKind = "added"
	// FileRemoved indicates a tracked file disappeared from the listing.
	FileRemoved FileEventKind = "removed"
)

// FileEvent reports a change to the tracked set.
type FileEvent struct {
	Kind FileEventKind
	File string
}

// MatchEvent reports that the search text was found on Line (1-based) of File.
type MatchEvent struct {
	File string
	Line int
}

// ScanResult is the outcome of a completed scan of one file.
type ScanResult struct {
	// Watermark is the number of lines read plus one.
	Watermark int
	// Lines is the number of lines read.
	Lines int
	// Digest fingerprints the content that was read.
	Digest uint64
	// Matches counts the match events emitted during the scan.
	Matches int
}
