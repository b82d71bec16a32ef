package lyricsync

// saveOptions holds configuration for writing files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep source modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() saveOptions {
	return saveOptions{}
}

// WithBackup keeps the file previously at the destination path.
//
// The backup file will have the specified suffix appended to the destination
// filename. For example, WithBackup(".bak") will move "song.mp3" to
// "song.mp3.bak" before the new file takes its place.
//
// If the backup file already exists, it will be overwritten. Only
// ExportFile and ExportMany use this option.
//
// Example:
//
//	_, err := lyricsync.ExportFile("song.mp3", "song.mp3", words,
//	    lyricsync.WithBackup(".bak"))
func WithBackup(suffix string) Option {
	return func(o *options) {
		o.save.backupSuffix = suffix
	}
}

// WithValidation re-reads the written file and checks that its SYLT frame
// decodes to the frame that was encoded.
//
// This adds a second pass over the tag region (not the audio) but catches
// a destination that did not end up with the expected lyrics.
func WithValidation() Option {
	return func(o *options) {
		o.save.validate = true
	}
}

// WithPreserveModTime gives the written file the source's modification time.
//
// Use this when adding lyrics should not make a library manager think the
// audio changed.
func WithPreserveModTime() Option {
	return func(o *options) {
		o.save.preserveModTime = true
	}
}
