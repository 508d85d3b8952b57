package repository

// CreateLogOptions holds the parameters for creating a log entry.
type CreateLogOptions struct {
	Title   string
	Entries string
	Mood    string
	Tags    []string
	LogDate string
}

// UpdateLogOptions holds the full replacement for an existing log entry.
type UpdateLogOptions struct {
	ID      string
	Title   string
	Entries string
	Mood    string
	Tags    []string
	LogDate string
}
