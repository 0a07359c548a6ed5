package sync

// Entry is the outcome of one matched base name.
type Entry struct {
	// Base is the matched base name.
	Base string

	// Matched is the target file that triggered the match.
	Matched string

	// Replacements are the reference files the shortcuts point at:
	// the selected original, plus its sidecar when applicable.
	Replacements []string

	// Deleted lists the same-base files removed from the target root.
	// In a dry run these are the files that would have been removed.
	Deleted []string

	// Created lists the shortcut paths created at the target root.
	// In a dry run these are the paths that would have been created.
	Created []string

	// Err carries this entry's failure, if any. The run continues
	// past a failed entry.
	Err error
}

// Failed reports whether the entry ended in an error.
func (e *Entry) Failed() bool {
	return e.Err != nil
}

// Result is the outcome of one synchronization run.
type Result struct {
	// TargetRoot is the shortcut folder that was synchronized.
	TargetRoot string

	// DryRun records whether mutations were only simulated.
	DryRun bool

	// Scanned is the number of files walked under the target root.
	Scanned int

	// Entries holds one outcome per matched base name, in walk order.
	Entries []Entry

	// Err joins the errors of all failed entries. Setup failures are
	// returned by Run directly and never end up here.
	Err error
}

// MatchedCount returns the number of matched base names.
func (r *Result) MatchedCount() int {
	return len(r.Entries)
}

// CreatedCount returns the total number of shortcuts created.
func (r *Result) CreatedCount() int {
	n := 0
	for i := range r.Entries {
		n += len(r.Entries[i].Created)
	}
	return n
}

// DeletedCount returns the total number of files deleted.
func (r *Result) DeletedCount() int {
	n := 0
	for i := range r.Entries {
		n += len(r.Entries[i].Deleted)
	}
	return n
}

// FailedCount returns the number of entries that ended in an error.
func (r *Result) FailedCount() int {
	n := 0
	for i := range r.Entries {
		if r.Entries[i].Failed() {
			n++
		}
	}
	return n
}
