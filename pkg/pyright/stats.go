package pyright

import "sort"

// FileStat pairs a file path with its diagnostic counts.
type FileStat struct {
	File   string
	Counts Counts
}

// FileStats maps file paths to per-severity counts, remembering the order
// files were first seen. Insertion order is the stable tie-break when files
// are ranked by total problem count.
type FileStats struct {
	order  []string
	counts map[string]Counts
}

// NewFileStats creates an empty FileStats.
func NewFileStats() *FileStats {
	return &FileStats{counts: make(map[string]Counts)}
}

// Add records a diagnostic against its file. Diagnostics without a file are
// project-level and are dropped from per-file grouping; they still count in
// the overall summary, which is computed from the full diagnostic list.
func (s *FileStats) Add(d Diagnostic) {
	if d.File == "" {
		return
	}
	counts, seen := s.counts[d.File]
	if !seen {
		s.order = append(s.order, d.File)
	}
	counts.add(d.Severity)
	s.counts[d.File] = counts
}

// Get returns the counts for a file and whether the file was seen.
func (s *FileStats) Get(file string) (Counts, bool) {
	counts, ok := s.counts[file]
	return counts, ok
}

// Len returns the number of files with at least one diagnostic.
func (s *FileStats) Len() int {
	return len(s.order)
}

// Files returns the file paths in first-seen order.
func (s *FileStats) Files() []string {
	files := make([]string, len(s.order))
	copy(files, s.order)
	return files
}

// Ranked returns per-file stats sorted by descending total problem count.
// Ties keep first-seen order.
func (s *FileStats) Ranked() []FileStat {
	ranked := make([]FileStat, 0, len(s.order))
	for _, file := range s.order {
		ranked = append(ranked, FileStat{File: file, Counts: s.counts[file]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Counts.Total() > ranked[j].Counts.Total()
	})
	return ranked
}

// GroupByFile builds FileStats from a diagnostic list.
func GroupByFile(diags []Diagnostic) *FileStats {
	stats := NewFileStats()
	for _, d := range diags {
		stats.Add(d)
	}
	return stats
}
