package explorer

import (
	"os"
	"path/filepath"
	"syscall"
)

type dirID struct {
	dev uint64
	ino uint64
}

type searcher struct {
	target   string
	found    func(path string)
	maxDepth int
	visited  map[dirID]struct{}
	matches  int
}

// Search walks the tree under root depth first, pre-order, and calls found
// with the path of every entry named exactly target (case-sensitive) that
// is not reported as a directory. It returns the number of matches.
//
// Branching uses the type reported by the directory read itself: a
// symlink to a directory is compared by name and never descended into.
// Directories that cannot be opened are skipped silently, together with
// everything below them. Entries are visited in the order the directory
// yields them.
func (e *Explorer) Search(root, target string, found func(path string)) int {
	s := &searcher{
		target:   target,
		found:    found,
		maxDepth: e.maxDepth,
	}
	if e.detectCycles {
		s.visited = make(map[dirID]struct{})
	}

	start := root
	if !filepath.IsAbs(start) {
		start = filepath.Join(e.dir, root)
	}
	s.walk(start, 0)
	return s.matches
}

func (s *searcher) walk(dir string, depth int) {
	entries, ok := s.readDir(dir)
	if !ok {
		return
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if s.maxDepth > 0 && depth >= s.maxDepth {
				continue
			}
			s.walk(full, depth+1)
			continue
		}
		if entry.Name() == s.target {
			s.matches++
			if s.found != nil {
				s.found(full)
			}
		}
	}
}

// readDir reads every entry of dir in directory order and closes it before
// the caller recurses. ok is false when the directory should be skipped.
func (s *searcher) readDir(dir string) ([]os.DirEntry, bool) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	if s.visited != nil {
		if id, known := statID(f); known {
			if _, seen := s.visited[id]; seen {
				return nil, false
			}
			s.visited[id] = struct{}{}
		}
	}

	// A read error part way through still yields the entries read so far.
	entries, _ := f.ReadDir(-1)
	return entries, true
}

func statID(f *os.File) (dirID, bool) {
	info, err := f.Stat()
	if err != nil {
		return dirID{}, false
	}
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return dirID{}, false
	}
	return dirID{dev: uint64(sys.Dev), ino: uint64(sys.Ino)}, true
}
