package terminfo

import (
	"os"
	"path/filepath"
)

// Database indexes the terminfo files under a directory root, mapping
// each entry's leaf file name to its absolute path. Entries are decoded
// on demand; Database itself holds no file handles.
type Database struct {
	root  string
	paths map[string]string
}

// Open walks root recursively and indexes every non-directory entry it
// finds (regular files and symlinks alike) by leaf name. Duplicate leaf names overwrite earlier ones; a well-formed
// terminfo tree never has any.
func Open(root string) (*Database, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, FormatError{"database", "cannot stat root: " + err.Error()}
	}
	if !info.IsDir() {
		return nil, FormatError{"database", "root is not a directory"}
	}

	paths := make(map[string]string)
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		paths[info.Name()] = path
		return nil
	})
	if err != nil {
		return nil, FormatError{"database", "walk failed: " + err.Error()}
	}

	return &Database{root: root, paths: paths}, nil
}

// Root returns the directory this Database was opened against.
func (db *Database) Root() string { return db.root }

// Names returns every indexed entry name, in no particular order.
func (db *Database) Names() []string {
	names := make([]string, 0, len(db.paths))
	for name := range db.paths {
		names = append(names, name)
	}
	return names
}

// Load decodes the named entry, failing with ErrEntryNotFound if name
// isn't indexed.
func (db *Database) Load(name string) (*Entry, error) {
	path, ok := db.paths[name]
	if !ok {
		return nil, ErrEntryNotFound
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, FormatError{"database", "cannot open entry: " + err.Error()}
	}
	defer f.Close()
	return Decode(f)
}

// LoadDefault loads the entry named by $TERM, or fallback if $TERM is
// unset and fallback is non-empty. It fails with ErrNoDefaultTerm if
// neither is available.
func (db *Database) LoadDefault(fallback string) (*Entry, error) {
	name := os.Getenv("TERM")
	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, ErrNoDefaultTerm
	}
	return db.Load(name)
}

// SearchPaths returns the ordered list of terminfo directory roots to try,
// honoring the same environment variables as ncurses:
//
//   - $TERMINFO, if set, is used exclusively.
//   - Otherwise ~/.terminfo is tried first.
//   - Then each non-empty entry of $TERMINFO_DIRS, in order; an empty
//     entry (e.g. from a leading/trailing/doubled colon) stands in for
//     the compiled-in default path.
//   - Finally /usr/share/terminfo, if nothing above already contributed it.
func SearchPaths() []string {
	if t := os.Getenv("TERMINFO"); t != "" {
		return []string{t}
	}

	const defaultRoot = "/usr/share/terminfo"

	var paths []string
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".terminfo"))
	}

	sawDefault := false
	if dirs := os.Getenv("TERMINFO_DIRS"); dirs != "" {
		for _, d := range filepath.SplitList(dirs) {
			if d == "" {
				d = defaultRoot
			}
			if d == defaultRoot {
				sawDefault = true
			}
			paths = append(paths, d)
		}
	}

	if !sawDefault {
		paths = append(paths, defaultRoot)
	}

	return paths
}

// OpenDefault walks SearchPaths in order and returns the first root that
// opens successfully as a Database.
func OpenDefault() (*Database, error) {
	var lastErr error
	for _, root := range SearchPaths() {
		db, err := Open(root)
		if err == nil {
			return db, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = FormatError{"database", "no search path candidates"}
	}
	return nil, lastErr
}
