package terminfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/terminfo"
)

func writeEntry(t *testing.T, root, dir, name string) {
	t.Helper()
	data := buildBasicEntry(t, terminfo.Magic, name, []bool{true}, []int{10}, []string{"x"})
	sub := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, name), data, 0o644))
}

func TestDatabaseOpenLoad(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "v", "vt100")
	writeEntry(t, root, "x", "xterm")

	db, err := terminfo.Open(root)
	require.NoError(t, err)

	names := db.Names()
	assert.ElementsMatch(t, []string{"vt100", "xterm"}, names)

	e, err := db.Load("vt100")
	require.NoError(t, err)
	assert.Equal(t, "vt100", e.Names().Brief)

	_, err = db.Load("nonexistent")
	assert.ErrorIs(t, err, terminfo.ErrEntryNotFound)
}

func TestDatabaseOpenRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := terminfo.Open(file)
	require.Error(t, err)
	var fe terminfo.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestLoadDefaultNoTerm(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "v", "vt100")
	db, err := terminfo.Open(root)
	require.NoError(t, err)

	t.Setenv("TERM", "")
	_, err = db.LoadDefault("")
	assert.ErrorIs(t, err, terminfo.ErrNoDefaultTerm)

	t.Setenv("TERM", "vt100")
	e, err := db.LoadDefault("")
	require.NoError(t, err)
	assert.Equal(t, "vt100", e.Names().Brief)
}

func TestSearchPathsHonorsTERMINFO(t *testing.T) {
	t.Setenv("TERMINFO", "/custom/terminfo")
	paths := terminfo.SearchPaths()
	assert.Equal(t, []string{"/custom/terminfo"}, paths)
}

func TestSearchPathsFallsBackToDefault(t *testing.T) {
	t.Setenv("TERMINFO", "")
	t.Setenv("TERMINFO_DIRS", "")
	t.Setenv("HOME", "/home/nobody")
	paths := terminfo.SearchPaths()
	assert.Contains(t, paths, "/usr/share/terminfo")
	assert.Contains(t, paths, "/home/nobody/.terminfo")
}
