package sidecar

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaguid/internal/checksum"
	"github.com/vvka-141/metaguid/internal/files/filesystem"
)

const metaPath = "/project/Assets/a.png.meta"

func newMemoryPatcher(t *testing.T, content string, opts Options) (*Patcher, *filesystem.MemoryFileSystem) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile(metaPath, content)
	return NewPatcherWithFS(checksum.New(), mfs, opts), mfs
}

func readString(t *testing.T, p filesystem.FileSystemProvider, path string) string {
	t.Helper()
	data, err := p.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPatcher_ReplacesIdentifierAndKeepsOtherLines(t *testing.T) {
	original := "fileFormatVersion: 2\r\n" +
		"guid: ffffffffffffffffffffffffffffffff\r\n" +
		"TextureImporter:\r\n" +
		"  mipmaps: 0\n"
	p, mfs := newMemoryPatcher(t, original, Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)

	got := SplitLines([]byte(readString(t, mfs, metaPath)))
	want := SplitLines([]byte(original))
	want[1] = "guid: " + testGUID + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("patched sidecar mismatch (-want +got):\n%s", diff)
	}
}

func TestPatcher_CreatesBackupOfOriginal(t *testing.T) {
	original := "fileFormatVersion: 2\nguid: ffffffffffffffffffffffffffffffff\n"
	p, mfs := newMemoryPatcher(t, original, Options{})

	_, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)

	assert.Equal(t, original, readString(t, mfs, metaPath+".bak"))
}

func TestPatcher_ExistingBackupIsNotRefreshed(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "fileFormatVersion: 2\nguid: ffffffffffffffffffffffffffffffff\n", Options{})
	mfs.AddFile(metaPath+".bak", "stale snapshot\n")

	_, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)

	assert.Equal(t, "stale snapshot\n", readString(t, mfs, metaPath+".bak"))
}

func TestPatcher_BackupTakenOnlyOnceAcrossPatches(t *testing.T) {
	original := "fileFormatVersion: 2\nguid: ffffffffffffffffffffffffffffffff\n"
	p, mfs := newMemoryPatcher(t, original, Options{})

	_, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	_, err = p.Patch(metaPath, "abcdefabcdefabcdefabcdefabcdefab")
	require.NoError(t, err)

	assert.Equal(t, original, readString(t, mfs, metaPath+".bak"))
}

func TestPatcher_CustomBackupSuffix(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "guid: x\n", Options{BackupSuffix: ".orig"})

	_, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)

	assert.Equal(t, metaPath+".orig", p.BackupPath(metaPath))
	assert.Equal(t, "guid: x\n", readString(t, mfs, metaPath+".orig"))
	_, err = mfs.Stat(metaPath + ".bak")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPatcher_SecondPatchIsIdempotent(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "fileFormatVersion: 2\r\nguid: ffffffffffffffffffffffffffffffff\r\nx: 1\r\n", Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	require.True(t, changed)
	first := readString(t, mfs, metaPath)

	changed, err = p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, readString(t, mfs, metaPath))
}

func TestPatcher_SameIdentifierWithCRLFIsUnchanged(t *testing.T) {
	original := "fileFormatVersion: 2\r\nguid: " + testGUID + "\r\n"
	p, mfs := newMemoryPatcher(t, original, Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, original, readString(t, mfs, metaPath), "unchanged sidecar must not be rewritten")
}

func TestPatcher_UnterminatedIdentifierLineCountsAsChange(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "fileFormatVersion: 2\nguid: "+testGUID, Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "fileFormatVersion: 2\nguid: "+testGUID+"\n", readString(t, mfs, metaPath))
}

func TestPatcher_InsertsAfterFormatVersion(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "fileFormatVersion: 2\nfolderAsset: yes\n", Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "fileFormatVersion: 2\nguid: "+testGUID+"\nfolderAsset: yes\n", readString(t, mfs, metaPath))
}

func TestPatcher_PrependsSyntheticHeader(t *testing.T) {
	original := "DefaultImporter:\n  userData: \n"
	p, mfs := newMemoryPatcher(t, original, Options{})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)

	got := readString(t, mfs, metaPath)
	assert.Equal(t, "fileFormatVersion: 2\nguid: "+testGUID+"\n"+original, got)
	assert.True(t, strings.HasSuffix(got, original))
}

func TestPatcher_CustomFormatVersion(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "", Options{FormatVersion: "3"})

	_, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.Equal(t, "fileFormatVersion: 3\nguid: "+testGUID+"\n", readString(t, mfs, metaPath))
}

func TestPatcher_DoesNotValidateIdentifier(t *testing.T) {
	p, mfs := newMemoryPatcher(t, "guid: x\n", Options{})

	changed, err := p.Patch(metaPath, "whatever")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "guid: whatever\n", readString(t, mfs, metaPath))
}

func TestPatcher_DryRunWritesNothing(t *testing.T) {
	original := "fileFormatVersion: 2\nguid: ffffffffffffffffffffffffffffffff\n"
	p, mfs := newMemoryPatcher(t, original, Options{DryRun: true})

	changed, err := p.Patch(metaPath, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, original, readString(t, mfs, metaPath))

	_, err = mfs.Stat(metaPath + ".bak")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPatcher_MissingSidecarIsIOError(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	p := NewPatcherWithFS(checksum.New(), mfs, Options{})

	_, err := p.Patch("/project/Assets/none.meta", testGUID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewPatcherWithFS_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewPatcherWithFS(nil, filesystem.NewMemoryFileSystem("/"), Options{}) })
	assert.Panics(t, func() { NewPatcherWithFS(checksum.New(), nil, Options{}) })
}

func TestPatcher_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png.meta")
	original := "fileFormatVersion: 2\r\nguid: ffffffffffffffffffffffffffffffff\r\nTextureImporter:\r\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))
	modTime := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	p := NewPatcher(checksum.New(), Options{})
	changed, err := p.Patch(path, testGUID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fileFormatVersion: 2\r\nguid: "+testGUID+"\nTextureImporter:\r\n", string(got))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))

	info, err := os.Stat(path + ".bak")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modTime))
}
