package flatten

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// A helper filesystem for tests to simulate filesystem errors.
type errorFs struct {
	afero.Fs
}

// A helper function for tests to simulate file creation failure.
func (e errorFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return nil, errors.New("simulated create failure")
}

// A helper function for tests to read the artifact of a run.
func readArtifact(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// Expectation: The artifact should hold the header, the tree and one block for the only included file.
func Test_Run_Success(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt":              "hello",
		"/src/node_modules/x.txt": "x",
	})

	cfg := NewConfig("/src", false, "/out", nil)
	require.NoError(t, Run(fs, cfg, nil))

	require.Equal(t,
		"Directory Tree for /src:\n\n"+
			"├── a.txt\n\n\n"+
			"File: a.txt\nContent:\nhello\n\n-----------------------------\n\n",
		readArtifact(t, fs, "/out/directory_contents.txt"))
}

// Expectation: The compressed artifact should hold a collapsed tree and one line per file.
func Test_Run_Compressed_Success(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt":   "line1\n\nline2\t\tend",
		"/src/b/c.txt": "c",
	})

	cfg := NewConfig("/src", true, "/out", nil)
	require.NoError(t, Run(fs, cfg, nil))

	require.Equal(t,
		"Directory Tree for /src:\n\n"+
			"├── a.txt ├── b/ ├── c.txt\n\n"+
			"File:a.txt,Content:line1 line2 end\n"+
			"File:b/c.txt,Content:c\n",
		readArtifact(t, fs, "/out/directory_contents_compressed.txt"))
}

// Expectation: A file with an excluded extension should be absent regardless of its content.
func Test_Run_ExcludedExtension_Success(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/image.png": "plain text pretending to be an image",
		"/src/a.txt":     "a",
	})

	cfg := NewConfig("/src", false, "/out", nil)
	require.NoError(t, Run(fs, cfg, nil))

	require.NotContains(t, readArtifact(t, fs, cfg.OutputPath), "image.png")
	require.NotContains(t, readArtifact(t, fs, cfg.OutputPath), "pretending")
}

// Expectation: A previous artifact should be overwritten, so repeated runs produce identical output.
func Test_Run_Idempotent_Success(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt":     "alpha\nbeta",
		"/src/b/c.go":    "package b\n",
		"/src/b/d/e.txt": "e",
	})
	require.NoError(t, afero.WriteFile(fs, "/out/directory_contents.txt", []byte(strings.Repeat("stale", 1000)), 0o644))

	cfg := NewConfig("/src", false, "/out", nil)

	require.NoError(t, Run(fs, cfg, nil))
	first := readArtifact(t, fs, cfg.OutputPath)

	require.NoError(t, Run(fs, cfg, nil))
	second := readArtifact(t, fs, cfg.OutputPath)

	require.Equal(t, first, second)
	require.NotContains(t, first, "stale")
}

// Expectation: Both modes should carry the same file contents once whitespace and decorations are removed.
func Test_Run_ModesEquivalent(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt":     "some   words\n\twith\ttabs\n",
		"/src/b/c.md":    "# Title\n\n  body text  \n",
		"/src/b/d/e.txt": "e",
		"/src/f.txt":     "",
	})

	normalCfg := NewConfig("/src", false, "/out", nil)
	compressedCfg := NewConfig("/src", true, "/out", nil)
	require.NoError(t, Run(fs, normalCfg, nil))
	require.NoError(t, Run(fs, compressedCfg, nil))

	whitespace := regexp.MustCompile(`\s+`)
	contentSection := func(artifact string, decorations ...string) string {
		section := artifact[strings.Index(artifact, "File:"):]
		section = whitespace.ReplaceAllString(section, "")
		for _, d := range decorations {
			section = strings.ReplaceAll(section, d, "")
		}
		return section
	}

	normal := contentSection(readArtifact(t, fs, normalCfg.OutputPath), "Content:", blockSeparator)
	compressed := contentSection(readArtifact(t, fs, compressedCfg.OutputPath), ",Content:")

	require.Equal(t, normal, compressed)
	require.Equal(t, "File:a.txtsomewordswithtabsFile:b/c.md#TitlebodytextFile:b/d/e.txteFile:f.txt", normal)
}

// Expectation: A root that cannot be listed should fail before any output is written.
func Test_Run_MissingRoot_Error(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg := NewConfig("/missing", false, "/out", nil)
	require.Error(t, Run(fs, cfg, nil))

	exists, err := afero.Exists(fs, cfg.OutputPath)
	require.NoError(t, err)
	require.False(t, exists)
}

// Expectation: A failure during the content phase should leave the tree and the blocks written so far.
func Test_Run_PartialArtifact_Error(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt":    "first",
		"/src/blob.bin": "\xff\x00\xfe",
		"/src/c.txt":    "never written",
	})

	cfg := NewConfig("/src", false, "/out", nil)
	require.ErrorIs(t, Run(fs, cfg, nil), ErrNotText)

	require.Equal(t,
		TreeHeader("/src", "├── a.txt\n├── blob.bin\n├── c.txt\n")+FormatBlock("a.txt", "first", false),
		readArtifact(t, fs, cfg.OutputPath))
}

// Expectation: An output file that cannot be created should fail the run.
func Test_Run_CreateFailure_Error(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.txt": "a",
	})

	cfg := NewConfig("/src", false, "/out", nil)
	require.ErrorContains(t, Run(errorFs{fs}, cfg, nil), "simulated create failure")
}
