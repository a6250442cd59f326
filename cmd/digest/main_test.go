package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/digest/internal/digest"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunHashText(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--text", "abc")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed text: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", stdout)
	assert.Contains(t, stderr, "hashing text")
	assert.Contains(t, stderr, "algorithm=sha256")
}

func TestRunHashTextShortFlags(t *testing.T) {
	code, stdout, _ := runCLI(t, "-t", "abc", "-a", "md5")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed text: 900150983cd24fb0d6963f7d28e17f72\n", stdout)
}

func TestRunHashEmptyText(t *testing.T) {
	code, stdout, _ := runCLI(t, "--text", "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed text: "+emptySHA256+"\n", stdout)
}

func TestRunHashFile(t *testing.T) {
	content := strings.Repeat("the quick brown fox ", 1000)
	path := writeFile(t, "data.txt", content)

	for _, alg := range digest.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			code, fileOut, _ := runCLI(t, "-q", "-f", path, "-a", alg.String())
			require.Equal(t, 0, code)
			code, textOut, _ := runCLI(t, "-q", "-t", content, "-a", alg.String())
			require.Equal(t, 0, code)

			require.True(t, strings.HasPrefix(fileOut, "Hashed file: "))
			assert.Equal(t,
				strings.TrimPrefix(textOut, "Hashed text: "),
				strings.TrimPrefix(fileOut, "Hashed file: "))
		})
	}
}

func TestRunHashEmptyFile(t *testing.T) {
	path := writeFile(t, "empty", "")

	code, stdout, _ := runCLI(t, "--file", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed file: "+emptySHA256+"\n", stdout)
}

func TestRunQuiet(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-q", "-t", "abc")
	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunVerboseLogsStats(t *testing.T) {
	path := writeFile(t, "data.bin", strings.Repeat("z", digest.ChunkSize+1))

	code, _, stderr := runCLI(t, "-v", "-f", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "file hashed")
	assert.Contains(t, stderr, "chunks=2")
}

func TestRunUnknownAlgorithm(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-f", "/nonexistent/file", "-a", "notareal-algo")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unsupported digest algorithm")
	// Rejected while parsing flags, before the file is looked at.
	assert.NotContains(t, stderr, "file not found")
}

func TestRunMissingFile(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-f", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "file not found")
	assert.Contains(t, stderr, "error hashing file")
}

func TestRunMissingFileQuiet(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-q", "-f", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunNoInput(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--text")
	assert.Contains(t, stderr, "no input provided")
}

func TestRunTextAndFileExclusive(t *testing.T) {
	path := writeFile(t, "data.txt", "x")

	code, stdout, stderr := runCLI(t, "-t", "x", "-f", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error:")
}

func TestRunUnexpectedArgs(t *testing.T) {
	code, stdout, _ := runCLI(t, "-t", "x", "extra")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "digest dev\n", stdout)
}

func TestRunConfigDefaults(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", `
[defaults]
algorithm = "md5"
quiet = true
`)

	code, stdout, stderr := runCLI(t, "--config", cfgPath, "-t", "abc")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed text: 900150983cd24fb0d6963f7d28e17f72\n", stdout)
	assert.Empty(t, stderr)

	// Explicit flags win over the file.
	code, stdout, stderr = runCLI(t, "--config", cfgPath, "-t", "abc", "-a", "sha256", "--quiet=false")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hashed text: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", stdout)
	assert.Contains(t, stderr, "hashing text")
}

func TestRunConfigMissing(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "-t", "abc")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "load config")
}

func TestRunLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "digest.log")

	code, _, stderr := runCLI(t, "-q", "--log", logPath, "-t", "abc")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hashing text"`)
}

func TestRunAlgorithms(t *testing.T) {
	code, stdout, _ := runCLI(t, "algorithms")
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(digest.Algorithms()))
	assert.Contains(t, stdout, "sha256       256 bits")
	assert.Contains(t, stdout, "xxh64        64 bits")
}

func TestRunGenDocs(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, "gen-docs", "--dir", dir, "--format", "markdown")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "digest.md"))
	assert.FileExists(t, filepath.Join(dir, "digest_algorithms.md"))

	code, _, stderr = runCLI(t, "gen-docs", "--dir", dir, "--format", "pdf")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown format")
}
