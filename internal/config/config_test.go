package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffspm"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingPathReturnsEmptyFile(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoadUnreadablePathIsInputUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.True(t, ffspm.IsKind(err, ffspm.InputUnavailable))
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeYAML(t, `
transactions: tx.txt
neighbors: nbr.txt
output: out.txt
minSup: "0.5"
separator: ","
regionCount: 3
parallelism: 4
`)
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, File{
		Transactions: "tx.txt",
		Neighbors:    "nbr.txt",
		Output:       "out.txt",
		MinSup:       "0.5",
		Separator:    ",",
		RegionCount:  3,
		Parallelism:  4,
	}, f)
}

func TestMergeFlagsWinOverFile(t *testing.T) {
	file := File{Transactions: "file-tx.txt", MinSup: "0.2", Parallelism: 1}
	flags := &Flags{Transactions: "flag-tx.txt", MinSup: "0.5"}

	got := Merge(file, flags)

	assert.Equal(t, "flag-tx.txt", got.Transactions)
	assert.Equal(t, "0.5", got.MinSupRaw)
	assert.Equal(t, 1, got.Parallelism, "unset flag parallelism must not clobber the file value")
}

func TestMergeNilFlagsKeepsFile(t *testing.T) {
	file := File{Transactions: "file-tx.txt", MinSup: "0.2"}
	got := Merge(file, nil)
	assert.Equal(t, "file-tx.txt", got.Transactions)
	assert.Equal(t, "0.2", got.MinSupRaw)
}

func TestValidateRejectsUnsupportedRegionCount(t *testing.T) {
	r := Resolved{MinSupRaw: "0.5", RegionCount: 5}
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, ffspm.IsKind(err, ffspm.InvalidConfig))
}

func TestValidateRejectsNonNumericMinSup(t *testing.T) {
	r := Resolved{MinSupRaw: "not-a-number"}
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, ffspm.IsKind(err, ffspm.InvalidConfig))
}

func TestValidateAcceptsZeroRegionCount(t *testing.T) {
	// regionCount is optional; 0 means "not set", not invalid.
	r := Resolved{MinSupRaw: "0.5", RegionCount: 0}
	assert.NoError(t, r.Validate())
}

func TestResolveMinSupAbsolute(t *testing.T) {
	r := Resolved{MinSupRaw: "2"}
	v, err := r.ResolveMinSup(10)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestResolveMinSupFraction(t *testing.T) {
	r := Resolved{MinSupRaw: "0.25"}
	v, err := r.ResolveMinSup(20)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestResolveMinSupRejectsZeroOrNegative(t *testing.T) {
	for _, raw := range []string{"0", "-1"} {
		r := Resolved{MinSupRaw: raw}
		_, err := r.ResolveMinSup(10)
		require.Error(t, err)
		assert.True(t, ffspm.IsKind(err, ffspm.InvalidConfig))
	}
}

func TestResolveMinSupRejectsUnsatisfiableThreshold(t *testing.T) {
	r := Resolved{MinSupRaw: "100"}
	_, err := r.ResolveMinSup(10) // max possible is 10*3 = 30
	require.Error(t, err)
	assert.True(t, ffspm.IsKind(err, ffspm.InvalidConfig))
}

func TestEffectiveSeparatorDefaultsToTab(t *testing.T) {
	assert.Equal(t, "\t", Resolved{}.EffectiveSeparator())
	assert.Equal(t, ",", Resolved{Separator: ","}.EffectiveSeparator())
}

func TestRegisterFlagsParsesCLI(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-transactions=tx.txt",
		"-minSup=0.4",
		"-parallelism=2",
	}))

	assert.Equal(t, "tx.txt", flags.Transactions)
	assert.Equal(t, "0.4", flags.MinSup)
	assert.Equal(t, 2, flags.Parallelism)
}
