package merge_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sampletools/tsvmerge/internal/join"
	"github.com/sampletools/tsvmerge/internal/merge"
	"github.com/sampletools/tsvmerge/internal/tsv"
)

// Fixtures from the reference scenario: A has samples 1 and 2, B has 2 and 3
const (
	fileA = "SampleID\tX\n1\t10\n2\t20\n"
	fileB = "SampleID\tY\n2\t200\n3\t300\n"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMerge_Inner(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	b := writeInput(t, dir, "b.tsv", fileB)
	out := filepath.Join(dir, "out.tsv")

	summary, err := merge.Merge(merge.Options{
		Inputs: []string{a, b},
		Output: out,
		Mode:   join.Inner,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, summary.InputRows)
	assert.Equal(t, 1, summary.ResultRows)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "SampleID\tX\tY\n2\t20\t200\n", string(data))
}

func TestMerge_Full(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	b := writeInput(t, dir, "b.tsv", fileB)
	out := filepath.Join(dir, "out.tsv")

	_, err := merge.Merge(merge.Options{
		Inputs: []string{a, b},
		Output: out,
		Mode:   join.Full,
	})
	require.NoError(t, err)

	result, err := tsv.ReadTable(out)
	require.NoError(t, err)

	assert.Equal(t, []string{"SampleID", "X", "Y"}, result.Columns)
	assert.Equal(t, []string{"1", "2", "3"}, result.ColumnValues("SampleID"))
	// Sample 1 has no Y, sample 3 has no X
	assert.Equal(t, []string{"10", "20", ""}, result.ColumnValues("X"))
	assert.Equal(t, []string{"", "200", "300"}, result.ColumnValues("Y"))
}

func TestMerge_LeftKeepsFirstFileKeysInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	b := writeInput(t, dir, "b.tsv", fileB)
	out := filepath.Join(dir, "out.tsv")

	_, err := merge.Merge(merge.Options{
		Inputs: []string{a, b},
		Output: out,
		Mode:   join.Left,
	})
	require.NoError(t, err)

	result, err := tsv.ReadTable(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, result.ColumnValues("SampleID"))
}

func TestMerge_LeftIsNotCommutative(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	b := writeInput(t, dir, "b.tsv", fileB)
	outAB := filepath.Join(dir, "ab.tsv")
	outBA := filepath.Join(dir, "ba.tsv")

	_, err := merge.Merge(merge.Options{Inputs: []string{a, b}, Output: outAB, Mode: join.Left})
	require.NoError(t, err)
	_, err = merge.Merge(merge.Options{Inputs: []string{b, a}, Output: outBA, Mode: join.Left})
	require.NoError(t, err)

	ab, err := tsv.ReadTable(outAB)
	require.NoError(t, err)
	ba, err := tsv.ReadTable(outBA)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, ab.ColumnValues("SampleID"))
	assert.Equal(t, []string{"2", "3"}, ba.ColumnValues("SampleID"))
}

func TestMerge_SingleFileIsIdentity(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	out := filepath.Join(dir, "out.tsv")

	for _, mode := range []join.Mode{join.Inner, join.Left, join.Right, join.Full} {
		_, err := merge.Merge(merge.Options{
			Inputs: []string{a},
			Output: out,
			Mode:   mode,
		})
		require.NoError(t, err, mode.String())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, fileA, string(data), "mode %s", mode)
	}
}

func TestMerge_ThreeFileFold(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	b := writeInput(t, dir, "b.tsv", fileB)
	c := writeInput(t, dir, "c.tsv", "SampleID\tZ\n1\tz1\n3\tz3\n4\tz4\n")
	out := filepath.Join(dir, "out.tsv")

	_, err := merge.Merge(merge.Options{
		Inputs: []string{a, b, c},
		Output: out,
		Mode:   join.Full,
	})
	require.NoError(t, err)

	result, err := tsv.ReadTable(out)
	require.NoError(t, err)

	assert.Equal(t, []string{"SampleID", "X", "Y", "Z"}, result.Columns)
	assert.Equal(t, []string{"1", "2", "3", "4"}, result.ColumnValues("SampleID"))
	assert.Equal(t, []string{"z1", "", "z3", "z4"}, result.ColumnValues("Z"))
}

func TestMerge_NoInputs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.tsv")

	_, err := merge.Merge(merge.Options{Output: out, Mode: join.Full})
	require.ErrorIs(t, err, merge.ErrNoInput)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMerge_MissingKeyColumnNamesFile(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.tsv", fileA)
	bad := writeInput(t, dir, "bad.tsv", "ID\tY\n2\t200\n")
	out := filepath.Join(dir, "out.tsv")

	_, err := merge.Merge(merge.Options{
		Inputs: []string{a, bad},
		Output: out,
		Mode:   join.Full,
	})
	require.Error(t, err)

	var missing *merge.MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, bad, missing.Path)
	assert.Equal(t, "SampleID", missing.Column)

	// No partial output
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMerge_UnreadableInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.tsv")

	_, err := merge.Merge(merge.Options{
		Inputs: []string{filepath.Join(dir, "missing.tsv")},
		Output: out,
		Mode:   join.Full,
	})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
