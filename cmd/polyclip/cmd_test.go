package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vatti-sweep/polyclip"
)

const sampleScenario = `
clipType: intersection
fillRule: nonzero
subjects:
  - - [0, 0]
    - [10, 0]
    - [10, 10]
    - [0, 10]
clips:
  - - [5, 5]
    - [15, 5]
    - [15, 15]
    - [5, 15]
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, sampleScenario)
	s, err := loadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "intersection", s.ClipType)
	require.Equal(t, "nonzero", s.FillRule)
	require.Len(t, s.Subjects, 1)
	require.Len(t, s.Clips, 1)
}

func TestScenarioClipTypeAndFillRule(t *testing.T) {
	path := writeScenario(t, sampleScenario)
	s, err := loadScenario(path)
	require.NoError(t, err)

	ct, err := s.clipType()
	require.NoError(t, err)
	require.Equal(t, polyclip.Intersection, ct)

	fr, err := s.fillRule()
	require.NoError(t, err)
	require.Equal(t, polyclip.NonZero, fr)
}

func TestScenarioInvalidClipType(t *testing.T) {
	path := writeScenario(t, "clipType: bogus\nsubjects: [[[0,0]]]\n")
	s, err := loadScenario(path)
	require.NoError(t, err)
	_, err = s.clipType()
	require.ErrorIs(t, err, polyclip.ErrInvalidClipType)
}

func TestScenarioDefaultFillRule(t *testing.T) {
	path := writeScenario(t, "clipType: union\nsubjects: [[[0,0]]]\n")
	s, err := loadScenario(path)
	require.NoError(t, err)
	fr, err := s.fillRule()
	require.NoError(t, err)
	require.Equal(t, polyclip.EvenOdd, fr)
}

func TestScenarioToPaths(t *testing.T) {
	path := writeScenario(t, sampleScenario)
	s, err := loadScenario(path)
	require.NoError(t, err)
	paths := s.toPaths(s.Subjects)
	require.Len(t, paths, 1)
	require.Equal(t, polyclip.Point64{X: 0, Y: 0}, paths[0][0])
	require.Equal(t, polyclip.Point64{X: 10, Y: 0}, paths[0][1])
}
