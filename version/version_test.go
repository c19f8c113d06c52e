package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersion(t *testing.T) {
	tests := []struct {
		input      string
		major      uint64
		minor      uint64
		hasPatch   bool
		patch      uint64
		preRelease string
		wantErr    require.ErrorAssertionFunc
	}{
		{input: "1.2", major: 1, minor: 2},
		{input: "1.2.3", major: 1, minor: 2, hasPatch: true, patch: 3},
		{input: "0.0.0", hasPatch: true},
		{input: "10.20.30", major: 10, minor: 20, hasPatch: true, patch: 30},
		{input: "1.2.3-alpha.1", major: 1, minor: 2, hasPatch: true, patch: 3, preRelease: "alpha.1"},
		{input: "1.2-beta", major: 1, minor: 2, preRelease: "beta"},
		{input: "1.2.3-0.3.7", major: 1, minor: 2, hasPatch: true, patch: 3, preRelease: "0.3.7"},
		{input: "v1.0.0", major: 1, hasPatch: true},
		{input: "  1.2.3  ", major: 1, minor: 2, hasPatch: true, patch: 3},
		// build metadata never participates in precedence
		{input: "1.2.3+build.5", major: 1, minor: 2, hasPatch: true, patch: 3},
		{input: "1.2.3-rc.1+build", major: 1, minor: 2, hasPatch: true, patch: 3, preRelease: "rc.1"},
		// malformed input
		{input: "", wantErr: require.Error},
		{input: "1", wantErr: require.Error},
		{input: "1.2.3.4", wantErr: require.Error},
		{input: "1.x.3", wantErr: require.Error},
		{input: "1..2", wantErr: require.Error},
		{input: "1.2.3-", wantErr: require.Error},
		{input: "-1.2", wantErr: require.Error},
		{input: "banana", wantErr: require.Error},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}

			version, err := NewVersion(test.input)
			test.wantErr(t, err)
			if err != nil {
				assert.ErrorContains(t, err, "invalid semantic version")
				return
			}

			assert.Equal(t, test.input, version.Raw)
			assert.Equal(t, test.major, version.Major)
			assert.Equal(t, test.minor, version.Minor)
			if test.hasPatch {
				require.NotNil(t, version.Patch)
				assert.Equal(t, test.patch, *version.Patch)
			} else {
				assert.Nil(t, version.Patch)
			}
			assert.Equal(t, test.preRelease, version.PreRelease)
			assert.Equal(t, test.preRelease != "", version.HasPreRelease())
		})
	}
}

func TestPatchLevelDefault(t *testing.T) {
	// an absent patch level is semantically 0, never "undefined"
	assert.Equal(t, uint64(0), MustVersion("1.2").PatchLevel())
	assert.Equal(t, uint64(7), MustVersion("1.2.7").PatchLevel())
}

func TestMustVersion(t *testing.T) {
	assert.NotPanics(t, func() {
		MustVersion("1.0.0")
	})
	assert.Panics(t, func() {
		MustVersion("not-a-version")
	})
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3-alpha.1", MustVersion("1.2.3-alpha.1").String())
}
