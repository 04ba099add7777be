package cli

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ids := []string{"3f2a1111", "3f2b2222", "9c001234"}

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr error
	}{
		{name: "unique prefix", prefix: "9c", want: "9c001234"},
		{name: "full id", prefix: "3f2b2222", want: "3f2b2222"},
		{name: "ambiguous", prefix: "3f", wantErr: ErrAmbiguous},
		{name: "no match", prefix: "zz", wantErr: ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(ids, tt.prefix)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDeadline(t *testing.T) {
	none, err := parseDeadline("")
	require.NoError(t, err)
	assert.Nil(t, none)

	got, err := parseDeadline("2026-11-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.November, got.Month())
	assert.Equal(t, 2, got.Day())

	_, err = parseDeadline("whenever")
	assert.Error(t, err)
}

func TestNoteText(t *testing.T) {
	body, ok, err := noteText("# Hi", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "# Hi", body)

	_, ok, err = noteText("", "")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = noteText("", "/does/not/exist.md")
	assert.Error(t, err)
}

func TestNewCmdRoot_LoadRequiresToken(t *testing.T) {
	t.Setenv("NOTECRAFT_TOKEN", "")

	cmd := NewCmdRoot()
	cmd.SetArgs([]string{"notes", "list"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.ErrorIs(t, cmd.Execute(), ErrNoToken)
}
