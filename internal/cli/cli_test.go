package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/bcd"
	"github.com/calebcase/bcd/internal/config"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Keep the user's configuration out of the tests.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, log bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&log)

	err = cmd.Execute()

	return out.String(), log.String(), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		Mark error
		args []string
		out  string
	}

	tcs := []TC{
		{
			Mark: oops.New("encode minimal"),
			args: []string{"encode", "12345"},
			out:  "012345\n",
		},
		{
			Mark: oops.New("encode zero"),
			args: []string{"encode", "0"},
			out:  "00\n",
		},
		{
			Mark: oops.New("encode width"),
			args: []string{"encode", "45", "--bytes", "4"},
			out:  "00000045\n",
		},
		{
			Mark: oops.New("encode wide"),
			args: []string{"encode", "340282366920938463463374607431768211455"},
			out:  "0340282366920938463463374607431768211455\n",
		},
		{
			Mark: oops.New("decode"),
			args: []string{"decode", "1234"},
			out:  "1234\n",
		},
		{
			Mark: oops.New("decode prefixed"),
			args: []string{"decode", "0x00_12_34"},
			out:  "1234\n",
		},
		{
			Mark: oops.New("decode odd"),
			args: []string{"decode", "123"},
			out:  "123\n",
		},
		{
			Mark: oops.New("resize shrink"),
			args: []string{"resize", "1234", "--bytes", "1"},
			out:  "34\n",
		},
		{
			Mark: oops.New("resize grow"),
			args: []string{"resize", "34", "-n", "2"},
			out:  "0034\n",
		},
		{
			Mark: oops.New("pack"),
			args: []string{"pack", "1234", "--bits", "16"},
			out:  "0x1234\n",
		},
		{
			Mark: oops.New("pack default bits"),
			args: []string{"pack", "99"},
			out:  "0x00000099\n",
		},
		{
			Mark: oops.New("unpack"),
			args: []string{"unpack", "0x1234", "--bits", "16"},
			out:  "1234\n",
		},
		{
			Mark: oops.New("unpack 64"),
			args: []string{"unpack", "1844674407370955", "-b", "64"},
			out:  "1844674407370955\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Mark.Error(), func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.out, out, tc.Mark)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	type TC struct {
		Mark  error
		args  []string
		check func(err error) bool
	}

	tcs := []TC{
		{
			Mark:  oops.New("encode overflow"),
			args:  []string{"encode", "100", "--bytes", "1"},
			check: bcd.IsOverflow,
		},
		{
			Mark:  oops.New("encode negative"),
			args:  []string{"encode", "--", "-1"},
			check: bcd.IsOverflow,
		},
		{
			Mark:  oops.New("encode not a number"),
			args:  []string{"encode", "twelve"},
			check: Error.Has,
		},
		{
			Mark:  oops.New("decode invalid nibble"),
			args:  []string{"decode", "af"},
			check: bcd.IsInvalidFormat,
		},
		{
			Mark:  oops.New("decode not hex"),
			args:  []string{"decode", "zz"},
			check: Error.Has,
		},
		{
			Mark:  oops.New("resize invalid nibble"),
			args:  []string{"resize", "1a", "--bytes", "2"},
			check: bcd.IsInvalidFormat,
		},
		{
			Mark:  oops.New("resize negative"),
			args:  []string{"resize", "12", "--bytes", "-1"},
			check: Error.Has,
		},
		{
			Mark:  oops.New("pack overflow"),
			args:  []string{"pack", "100", "--bits", "8"},
			check: bcd.IsOverflow,
		},
		{
			Mark:  oops.New("pack bits"),
			args:  []string{"pack", "1", "--bits", "12"},
			check: Error.Has,
		},
		{
			Mark:  oops.New("pack out of range"),
			args:  []string{"pack", "256", "--bits", "8"},
			check: Error.Has,
		},
		{
			Mark:  oops.New("unpack invalid nibble"),
			args:  []string{"unpack", "0x00af", "--bits", "16"},
			check: bcd.IsInvalidFormat,
		},
		{
			Mark:  oops.New("output"),
			args:  []string{"decode", "12", "--output", "xml"},
			check: config.Error.Has,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Mark.Error(), func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.Error(t, err, tc.Mark)
			require.True(t, tc.check(err), "%+v\n%s", tc.Mark, spew.Sdump(err))
			require.Empty(t, out, tc.Mark)
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	out, _, err := run(t, "resize", "1234", "--bytes", "1", "-o", "yaml")
	require.NoError(t, err)

	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, result{Value: "34", Bytes: 1, Hex: "34", Truncated: true}, r, spew.Sdump(out))

	out, _, err = run(t, "resize", "0034", "--bytes", "1", "-o", "yaml")
	require.NoError(t, err)

	r = result{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, result{Value: "34", Bytes: 1, Hex: "34"}, r, spew.Sdump(out))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// always four bytes wide
		"bytes": 4,
		"output": "yaml",
	}`), 0o600))

	out, _, err := run(t, "encode", "45", "--config", path)
	require.NoError(t, err)

	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, result{Value: "45", Bytes: 4, Hex: "00000045"}, r)

	// Flags win over the file.
	out, _, err = run(t, "encode", "45", "--config", path, "--bytes", "1", "-o", "hex")
	require.NoError(t, err)
	require.Equal(t, "45\n", out)
}

func TestConfigFileMissing(t *testing.T) {
	_, _, err := run(t, "encode", "45", "--config", filepath.Join(t.TempDir(), "nope.jsonc"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerbose(t *testing.T) {
	out, log, err := run(t, "encode", "7", "-v")
	require.NoError(t, err)
	require.Equal(t, "07\n", out)
	require.Contains(t, log, "configuration loaded")
	require.Contains(t, log, "encoded")

	_, log, err = run(t, "encode", "7")
	require.NoError(t, err)
	require.Empty(t, log)
}
