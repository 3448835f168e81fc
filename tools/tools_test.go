package tools

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/utils/comparison"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoIncrementsHighest(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	d := &Demo{args: []string{"demo", "-iterations", "3", "1", "5", "3"}, out: &out}
	require.NoError(t, d.run())
	assert.Equal(t, "a==1, b==5, c==3\n"+
		"value==6 - a==1, b==6, c==3\n"+
		"value==7 - a==1, b==7, c==3\n"+
		"value==8 - a==1, b==8, c==3\n", out.String())
}

func TestDemoIncrementsLowest(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	d := &Demo{args: []string{"demo", "-lowest", "-iterations", "3", "1", "5", "3"}, out: &out}
	require.NoError(t, d.run())
	assert.Equal(t, "a==1, b==5, c==3\n"+
		"value==2 - a==2, b==5, c==3\n"+
		"value==3 - a==3, b==5, c==3\n"+
		"value==4 - a==4, b==5, c==3\n", out.String())
}

func TestDemoConfig(t *testing.T) {
	defer core.ResetConfig()
	require.NoError(t, core.LoadConfigString("[demo]\niterations = 1\nmode = \"lowest\"\n"))
	var out bytes.Buffer
	d := &Demo{args: []string{"demo", "--", "-7", "0", "7"}, out: &out}
	require.NoError(t, d.run())
	assert.Equal(t, "a==-7, b==0, c==7\nvalue==-6 - a==-6, b==0, c==7\n", out.String())

	core.SetConfig("demo.mode", "sideways")
	d = &Demo{args: []string{"demo", "1", "2", "3"}, out: &out}
	assert.True(t, errors.Is(d.run(), core.ErrBadMode))
}

func TestDemoDefaultIterations(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	d := &Demo{args: []string{"demo", "0", "0", "0"}, out: &out}
	require.NoError(t, d.run())
	assert.Equal(t, 11, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, out.String(), "value==10 - a==10, b==0, c==0\n")
}

func TestDemoArgumentErrors(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	d := &Demo{args: []string{"demo", "1", "2"}, out: &out}
	assert.True(t, errors.Is(d.run(), core.ErrArgumentCount))

	d = &Demo{args: []string{"demo", "1", "2", "3", "4"}, out: &out}
	assert.True(t, errors.Is(d.run(), core.ErrArgumentCount))

	d = &Demo{args: []string{"demo", "1", "two", "3"}, out: &out}
	assert.True(t, errors.Is(d.run(), core.ErrBadLiteral))
	assert.Empty(t, out.String())
}

func TestSelect(t *testing.T) {
	defer core.ResetConfig()
	cases := []struct {
		highest bool
		args    []string
		want    string
	}{
		{true, []string{"0u32", "-2i32"}, "0 (uint32)\n"},
		{false, []string{"0u32", "-2i32"}, "4294967294 (uint32)\n"},
		{true, []string{"0u", "-2"}, "0 (uint)\n"},
		{false, []string{"2u", "0", "7u"}, "0 (uint)\n"},
		{false, []string{"--", "-2", "-1", "-7"}, "-7 (int)\n"},
		{true, []string{"--", "-5i8", "3i16"}, "3 (int16)\n"},
		{true, []string{"42"}, "42 (int)\n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		s := &Select{args: append([]string{"select"}, c.args...), out: &out, highest: c.highest}
		require.NoError(t, s.run())
		assert.Equal(t, c.want, out.String(), "%v highest=%v", c.args, c.highest)
	}
}

func TestSelectErrors(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	s := &Select{args: []string{"lowest"}, out: &out}
	assert.True(t, errors.Is(s.run(), core.ErrArgumentCount))

	s = &Select{args: []string{"lowest", "1", "2q"}, out: &out}
	assert.True(t, errors.Is(s.run(), core.ErrBadLiteral))
}

func TestCompare(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	c := &Compare{args: []string{"compare", "--", "-2", "0u", "-2i8"}, out: &out}
	require.NoError(t, c.run())
	table := out.String()
	assert.Contains(t, table, "0u")
	assert.Contains(t, table, "-2i8")
	assert.Contains(t, table, "<")
	assert.Contains(t, table, ">")
	assert.Contains(t, table, "=")

	assert.Equal(t, "<", relation(mustParse(t, "-2"), mustParse(t, "0u")))
	assert.Equal(t, ">", relation(mustParse(t, "0u"), mustParse(t, "-2")))
	assert.Equal(t, "=", relation(mustParse(t, "-2"), mustParse(t, "-2i8")))
}

func TestCompareErrors(t *testing.T) {
	defer core.ResetConfig()
	var out bytes.Buffer
	c := &Compare{args: []string{"compare", "1"}, out: &out}
	assert.True(t, errors.Is(c.run(), core.ErrArgumentCount))
}

func mustParse(t *testing.T, literal string) comparison.Number {
	n, err := ParseLiteral(literal)
	require.NoError(t, err)
	return n
}

func TestSelectWritesMemoryProfile(t *testing.T) {
	defer core.ResetConfig()
	file := filepath.Join(t.TempDir(), "mem.pprof")
	var out bytes.Buffer
	s := &Select{args: []string{"highest", "-mem-profile", file, "1", "2u8"}, out: &out, highest: true}
	require.NoError(t, s.run())
	assert.Equal(t, "2 (uint64)\n", out.String())
	assert.FileExists(t, file)
}
