package console

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/scottcagno/lphash/pkg/hashmap/linear"
)

// run feeds script to a new console with an empty prompt and returns
// everything it printed
func run(t *testing.T, script string, opts ...Option) (string, *Console) {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(script), &out, append([]Option{WithPrompt("")}, opts...)...)
	require.NoError(t, c.Run())
	return out.String(), c
}

func TestConsole_AddFindDelete(t *testing.T) {
	out, c := run(t, `
add alpha one
insert beta two words
add gamma
find alpha
find beta
find gamma
contains alpha
remove alpha
delete alpha
contains alpha
find alpha
size
`)
	require.Equal(t, strings.Join([]string{
		"alpha = one",
		"beta = two words",
		"gamma = gamma",
		"true",
		"false",
		"alpha not found",
		"size=2 capacity=16",
		"",
	}, "\n"), out)
	require.Equal(t, 2, c.Table().Len())
}

func TestConsole_HashAndIndex(t *testing.T) {
	out, c := run(t, "hash key\nindex key\n", WithCapacity(8))
	want := "key = " + strconv.FormatUint(c.Table().Hash("key"), 10) + "\n" +
		"key = " + strconv.Itoa(c.Table().Index("key")) + "\n"
	require.Equal(t, want, out)
	require.Less(t, c.Table().Index("key"), 8)
}

func TestConsole_PrintAndClear(t *testing.T) {
	out, c := run(t, "add a 1\nadd b 2\nadd c 3\nsize\nclear\nsize\nprint\n", WithCapacity(4))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "size=3 capacity=8", lines[0])
	require.Equal(t, "size=0 capacity=4", lines[1])
	require.Equal(t, []string{"0: <empty>", "1: <empty>", "2: <empty>", "3: <empty>"}, lines[2:])
	require.Equal(t, 0, c.Table().Len())
}

func TestConsole_Eval(t *testing.T) {
	out, _ := run(t, "eval x 5 = ++ 3 2 * +\neval x 2 *\neval y 1 +\neval\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "x 5 = ++ 3 2 * + = 12", lines[0])
	require.Equal(t, "x 2 * = 10", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "error: "), lines[2])
	require.Contains(t, lines[2], "variable y")
	require.Equal(t, "usage: eval <rpn tokens>", lines[3])
}

func TestConsole_ExitStopsReading(t *testing.T) {
	for _, cmd := range []string{"end", "exit", "quit"} {
		out, c := run(t, "add a\n"+cmd+"\nadd b\n")
		require.Empty(t, out)
		require.True(t, c.Table().Contains("a"))
		require.False(t, c.Table().Contains("b"))
	}
}

func TestConsole_InvalidAndUsage(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	out, _ := run(t, "bogus\nfind\n\n   \nadd\n", WithLogger(zap.New(core)))
	require.Equal(t, "Invalid command: bogus\nusage: find <key>\nusage: add <key>\n", out)
	require.Equal(t, 1, logs.FilterMessage("invalid command").Len())
}

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("size\n"), &out)
	require.NoError(t, c.Run())
	require.Equal(t, "Command: size=0 capacity=16\nCommand: ", out.String())
}

func TestConsole_Stats(t *testing.T) {
	out, _ := run(t, "stats\n")
	require.Equal(t, "metrics are disabled\n", out)

	reg := prometheus.NewRegistry()
	m, err := linear.NewMetrics(reg, "lphash")
	require.NoError(t, err)
	out, _ = run(t, "add a\nadd b\nadd a\ndelete b\nstats\n", WithMetrics(m, reg))
	require.Contains(t, out, "lphash_table_inserts_total 2")
	require.Contains(t, out, "lphash_table_updates_total 1")
	require.Contains(t, out, "lphash_table_deletes_total 1")
	require.Contains(t, out, "lphash_table_probe_length_bucket")
}
