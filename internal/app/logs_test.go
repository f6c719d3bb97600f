package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/config"
)

func TestEnvLogs_LastRunOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dexter.log")
	body := strings.Join([]string{
		`{"level":"info","msg":"catalog loaded","run":"old","entities":151}`,
		`{"level":"info","msg":"starting ui","run":"new","theme":"Slate"}`,
		`{"level":"error","msg":"catalog load failed","run":"new","error":"boom"}`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	env := &Env{Config: config.Config{LogFile: path}}

	var out bytes.Buffer
	require.NoError(t, env.Logs(&out, LogsOptions{Lines: 50}))
	require.Equal(t, "INFO  starting ui theme=Slate\nERROR catalog load failed error=boom\n", out.String())

	out.Reset()
	require.NoError(t, env.Logs(&out, LogsOptions{AllRuns: true}))
	require.Equal(t, 3, strings.Count(out.String(), "\n"))

	// The reading process's own entries never count as the last run.
	env.RunID = "new"
	out.Reset()
	require.NoError(t, env.Logs(&out, LogsOptions{}))
	require.Equal(t, "INFO  catalog loaded entities=151\n", out.String())
}

func TestEnvLogs_MissingFile(t *testing.T) {
	env := &Env{Config: config.Config{LogFile: filepath.Join(t.TempDir(), "none.log")}}
	var out bytes.Buffer
	require.NoError(t, env.Logs(&out, LogsOptions{Lines: 10}))
	require.Empty(t, out.String())

	require.Error(t, (&Env{}).Logs(&out, LogsOptions{}))
}
