package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"socialsim/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() config.Config {
	return config.Config{Prompt: "> ", LogLevel: "error", LogFormat: "text"}
}

func TestRunScenario(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"signup alice",
		"signup bob",
		"login alice",
		"follow bob",
		"login bob",
		"post hello",
		"login alice",
		"feed",
		"exit",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), testConfig(), in, &out))

	got := out.String()
	assert.Contains(t, got, "You now follow bob.")
	assert.Contains(t, got, "Posted with ID 1.")
	assert.Contains(t, got, "--- Feed ---\n[1] bob at ")
	assert.True(t, strings.HasSuffix(got, "> Goodbye!\n"))
}

func TestRunFromInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("signup carol\nusers\n"), 0o600))
	cfg := testConfig()
	cfg.Input = path
	cfg.Prompt = ""
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, strings.NewReader("signup ignored\n"), &out))
	assert.Contains(t, out.String(), "- carol (Followers: 0, Following: 0)")
	assert.NotContains(t, out.String(), "ignored")
}

func TestRunMissingInputFile(t *testing.T) {
	cfg := testConfig()
	cfg.Input = filepath.Join(t.TempDir(), "nope.txt")

	err := run(context.Background(), cfg, strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}

func TestRunBadLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "chatty"

	assert.Error(t, run(context.Background(), cfg, strings.NewReader(""), io.Discard))
}

func TestMetricsServerEndpoints(t *testing.T) {
	addr, stop, err := startMetricsServer("127.0.0.1:0")
	require.NoError(t, err)
	defer stop()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	defer client.CloseIdleConnections()

	resp, err := client.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	resp, err = client.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "login_success_total")
}

func TestMetricsServerBadAddress(t *testing.T) {
	_, _, err := startMetricsServer("not-an-address")
	assert.Error(t, err)
}

func TestRunWithMetricsServer(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsAddr = "127.0.0.1:0"

	require.NoError(t, run(context.Background(), cfg, strings.NewReader("exit\n"), io.Discard))
}

func TestRootCommand(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader("help\nexit\n"), &out)
	cmd.SetArgs([]string{"--prompt=", "--log-level=error"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "Welcome to CLI Social Media! Type 'help' for commands.\n"+
		"Commands: signup [name], login [name], logout, post [text], follow [name], unfollow [name], "+
		"like [post_id], comment [post_id] [comment text], feed, users, exit\n"+
		"Goodbye!\n", out.String())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), io.Discard)
	cmd.SetArgs([]string{"extra"})
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
