package e2e_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangmanbot/internal/api"
	"github.com/mcoot/hangmanbot/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	env        []string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "hangman-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hangman")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Keep the developer's environment from leaking into the run
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HANGMAN_") || strings.HasPrefix(kv, "STORAGE_TYPE=") || strings.HasPrefix(kv, "REDIS_URL=") {
			continue
		}
		env = append(env, kv)
	}

	return &cliRunner{
		binaryPath: binaryPath,
		env:        env,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = r.env
	output, err := cmd.Output()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application
	app, err := factory.New(context.Background(), factory.Config{
		AnswersPath: filepath.Join("testdata", "config.yml"),
		Logger:      logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		AnswerService: app.AnswerService,
		Selector:      app.Selector,
		GameRunner:    app.GameRunner,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type roundResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Phrase      string `json:"phrase"`
	Guessed     string `json:"guessed"`
	FinalMasked string `json:"final_masked"`
	FinalHidden int    `json:"final_hidden"`
	Steps       []struct {
		Letter string `json:"letter"`
		Phase  string `json:"phase"`
		Hits   int    `json:"hits"`
	} `json:"steps"`
}

type playResponse struct {
	Rounds       []roundResponse `json:"rounds"`
	TotalAnswers int             `json:"total_answers"`
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func TestCLIPlayLocal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	cli := newCLIRunner(t)

	out, err := cli.run("play", "--answers", filepath.Join("testdata", "config.yml"))
	require.NoError(t, err, out)

	assert.True(t, strings.HasPrefix(out, "Hint: This person is an actor.\n\n___ ______\n=> e\n- 1 e!\n"))
	assert.Contains(t, out, "Would you like to make a guess?\nAnswer: Tom Cruise\n")
	assert.Contains(t, out, "=> a\n- 3 a's!\n")
	assert.Equal(t, 7, strings.Count(out, "Answer: "))
	assert.True(t, strings.HasSuffix(out, "total_answers = 7\n"))

	out, err = cli.run("play", "--answers", filepath.Join("testdata", "config.yml"), "--output", "json")
	require.NoError(t, err, out)

	var result playResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 7, result.TotalAnswers)
	for _, round := range result.Rounds {
		assert.LessOrEqual(t, round.FinalHidden, 3, round.Phrase)
	}
}

func TestCLIPlayIsReproducible(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	cli := newCLIRunner(t)

	first, err := cli.run("play", "--answers", filepath.Join("testdata", "config.yml"))
	require.NoError(t, err)
	second, err := cli.run("play", "--answers", filepath.Join("testdata", "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCLIUnknownCategoryExitsNonZero(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	cli := newCLIRunner(t)

	out, err := cli.run("play", "--answers", filepath.Join("testdata", "unknown.yml"))
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.NotContains(t, out, "total_answers")
}

func TestCLISearchExhaustedExitsNonZero(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	cli := newCLIRunner(t)

	_, err := cli.run("next", "asd", "--guessed", "asd", "--issued", "4")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestCLIAgainstServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t)

	out, err := cli.run("--server", ts.addr, "health")
	require.NoError(t, err, out)
	assert.Equal(t, "Status: ok\n", out)

	out, err = cli.run("--server", ts.addr, "--output", "json", "round", "actors", "Tom Cruise")
	require.NoError(t, err, out)

	var round roundResponse
	require.NoError(t, json.Unmarshal([]byte(out), &round))
	assert.Equal(t, "etaiucm", round.Guessed)
	assert.Equal(t, "T_m C_ui_e", round.FinalMasked)
	require.Len(t, round.Steps, 7)
	assert.Equal(t, "random_search", round.Steps[4].Phase)

	out, err = cli.run("--server", ts.addr, "answers", "list")
	require.NoError(t, err, out)
	assert.True(t, strings.HasSuffix(out, "total_answers = 7\n"))

	out, err = cli.run("--server", ts.addr, "round", "planets", "Mars")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}
