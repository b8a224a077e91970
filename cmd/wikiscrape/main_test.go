package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/wikiscrape"
	main "github.com/fwojciec/wikiscrape/cmd/wikiscrape"
	"github.com/fwojciec/wikiscrape/mock"
	"github.com/fwojciec/wikiscrape/tty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const babeRuthPage = `<!DOCTYPE html>
<html>
<head><title>Babe Ruth - Wikipedia</title></head>
<body>
<div id="bodyContent">
<p>George Herman "Babe" Ruth was an American professional <a href="/wiki/Baseball">baseball</a> player.</p>
<p>Ruth began his career with the Boston Red Sox.</p>
</div>
</body>
</html>`

const babeRuthIntro = `George Herman "Babe" Ruth was an American professional baseball player.`

// newWiki starts a server that knows a handful of topics.
func newWiki(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /wiki/{topic}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch r.PathValue("topic") {
		case "Babe_Ruth":
			_, _ = w.Write([]byte(babeRuthPage))
		case "Empty_Page":
			_, _ = w.Write([]byte(`<html><body><div>nothing</div></body></html>`))
		case "Unsafe":
			_, _ = w.Write([]byte(`<p>&lt;script&gt;alert(1)&lt;/script&gt;Safe text</p>`))
		case "Blank":
			w.WriteHeader(http.StatusOK)
		case "Broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// newMain returns a Main attached to a fake console and the given server.
func newMain(server *httptest.Server) *main.Main {
	m := main.NewMain()
	m.Interactive = func() bool { return true }
	m.Stdin = strings.NewReader("")
	if server != nil {
		m.Config.URLTemplate = server.URL + "/wiki/%s"
	}
	return m
}

// Story: Console requirement
//
// wikiscrape is an interactive tool. Without a console it refuses to start.

func TestMain_Run_RequiresConsole(t *testing.T) {
	t.Parallel()

	// Given: no console attached
	m := main.NewMain()
	m.Interactive = func() bool { return false }
	var stdout, stderr bytes.Buffer

	// When: running with a valid topic
	err := m.Run(context.Background(), []string{"Babe", "Ruth"}, &stdout, &stderr)

	// Then: the error goes to stderr and nothing is fetched
	require.Error(t, err)
	assert.Equal(t, wikiscrape.ECONSOLE, wikiscrape.ErrorCode(err))
	assert.Equal(t, "Error - must have a console!\n", stderr.String())
	assert.Empty(t, stdout.String())
}

// Story: Help
//
// Any help flag as the first argument prints usage and succeeds, whatever
// follows it.

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-h", "--h", "/h", "-help", "--help", "/help", "-?", "--?", "/?"} {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()

			m := newMain(nil)
			var stdout, stderr bytes.Buffer

			err := m.Run(context.Background(), []string{flag, "Babe", "Ruth"}, &stdout, &stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "wikiscrape")
			assert.Contains(t, stdout.String(), "topic")
			assert.NotContains(t, stdout.String(), babeRuthIntro)
		})
	}
}

func TestMain_Run_HelpOnlyInFirstPosition(t *testing.T) {
	t.Parallel()

	// Given: a help flag after a topic word
	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	// When: running
	err := m.Run(context.Background(), []string{"Babe", "--help"}, &stdout, &stderr)

	// Then: it is part of the topic, which does not exist
	require.Error(t, err)
	assert.Equal(t, "Not found.\n", stdout.String())
}

// Story: Looking up a topic
//
// All three argument syntaxes resolve to the same page, and the first
// paragraph is printed after a blank line.

func TestMain_Run_PrintsIntro(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"Babe", "Ruth"},
		{"Babe Ruth"},
		{"/topic:Babe", "Ruth"},
		{"--topic=Babe Ruth"},
		{"-topic", "Babe", "Ruth"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			m := newMain(newWiki(t))
			var stdout, stderr bytes.Buffer

			err := m.Run(context.Background(), args, &stdout, &stderr)

			require.NoError(t, err)
			assert.Equal(t, "\n"+babeRuthIntro+"\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestMain_Run_NotFound(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"No", "Such", "Topic"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wikiscrape.ENOTFOUND, wikiscrape.ErrorCode(err))
	assert.Equal(t, "Not found.\n", stdout.String())
}

func TestMain_Run_RemoteError(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"Broken"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wikiscrape.EREMOTE, wikiscrape.ErrorCode(err))
	assert.Equal(t, "Error processing request, status=500\n", stdout.String())
	assert.Contains(t, stderr.String(), "fetch")
}

func TestMain_Run_ConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	m := newMain(server)
	server.Close()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"Babe", "Ruth"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wikiscrape.ECONNECT, wikiscrape.ErrorCode(err))
	assert.True(t, strings.HasPrefix(stdout.String(), "Connection error: "))
}

func TestMain_Run_PageWithoutParagraph(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"Empty Page"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, "No introductory paragraph found.\n", stdout.String())
}

func TestMain_Run_BlankPage(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"Blank"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, wikiscrape.ENOTFOUND, wikiscrape.ErrorCode(err))
	assert.Equal(t, "No introductory paragraph found.\n", stdout.String())
}

func TestMain_Run_SanitizesParagraph(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"Unsafe"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "\nSafe text\n", stdout.String())
}

// Story: Prompting
//
// Without a usable topic on the command line, the user is asked for one.

func TestMain_Run_PromptsWithoutArguments(t *testing.T) {
	t.Parallel()

	// Given: the user types a topic after an empty line
	m := newMain(newWiki(t))
	m.Stdin = strings.NewReader("\nBabe Ruth\n")
	var stdout, stderr bytes.Buffer

	// When: running without arguments
	err := m.Run(context.Background(), nil, &stdout, &stderr)

	// Then: the prompt repeats once and the intro follows
	require.NoError(t, err)
	assert.Equal(t, tty.PromptText+tty.PromptText+"\n"+babeRuthIntro+"\n", stdout.String())
}

func TestMain_Run_PromptsForFlagWithoutValue(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"/topic"}, {"--topic="}, {"Babe", ""}} {
		t.Run(strings.Join(args, "|"), func(t *testing.T) {
			t.Parallel()

			var prompted bool
			m := newMain(newWiki(t))
			m.Prompter = &mock.Prompter{
				PromptFn: func(ctx context.Context) (string, error) {
					prompted = true
					return "Babe_Ruth", nil
				},
			}
			var stdout, stderr bytes.Buffer

			err := m.Run(context.Background(), args, &stdout, &stderr)

			require.NoError(t, err)
			assert.True(t, prompted)
			assert.Equal(t, "\n"+babeRuthIntro+"\n", stdout.String())
		})
	}
}

func TestMain_Run_PromptEndOfInput(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, tty.PromptText, stdout.String())
}

func TestMain_Run_PromptFailure(t *testing.T) {
	t.Parallel()

	m := newMain(newWiki(t))
	m.Prompter = &mock.Prompter{
		PromptFn: func(ctx context.Context) (string, error) {
			return "", errors.New("terminal gone")
		},
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, "An error occurred when trying to prompt the user for a topic: terminal gone\n", stdout.String())
}
