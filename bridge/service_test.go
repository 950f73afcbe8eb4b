package bridge

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/prettier/client"
	"github.com/viant/prettier/client/mock"
	"github.com/viant/prettier/codec"
)

// upperFormatter formats by upper-casing file_content.
func upperFormatter(w http.ResponseWriter, r *http.Request) {
	var properties codec.Properties
	data := new(bytes.Buffer)
	_, _ = data.ReadFrom(r.Body)
	if err := properties.UnmarshalJSON(data.Bytes()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	content, _ := properties.Get(client.PropertyFileContent)
	_, _ = w.Write([]byte(strings.ToUpper(string(content.(codec.String)))))
}

func writeFile(t *testing.T, dir, name, content string) string {
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestService_Run(t *testing.T) {
	sidecar := &mock.Sidecar{FormatHandler: upperFormatter, ConfigOptions: `{"printWidth":50}`}
	server := mock.NewServer(sidecar)
	defer server.Close()
	dir := t.TempDir()
	formatted := writeFile(t, dir, "formatted.ts", "LET X = 1;\n")
	dirty := writeFile(t, dir, "dirty.ts", "let x=1\r\n")
	configPath := writeFile(t, dir, ".prettierrc", "printWidth: 50\n")

	testCases := []struct {
		description string
		options     *Options
		expectOut   string
		expectErr   error
	}{
		{
			description: "print formatted content",
			options:     &Options{ConfigPath: configPath},
			expectOut:   "LET X = 1;\nLET X=1\r\n",
		},
		{
			description: "check lists changed files",
			options:     &Options{Check: true},
			expectOut:   dirty + "\n",
			expectErr:   ErrUnformatted,
		},
	}
	for _, testCase := range testCases {
		testCase.options.Positional.Files = []string{formatted, dirty}
		out := &bytes.Buffer{}
		service := New(testCase.options, client.New(client.WithBaseURL(server.URL)), WithStdout(out))
		err := service.Run(context.Background())
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
		}
		assert.Equal(t, testCase.expectOut, out.String(), testCase.description)
	}

	var formatRequests int
	for _, request := range sidecar.Requests() {
		if request.URI != client.FormatURI {
			continue
		}
		formatRequests++
		properties, err := request.Properties()
		require.NoError(t, err)
		assert.False(t, properties.Has(client.PropertyConfigOptions))
	}
	assert.Equal(t, 4, formatRequests)
}

func TestService_Write(t *testing.T) {
	sidecar := &mock.Sidecar{FormatHandler: upperFormatter}
	server := mock.NewServer(sidecar)
	defer server.Close()
	dir := t.TempDir()
	location := writeFile(t, dir, "app.ts", "const a = 1\n")

	options := &Options{Write: true, Overrides: `{"parser":"typescript"}`}
	options.Positional.Files = []string{location}
	out := &bytes.Buffer{}
	err := New(options, client.New(client.WithBaseURL(server.URL)), WithStdout(out)).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "CONST A = 1\n", string(data))

	properties, err := sidecar.LastRequest().Properties()
	require.NoError(t, err)
	value, ok := properties.Get(client.PropertyConfigOptions)
	require.True(t, ok)
	assert.Equal(t, codec.RawJSON(`{"parser":"typescript"}`), value)
	assert.False(t, properties.Has(client.PropertyResolvedConfigOptions))
}

func TestService_OverridesFromFile(t *testing.T) {
	sidecar := &mock.Sidecar{}
	server := mock.NewServer(sidecar)
	defer server.Close()
	dir := t.TempDir()
	optionsFile := writeFile(t, dir, "options.json", "{\"semi\": false}\n")
	location := writeFile(t, dir, "a.js", "x\n")

	options := &Options{Overrides: "@" + optionsFile}
	options.Positional.Files = []string{location}
	out := &bytes.Buffer{}
	require.NoError(t, New(options, client.New(client.WithBaseURL(server.URL)), WithStdout(out)).Run(context.Background()))
	assert.Equal(t, "x\n", out.String())
	assert.Contains(t, sidecar.LastRequest().Body, `"config_options":{"semi":false}`)
}

func TestService_NullConfigOptions(t *testing.T) {
	sidecar := &mock.Sidecar{ConfigOptions: "null"}
	server := mock.NewServer(sidecar)
	defer server.Close()
	dir := t.TempDir()
	location := writeFile(t, dir, "a.js", "x")

	options := &Options{ConfigPath: filepath.Join(dir, ".prettierrc")}
	options.Positional.Files = []string{location}
	require.NoError(t, New(options, client.New(client.WithBaseURL(server.URL)), WithStdout(&bytes.Buffer{})).Run(context.Background()))
	assert.Equal(t, `{"file_content":"x"}`, sidecar.LastRequest().Body)
}

func TestService_WriteInvalidUTF8(t *testing.T) {
	sidecar := &mock.Sidecar{}
	server := mock.NewServer(sidecar)
	defer server.Close()
	location := writeFile(t, t.TempDir(), "latin1.js", "caf\xe9\n")

	options := &Options{Write: true}
	options.Positional.Files = []string{location}
	err := New(options, client.New(client.WithBaseURL(server.URL))).Run(context.Background())
	var encErr *codec.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, client.PropertyFileContent, encErr.Key)
	assert.Empty(t, sidecar.Requests())

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9\n", string(data))
}

func TestService_Errors(t *testing.T) {
	server := mock.NewServer(&mock.Sidecar{FormatHandler: mock.Respond(http.StatusInternalServerError, "internal error")})
	defer server.Close()
	dir := t.TempDir()
	location := writeFile(t, dir, "a.js", "original")

	options := &Options{Write: true}
	options.Positional.Files = []string{location}
	err := New(options, client.New(client.WithBaseURL(server.URL))).Run(context.Background())
	var requestErr *client.RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusInternalServerError, requestErr.StatusCode)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	options = &Options{Overrides: `[1,2]`}
	options.Positional.Files = []string{location}
	err = New(options, client.New(client.WithBaseURL(server.URL))).Run(context.Background())
	assert.ErrorContains(t, err, "invalid options")
}

func TestService_PrintConfigNotFound(t *testing.T) {
	server := mock.NewServer(&mock.Sidecar{ConfigOptions: "null"})
	defer server.Close()

	options := &Options{ConfigPath: "/repo/.prettierrc", PrintConfig: true}
	out := &bytes.Buffer{}
	require.NoError(t, New(options, client.New(client.WithBaseURL(server.URL)), WithStdout(out)).Run(context.Background()))
	assert.Equal(t, "null\n", out.String())
}

func TestService_PrintConfig(t *testing.T) {
	server := mock.NewServer(&mock.Sidecar{ConfigOptions: `{"printWidth":50,"parser":"typescript"}`})
	defer server.Close()

	options := &Options{ConfigPath: "file:///repo/.prettierrc", PrintConfig: true}
	out := &bytes.Buffer{}
	require.NoError(t, New(options, client.New(client.WithBaseURL(server.URL)), WithStdout(out)).Run(context.Background()))
	assert.Equal(t, "{\n  \"printWidth\": 50,\n  \"parser\": \"typescript\"\n}\n", out.String())
}
