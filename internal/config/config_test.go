package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildbearsoftware/wikify/internal/release"
	goyaml "gopkg.in/yaml.v3"
)

// isolate points the user config at an empty directory and runs the test
// from a fresh working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// load reads configuration with warnings captured by the test.
func load(t *testing.T, projectConfigPath string) (*Configuration, error) {
	t.Helper()
	var warnings bytes.Buffer
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath, WarningWriter: &warnings})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, release.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, release.DefaultTemplates(), cfg.Files)
	assert.Equal(t, "NEWS", cfg.NewsFile)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "md5", cfg.Digest)
	assert.Equal(t, "Stable", cfg.Stability)
	assert.Equal(t, "Whats", cfg.Notes.EndMarker)
	assert.Equal(t, "-----", cfg.Notes.RulePrefix)
	assert.False(t, cfg.Debug)
}

func TestLoad_Priority(t *testing.T) {
	dir := isolate(t)

	userPath, err := UserConfigPath()
	require.NoError(t, err)
	writeFile(t, userPath, "base_url: http://user.example.com/\nstability: Beta\n")
	writeFile(t, filepath.Join(dir, ".wikify.yml"), "base_url: http://project.example.com/\n")

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, "http://project.example.com/", cfg.BaseURL, "project overrides user")
	assert.Equal(t, "Beta", cfg.Stability, "user overrides defaults")

	t.Setenv("WIKIFY_BASE_URL", "http://env.example.com/")
	cfg, err = load(t, "")
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/", cfg.BaseURL, "env overrides project")

	cfg, err = LoadWithOptions(LoadOptions{
		Overrides: map[string]interface{}{"base_url": "http://flag.example.com/"},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com/", cfg.BaseURL, "overrides win")
}

func TestLoad_EnvironmentValues(t *testing.T) {
	isolate(t)
	t.Setenv("WIKIFY_FILES", "a-{{VERSION}}.zip, README")
	t.Setenv("WIKIFY_NOTES__END_MARKER", "Changes")
	t.Setenv("WIKIFY_DEBUG", "true")
	t.Setenv("WIKIFY_DIGEST", "sha256")

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-{{VERSION}}.zip", "README"}, cfg.Files)
	assert.Equal(t, "Changes", cfg.Notes.EndMarker)
	assert.Equal(t, "-----", cfg.Notes.RulePrefix)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sha256", cfg.Digest)
}

func TestLoad_LegacyJSONProjectConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".wikify.json"), `{"news_file": "CHANGES", "digest": "sha1"}`)

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{WarningWriter: &warnings})
	require.NoError(t, err)
	assert.Equal(t, "CHANGES", cfg.NewsFile)
	assert.Equal(t, "sha1", cfg.Digest)
	assert.Contains(t, warnings.String(), "deprecated JSON config")
}

func TestLoad_YAMLWinsOverJSON(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".wikify.yml"), "news_file: NEWS.yml\n")
	writeFile(t, filepath.Join(dir, ".wikify.json"), `{"news_file": "NEWS.json"}`)

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{WarningWriter: &warnings})
	require.NoError(t, err)
	assert.Equal(t, "NEWS.yml", cfg.NewsFile)
	assert.Contains(t, warnings.String(), "ignored")
}

func TestLoad_CustomPath(t *testing.T) {
	dir := isolate(t)
	custom := filepath.Join(dir, "conf", "release.yml")
	writeFile(t, custom, "dir: dist\n")

	cfg, err := load(t, custom)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Dir)

	_, err = load(t, filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		yaml      string
		wantField string
	}{
		"bad digest": {
			yaml:      "digest: crc32\n",
			wantField: "digest",
		},
		"bad url": {
			yaml:      "base_url: not a url\n",
			wantField: "base_url",
		},
		"empty listing": {
			yaml:      "files: []\n",
			wantField: "files",
		},
		"empty end marker": {
			yaml:      "notes:\n  end_marker: \"\"\n",
			wantField: "notes.end_marker",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, ".wikify.yml"), tt.yaml)

			_, err := load(t, "")
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestLoad_YAMLSyntaxError(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".wikify.yml"), "digest: md5\n  news_file: NEWS\n")

	_, err := load(t, "")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Greater(t, ve.Line, 0)
}

func TestValidateYAMLSyntaxFromBytes(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateYAMLSyntaxFromBytes([]byte("  \n"), "x.yml"))
	assert.NoError(t, ValidateYAMLSyntaxFromBytes([]byte("digest: md5\n"), "x.yml"))
	assert.Error(t, ValidateYAMLSyntaxFromBytes([]byte("a: [\n"), "x.yml"))
}

func TestConfiguration_Generator(t *testing.T) {
	isolate(t)
	t.Setenv("WIKIFY_DIGEST", "sha256")
	t.Setenv("WIKIFY_DIR", "dist")

	cfg, err := load(t, "")
	require.NoError(t, err)

	g, err := cfg.Generator()
	require.NoError(t, err)
	assert.Equal(t, release.SHA256, g.Table.Algorithm)
	assert.Equal(t, "dist", g.Table.Dir)
	assert.Equal(t, "NEWS", g.NewsFile)
	assert.Equal(t, "Whats", g.Rules.EndMarker)
	assert.Equal(t, cfg.Files, g.Table.Templates)
}

func TestConfiguration_YAML(t *testing.T) {
	isolate(t)

	cfg, err := load(t, "")
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var round Configuration
	require.NoError(t, goyaml.Unmarshal(out, &round))
	assert.Equal(t, *cfg, round)
	assert.Contains(t, string(out), "base_url: http://fctx.wildbearsoftware.com/static/fctx/download/")
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	t.Parallel()

	var tmpl Configuration
	require.NoError(t, goyaml.Unmarshal([]byte(GetDefaultConfigTemplate()), &tmpl))
	assert.Equal(t, release.DefaultTemplates(), tmpl.Files)
	assert.Equal(t, release.DefaultBaseURL, tmpl.BaseURL)
	assert.Equal(t, "-----", tmpl.Notes.RulePrefix)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	key, value := envTransform("WIKIFY_NEWS_FILE", "CHANGES")
	assert.Equal(t, "news_file", key)
	assert.Equal(t, "CHANGES", value)

	key, value = envTransform("WIKIFY_FILES", "a,,b ")
	assert.Equal(t, "files", key)
	assert.Equal(t, []string{"a", "b"}, value)
}
