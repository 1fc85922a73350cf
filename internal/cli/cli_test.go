package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/petal/internal/appearance"
	"github.com/opencode-ai/petal/internal/keychain"
	"github.com/opencode-ai/petal/internal/theme"
)

// setupCLI points the CLI at a private config, keystore and vault.
func setupCLI(t *testing.T, preset string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("PETAL_NON_INTERACTIVE", "1")

	cfgPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("theme:\n  preset: %s\nkeychain:\n  path: %s\nvault:\n  path: %s\nlogging:\n  level: error\n",
		preset, filepath.Join(dir, "keychain.db"), filepath.Join(dir, "vault"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))

	previous := keychain.Standard()
	t.Cleanup(func() {
		keychain.SetStandard(previous)
		configPath, secretGetDefault = "", ""
		secretGetRaw, secretSetJSON = false, false
	})
	configPath = cfgPath
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	secretGetDefault, secretGetRaw, secretSetJSON = "", false, false
	err := rootCmd.Execute()
	return out.String(), err
}

func TestThemeList(t *testing.T) {
	setupCLI(t, "porcelain-tech")

	out, err := runCLI(t, "", "--config", configPath, "theme", "list")
	require.NoError(t, err)

	for _, p := range theme.AllPresets() {
		require.Contains(t, out, p.DisplayName())
	}
	require.Contains(t, out, "*  porcelain-tech")
}

func TestSecretCommandRestoresStandardBackend(t *testing.T) {
	setupCLI(t, "default")

	memory := keychain.NewMemoryBackend()
	keychain.SetStandard(memory)

	_, err := runCLI(t, "", "--config", configPath, "secret", "set", "auth.token", "v")
	require.NoError(t, err)
	require.Same(t, memory, keychain.Standard(), "closed keystore must not stay installed")

	_, err = runCLI(t, "", "--config", configPath, "secret", "get", "auth.token")
	require.NoError(t, err)
	require.Same(t, memory, keychain.Standard())

	_, ok := memory.Accessibility("auth.token")
	require.False(t, ok, "the command wrote to the keystore, not the memory backend")
}

func TestSecretLifecycle(t *testing.T) {
	setupCLI(t, "default")

	out, err := runCLI(t, "", "--config", configPath, "secret", "get", "auth.token", "--default", "none")
	require.NoError(t, err)
	require.Equal(t, "none\n", out)

	out, err = runCLI(t, "s3cret\n", "--config", configPath, "secret", "set", "auth.token")
	require.NoError(t, err)
	require.Contains(t, out, "stored auth.token")

	out, err = runCLI(t, "", "--config", configPath, "secret", "get", "auth.token")
	require.NoError(t, err)
	require.Equal(t, "s3cret\n", out)

	out, err = runCLI(t, "", "--config", configPath, "secret", "set", "app.premium", `{"active":true}`, "--json")
	require.NoError(t, err)
	require.Contains(t, out, "stored app.premium")

	out, err = runCLI(t, "", "--config", configPath, "secret", "get", "app.premium", "--raw")
	require.NoError(t, err)
	require.JSONEq(t, `{"active":true}`, strings.TrimSpace(out))

	out, err = runCLI(t, "", "--config", configPath, "secret", "get", "app.premium", "--default", "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback\n", out, "non-string JSON should fall back for string reads")

	out, err = runCLI(t, "", "--config", configPath, "secret", "list")
	require.NoError(t, err)
	require.Contains(t, out, "auth.token")
	require.Contains(t, out, "when_unlocked_this_device_only")
	require.NotContains(t, out, "yes")

	out, err = runCLI(t, "", "--config", configPath, "secret", "rm", "auth.token")
	require.NoError(t, err)
	require.Contains(t, out, "removed auth.token")

	_, err = runCLI(t, "", "--config", configPath, "secret", "rm", "auth.token")
	require.Error(t, err)
}

func TestSecretSetRejectsInvalidJSON(t *testing.T) {
	setupCLI(t, "default")

	_, err := runCLI(t, "", "--config", configPath, "secret", "set", "k", "{nope", "--json")
	require.Error(t, err)
}

func TestReadSecretValue(t *testing.T) {
	value, err := readSecretValue(strings.NewReader("ignored\n"), &bytes.Buffer{}, []string{"from-arg"})
	require.NoError(t, err)
	require.Equal(t, "from-arg", value)

	value, err = readSecretValue(strings.NewReader("line one\r\nline two\n"), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	require.Equal(t, "line one", value)

	value, err = readSecretValue(strings.NewReader("no newline"), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	require.Equal(t, "no newline", value)

	_, err = readSecretValue(strings.NewReader(""), &bytes.Buffer{}, nil)
	require.Error(t, err)
}

func TestRenderTheme(t *testing.T) {
	th := theme.EditorialGarden()

	var out bytes.Buffer
	require.NoError(t, renderTheme(&out, th, appearance.BuildStyles(th.Tokens)))

	text := out.String()
	require.Contains(t, text, "Editorial Garden")
	require.Contains(t, text, "#243B6B")
	require.Contains(t, text, "title-large")
	require.Contains(t, text, "serif")
	require.Contains(t, text, "4 8 12 16 20 24 32 40 48")
	require.Contains(t, text, "7 11 16 22 32 999")
}

func TestJSONEqual(t *testing.T) {
	require.True(t, jsonEqual([]byte(`{"a":1, "b":2}`), []byte(`{"b":2,"a":1}`)))
	require.False(t, jsonEqual([]byte(`"x"`), []byte(`"y"`)))
	require.False(t, jsonEqual([]byte(`nope`), []byte(`"y"`)))
}
