package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fernandezvara/pwcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(context.Background(), append([]string{"pwcheck"}, args...))
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestScoreCommand_Text(t *testing.T) {
	out, err := run(t, "", "--no-color", "score", "qwerty")
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 10\n")
	assert.Contains(t, out, "Bucket: Weak\n")
	assert.Contains(t, out, "  • "+pwcheck.ReasonBlocklist+"\n")
	assert.Contains(t, out, "  • "+pwcheck.ReasonTip+"\n")
}

func TestScoreCommand_Color(t *testing.T) {
	out, err := run(t, "", "score", "Blue-Fox_Sings 9 Kites!")
	require.NoError(t, err)
	assert.Contains(t, out, ansiGreen+"Very Strong"+ansiReset)
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := run(t, "", "--format", "json", "score", "123456", "Blue-Fox_Sings 9 Kites!")
	require.NoError(t, err)

	var got []pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].BlocklistHit)
	assert.Equal(t, pwcheck.Weak, got[0].Category)
	assert.Equal(t, pwcheck.VeryStrong, got[1].Category)
}

func TestScoreCommand_YAML(t *testing.T) {
	out, err := run(t, "", "--format", "yaml", "score", "dog")
	require.NoError(t, err)

	var got []pwcheck.Detail
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].DictionaryHit)
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := run(t, "", "score")
	assert.Error(t, err)

	_, err = run(t, "", "--format", "xml", "score", "x")
	assert.Error(t, err)

	_, err = run(t, "", "--blocklist", filepath.Join(t.TempDir(), "missing.txt"), "score", "x")
	assert.Error(t, err)
}

func TestScoreCommand_CustomLists(t *testing.T) {
	block := writeTemp(t, "block.txt", "hunter22\n")
	dict := writeTemp(t, "dict.txt", "falcon\n")

	out, err := run(t, "", "--format", "json", "--blocklist", block, "--dictionary", dict, "score", "Hunter22", "falcon", "qwerty")
	require.NoError(t, err)

	var got []pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.True(t, got[0].BlocklistHit)
	assert.True(t, got[1].DictionaryHit)
	assert.False(t, got[2].BlocklistHit)
}

func TestScoreCommand_Config(t *testing.T) {
	cfg := writeTemp(t, "pwcheck.yaml", "min_length: 4\nweak_max: 5\nfair_max: 6\nstrong_max: 7\n")

	out, err := run(t, "", "--format", "json", "--config", cfg, "score", "Xk9$mP2!")
	require.NoError(t, err)

	var got []pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, pwcheck.VeryStrong, got[0].Category)

	bad := writeTemp(t, "bad.yaml", "weak_max: 80\n")
	_, err = run(t, "", "--config", bad, "score", "x")
	assert.Error(t, err)
}

func TestWatchCommand(t *testing.T) {
	out, err := run(t, "q\nqw\nqwerty\n\n", "--format", "json", "watch")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var last pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	assert.True(t, last.BlocklistHit)

	var empty pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &empty))
	assert.Equal(t, []string{pwcheck.ReasonEmpty}, empty.Reasons)
}

func TestBatchCommand(t *testing.T) {
	input := writeTemp(t, "passwords.txt", "password\n\nBlue-Fox_Sings 9 Kites!\nabcabcabcabcabc\n")

	out, err := run(t, "", "--format", "json", "batch", "--workers", "2", input)
	require.NoError(t, err)

	var got []pwcheck.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.True(t, got[0].BlocklistHit)
	assert.Equal(t, pwcheck.VeryStrong, got[1].Category)
	assert.Equal(t, pwcheck.Fair, got[2].Category)

	_, err = run(t, "", "batch")
	assert.Error(t, err)
}

func TestPrinter_NoReasons(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, format: formatText}
	require.NoError(t, p.printOne(pwcheck.Detail{Score: 90, Category: pwcheck.VeryStrong}))
	assert.Contains(t, buf.String(), noWarnings)
}
