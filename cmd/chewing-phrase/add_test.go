package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
	"github.com/chenchunyii/Chewing-Editor/internal/testutil"
)

func TestNewAddCommand(t *testing.T) {
	cmd := newAddCommand()

	assert.Equal(t, "add [phrase...]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	clipboardFlag := cmd.Flags().Lookup("clipboard")
	require.NotNil(t, clipboardFlag)
	assert.Equal(t, "false", clipboardFlag.DefValue)

	bopomofoFlag := cmd.Flags().Lookup("bopomofo")
	require.NotNil(t, bopomofoFlag)
	assert.Equal(t, "", bopomofoFlag.DefValue)

	policyFlag := cmd.Flags().Lookup("continue-policy")
	require.NotNil(t, policyFlag)
	assert.Equal(t, "policy", policyFlag.Value.Type())
}

func TestAddCommand_WithArgs(t *testing.T) {
	tmpDir := t.TempDir()
	useConfig(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.CreateDictionary(t, tmpDir, dictionary.Entry{Bopomofo: "ㄓㄨㄥ ㄨㄣˊ", Phrase: "中文"})

	cmd := newAddCommand()
	cmd.SetArgs([]string{"你好", "中文"})
	require.NoError(t, cmd.Execute())

	dict, err := dictionary.NewFileStore(testutil.DictionaryPath(tmpDir)).Load()
	require.NoError(t, err)
	assert.Equal(t, []dictionary.Entry{
		{Bopomofo: "ㄓㄨㄥ ㄨㄣˊ", Phrase: "中文"},
		{Bopomofo: "ㄋㄧˇ ㄏㄠˇ", Phrase: "你好"},
	}, dict.UserPhrase)
}

func TestAddCommand_WithBopomofo(t *testing.T) {
	tmpDir := t.TempDir()
	useConfig(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.CreateDictionary(t, tmpDir)

	cmd := newAddCommand()
	cmd.SetArgs([]string{"--bopomofo", "ㄧㄣˊ ㄏㄤˊ", "銀行"})
	require.NoError(t, cmd.Execute())

	dict, err := dictionary.NewFileStore(testutil.DictionaryPath(tmpDir)).Load()
	require.NoError(t, err)
	assert.Equal(t, []dictionary.Entry{{Bopomofo: "ㄧㄣˊ ㄏㄤˊ", Phrase: "銀行"}}, dict.UserPhrase)
}

func TestAddCommand_BopomofoNeedsOnePhrase(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no phrase", args: []string{"--bopomofo", "ㄧㄣˊ ㄏㄤˊ"}},
		{name: "two phrases", args: []string{"--bopomofo", "ㄧㄣˊ ㄏㄤˊ", "銀行", "你好"}},
		{name: "with clipboard", args: []string{"--bopomofo", "ㄧㄣˊ ㄏㄤˊ", "--clipboard", "銀行"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newAddCommand()
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--bopomofo needs exactly one phrase argument")
		})
	}
}

func TestAddCommand_InvalidPolicy(t *testing.T) {
	cmd := newAddCommand()
	cmd.SetArgs([]string{"--continue-policy", "never", "你好"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown continue policy")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single line", text: "你好", want: []string{"你好"}},
		{name: "keeps spaces and drops blank lines", text: " 你好 \r\n\n \t\n中文\n", want: []string{" 你好 ", "中文"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.text))
		})
	}
}
