package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mouse-blink/uniconv/internal/adapter"
	adaptermocks "github.com/mouse-blink/uniconv/internal/adapter/mocks"
	"github.com/mouse-blink/uniconv/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newConvertCmd(), newListCmd(), newRulesCmd())

	return cmd
}

func executeCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newTestRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_InteractiveLoop(t *testing.T) {
	out, err := executeCommand(t, "Hi\n/set fw\nHi\n/list\n/q\nignored\n", "--no-clipboard", "-c", "dummy")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to ASCII-Converter")
	assert.Contains(t, out, ">>> Hi")
	assert.Contains(t, out, "Using Full Width Encoding...")
	assert.Contains(t, out, ">>> Ｈｉ")
	assert.Contains(t, out, "Available Converters:")
	assert.NotContains(t, out, "ignored")
}

func TestRootCmd_PipedInputHasNoPrompt(t *testing.T) {
	out, err := executeCommand(t, "Hi\n/sb Go\n", "--no-clipboard", "-c", "dummy")
	require.NoError(t, err)

	assert.Contains(t, out, ">>> Hi\n>>> 𝓖𝓸\n")
	assert.NotContains(t, out, "> >>>")
	assert.False(t, strings.HasSuffix(out, "> "), "output ends with a dangling prompt: %q", out)
}

func TestRootCmd_QuietSkipsWelcome(t *testing.T) {
	out, err := executeCommand(t, "Hi\n", "--no-clipboard", "--quiet", "-c", "dummy")
	require.NoError(t, err)

	assert.NotContains(t, out, "Welcome to ASCII-Converter")
	assert.Equal(t, ">>> Hi\n", out)
}

func TestRootCmd_StartingConverterFlag(t *testing.T) {
	out, err := executeCommand(t, "Hi\n", "--no-clipboard", "--converter", "SB")
	require.NoError(t, err)

	assert.Contains(t, out, ">>> 𝓗𝓲")
}

func TestRootCmd_StrictMode(t *testing.T) {
	out, err := executeCommand(t, "Go 2\nGo\n", "--no-clipboard", "--strict", "-c", "fraktur")
	require.NoError(t, err)

	assert.Contains(t, out, "Couldn't convert this line. Certain characters not supported.")
	assert.Contains(t, out, ">>> 𝕲𝖔")
}

func TestRootCmd_UnknownConverter(t *testing.T) {
	_, err := executeCommand(t, "", "--no-clipboard", "-c", "comic-sans")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownConverterType)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, err := executeCommand(t, "", "--no-clipboard", "stray")

	assert.Error(t, err)
}

func TestRootCmd_CopiesToClipboard(t *testing.T) {
	mockClipboard := adaptermocks.NewMockClipboard(t)
	mockClipboard.EXPECT().WriteText("𝓖𝓸").Return(nil).Once()

	originalClipboard := newClipboard
	newClipboard = func(enabled bool) adapter.Clipboard {
		assert.True(t, enabled)
		return mockClipboard
	}
	defer func() { newClipboard = originalClipboard }()

	out, err := executeCommand(t, "/sb Go\n/q\n", "-c", "dummy")
	require.NoError(t, err)

	assert.Contains(t, out, ">>> 𝓖𝓸")
}

func TestRootCmd_NoClipboardFlag(t *testing.T) {
	originalClipboard := newClipboard
	newClipboard = func(enabled bool) adapter.Clipboard {
		assert.False(t, enabled)
		return adapter.NewDisabledClipboard()
	}
	defer func() { newClipboard = originalClipboard }()

	_, err := executeCommand(t, "text\n", "--no-clipboard")
	require.NoError(t, err)
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "uniconv", cmd.Use)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{"converter", "strict", "no-clipboard"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, "q", cmd.Flags().Lookup("quiet").Shorthand)

	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("converter").Shorthand)
}
