package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects output into buffers with colors disabled for stable assertions
func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevNoColor := color.NoColor
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	restore := SetOutput(&stdout, &stderr)
	t.Cleanup(func() {
		restore()
		color.NoColor = prevNoColor
	})
	return &stdout, &stderr
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		_, stderr := capture(t)
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, stderr.String(), "This is a test error")
	})

	t.Run("single suggestion is printed plainly", func(t *testing.T) {
		_, stderr := capture(t)
		err := Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, stderr.String(), "Try this fix")
		assert.NotContains(t, stderr.String(), "Either:")
	})

	t.Run("multiple suggestions are numbered", func(t *testing.T) {
		_, stderr := capture(t)
		err := Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, stderr.String(), "Either:")
		assert.Contains(t, stderr.String(), "  2. Second option")
	})
}

func TestErrorWithContext(t *testing.T) {
	_, stderr := capture(t)
	err := ErrorWithContext("Test Error", "Explanation", map[string]string{"Path": "inventory.dat"}, []string{"Fix it"})
	require.Error(t, err)
	require.Equal(t, "Test Error", err.Error())
	assert.Contains(t, stderr.String(), "  Path: inventory.dat")
}

func TestMessages(t *testing.T) {
	stdout, _ := capture(t)

	Success("Checked out %s\n", "ab-1")
	Warning("Already in stock\n")
	Info("Library has %d books\n", 2)
	Step("Saving\n")

	out := stdout.String()
	assert.Contains(t, out, "✓ Checked out ab-1")
	assert.Contains(t, out, "⚠️  Already in stock")
	assert.Contains(t, out, "Library has 2 books")
	assert.Contains(t, out, "→ Saving")
}
