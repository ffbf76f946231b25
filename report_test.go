package pagecopy_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorReport(t *testing.T) {
	t.Parallel()

	t.Run("uses the code and message of an application error", func(t *testing.T) {
		t.Parallel()

		err := pagecopy.Errorf(pagecopy.ENOROWS, "No rows found in the table")

		report := pagecopy.NewErrorReport("keywords", "page.html", err)

		assert.Equal(t, "keywords", report.Action)
		assert.Equal(t, "page.html", report.Target)
		assert.Equal(t, pagecopy.ENOROWS, report.Status)
		assert.Equal(t, "No rows found in the table", report.Message)
		assert.False(t, report.OK())
	})

	t.Run("reports plain errors as internal with their message", func(t *testing.T) {
		t.Parallel()

		report := pagecopy.NewErrorReport("article", "-", errors.New("unexpected EOF"))

		assert.Equal(t, pagecopy.EINTERNAL, report.Status)
		assert.Equal(t, "unexpected EOF", report.Message)
	})
}

func TestReport_Err(t *testing.T) {
	t.Parallel()

	t.Run("returns nil on success", func(t *testing.T) {
		t.Parallel()

		report := &pagecopy.Report{Status: pagecopy.StatusSuccess, Message: "Copied"}

		assert.NoError(t, report.Err())
		assert.True(t, report.OK())
	})

	t.Run("returns coded error on failure", func(t *testing.T) {
		t.Parallel()

		report := &pagecopy.Report{Status: pagecopy.ECLIPBOARD, Message: "permission denied"}

		err := report.Err()

		require.Error(t, err)
		assert.Equal(t, pagecopy.ECLIPBOARD, pagecopy.ErrorCode(err))
		assert.Equal(t, "permission denied", pagecopy.ErrorMessage(err))
	})
}

func TestReport_String(t *testing.T) {
	t.Parallel()

	report := &pagecopy.Report{Status: pagecopy.ENOTABLE, Message: "Could not find the table"}

	assert.Equal(t, "no-table: Could not find the table", report.String())
}
