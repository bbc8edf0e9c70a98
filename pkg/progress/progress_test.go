package progress

import (
	"bytes"
	"strings"
	"testing"

	"mdfconv/pkg/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHalfway(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, &options.CommonOptions{})

	r.Report(50, 100)

	want := "\r" + strings.Repeat("=", 39) + ">" + strings.Repeat(" ", 40) + " 50 / 100"
	assert.Equal(t, want, out.String())
	assert.False(t, strings.HasSuffix(out.String(), "\n"))
}

func TestReportComplete(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, &options.CommonOptions{})

	r.Report(100, 100)

	want := "\r" + strings.Repeat("=", 79) + " 100 / 100\n"
	assert.Equal(t, want, out.String())
}

func TestReportStart(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, &options.CommonOptions{})

	r.Report(0, 100)

	want := "\r" + ">" + strings.Repeat(" ", 80) + " 0 / 100"
	assert.Equal(t, want, out.String())
}

func TestReportNonInteractiveIsSilent(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, &options.CommonOptions{NonInteractive: true})

	r.Report(50, 100)
	r.Report(100, 100)

	assert.Empty(t, out.String())
}

func TestReportOverwritesPreviousLine(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, &options.CommonOptions{})

	r.Report(25, 100)
	r.Report(50, 100)

	parts := strings.Split(out.String(), "\r")
	require.Len(t, parts, 3)
	assert.Empty(t, parts[0])
	assert.Contains(t, parts[1], " 25 / 100")
	assert.Contains(t, parts[2], " 50 / 100")
}

func TestReportHonorsSharedCommonOptions(t *testing.T) {
	var out bytes.Buffer
	common := &options.CommonOptions{}
	r := NewReporter(&out, common)

	// The resolver flips the flag after the reporter is built.
	common.NonInteractive = true
	r.Report(10, 100)

	assert.Empty(t, out.String())
}
