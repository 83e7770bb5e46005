package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportErrorRendersFailureBox(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("a.yaml: %w", errors.New("no items")))

	out := buf.String()
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "selectkit failed")
	assert.Contains(t, out, "a.yaml: no items")
	assert.Contains(t, out, "selectkit --help")
}

func TestReportErrorCancelledIsOneLine(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errCancelled)

	assert.Equal(t, "Error: selection cancelled\n", buf.String())
}
