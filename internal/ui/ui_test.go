package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/selectkit/internal/selection"
)

func TestResultRenderKeepsDetailOrder(t *testing.T) {
	out := NewSuccessResult("Selection resolved").
		SetWidth(80).
		AddDetail("Index", "2").
		AddDetail("Label", "Blue").
		AddDetail("Value", `"blue"`).
		Render()

	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "Selection resolved")

	index := strings.Index(out, "Index:")
	label := strings.Index(out, "Label:")
	value := strings.Index(out, "Value:")
	assert.True(t, index < label && label < value, "details out of order:\n%s", out)
}

func TestFailureResult(t *testing.T) {
	out := NewFailureResult("Could not load items", errors.New("boom")).
		SetWidth(80).
		AddHint("check the file extension").
		Render()

	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "Hints:")
	assert.Contains(t, out, "check the file extension")
}

func TestWarningResult(t *testing.T) {
	out := NewWarningResult("No item matched").SetWidth(40).Render()
	assert.Contains(t, out, "WARNING")
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Favourite colour", "selectkit resolve").
		SetWidth(70).
		AddParam("Platform", "ios").
		Render()

	assert.Contains(t, out, "FAVOURITE COLOUR")
	assert.Contains(t, out, "selectkit resolve")
	assert.Contains(t, out, "Platform: ios")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", FormatValue(nil))
	assert.Equal(t, `"1"`, FormatValue("1"))
	assert.Equal(t, "1", FormatValue(1))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "map[id:1]", FormatValue(map[string]any{"id": 1}))
}

func TestRenderItemTable(t *testing.T) {
	items := []selection.Item{
		{Label: "Select an item...", Value: nil},
		{Label: "Red", Value: "red", Key: "r", Color: "#FF0000"},
		{Label: "Blue", Value: "blue", InputLabel: "BLUE"},
	}

	out := RenderItemTable(items, 2, 0)

	assert.Contains(t, out, "LABEL")
	assert.Contains(t, out, "Red")
	assert.Contains(t, out, `"r"`)
	assert.Contains(t, out, "null")
	assert.Contains(t, out, SelectedMarker+" 2")
	assert.NotContains(t, out, SelectedMarker+" 1")
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithWidth(70)

	p.PrintHeader(NewHeader("colours", "selectkit items"))
	p.PrintResult(NewSuccessResult("done"))
	p.PrintTable("table")

	out := buf.String()
	assert.Equal(t, 70, p.Width())
	assert.Contains(t, out, "COLOURS")
	assert.Contains(t, out, "done")
	assert.True(t, strings.HasSuffix(out, "table\n\n"))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Reset preferences", []string{"overwrites config.yaml"})
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed? [y/N]")
			assert.Contains(t, out.String(), "overwrites config.yaml")
		})
	}
}

func TestIsTerminalRejectsNonTerminals(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
