package coreutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableRow struct {
	Name    string   `col-name:"Command"`
	Aliases []string `col-name:"Aliases"`
	hidden  string
}

func TestPrintTable(t *testing.T) {
	out := &bytes.Buffer{}
	rows := []tableRow{{Name: "build", Aliases: []string{"rollup", "bundle"}, hidden: "secret"}}
	require.NoError(t, PrintTable(out, rows, "Available Commands", "nothing"))
	output := out.String()
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "COMMAND")
	assert.Contains(t, output, "rollup, bundle")
	assert.NotContains(t, output, "secret")
}

func TestPrintTableEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, PrintTable(out, []tableRow{}, "", "No command available"))
	assert.Contains(t, out.String(), "No command available")
	assert.NotContains(t, out.String(), "COMMAND")
}
