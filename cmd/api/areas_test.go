package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"areapulse/backend-go/internal/services"
)

func TestPrintAreas(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, printAreas(cmd, services.DefaultCatalog()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, lines[1], "Whitechapel")
	assert.Contains(t, lines[1], "0.73")
	assert.Contains(t, lines[8], "Covent Garden")
}
