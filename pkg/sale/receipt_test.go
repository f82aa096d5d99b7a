package sale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReceiptLine(t *testing.T) {
	line := RenderReceiptLine("Chapati", 2, 150.0, 300.0)

	assert.Contains(t, line, "<td>Chapati</td>")
	assert.Contains(t, line, "<td>2</td>")
	assert.Contains(t, line, "KES 150.00")
	assert.Contains(t, line, "KES 300.00")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(line), "<tr>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "</tr>"))
}

func TestRenderReceiptLineRoundsToTwoDecimals(t *testing.T) {
	line := RenderReceiptLine("Mandazi", 3, 33.333, 99.999)

	assert.Contains(t, line, "KES 33.33")
	assert.Contains(t, line, "KES 100.00")
}
