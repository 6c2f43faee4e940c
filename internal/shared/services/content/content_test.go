package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStripsMarkup(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "Printer offline", svc.Sanitize("  Printer offline  "))
	assert.Equal(t, "hello", svc.Sanitize(`<script>alert(1)</script>hello`))
	assert.Equal(t, "bold", svc.Sanitize("<b>bold</b>"))
}

func TestRenderSafeHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderSafeHTML("steps:\n\n- restart\n- check **cable**")
	require.NoError(t, err)
	assert.Contains(t, out, "<li>")
	assert.Contains(t, out, "<strong>cable</strong>")

	out, err = svc.RenderSafeHTML(`<script>alert(1)</script>plain`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "plain")
}
