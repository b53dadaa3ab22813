package algosparse

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckWarn(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	CheckWarn("Destroy(handle)", StatusSuccess)
	assert.Empty(t, buf.String())

	CheckWarn("Destroy(handle)", StatusInternalError)
	out := buf.String()
	assert.Contains(t, out, "sparse call failed")
	assert.Contains(t, out, "Destroy(handle)")
	assert.Contains(t, out, "SPARSE_STATUS_INTERNAL_ERROR")
	assert.Contains(t, out, "reason=7")
}
