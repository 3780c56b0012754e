package uploads

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
)

func TestLocalStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/data/uploads", "/uploads")
	require.NoError(t, err)

	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	t.Run("grava o arquivo e devolve o descritor", func(t *testing.T) {
		att, err := store.Save(context.Background(), ports.Upload{
			Filename: "nota-fiscal.pdf",
			MimeType: "application/pdf",
			Size:     11,
			Content:  strings.NewReader("pdf-content"),
		}, "usr-1")
		require.NoError(t, err)

		assert.Equal(t, "nota-fiscal.pdf", att.Filename)
		assert.Equal(t, "application/pdf", att.MimeType)
		assert.Equal(t, int64(11), att.Size)
		assert.Equal(t, "usr-1", att.UploadedBy)
		assert.Equal(t, fixed, att.UploadedAt)
		assert.True(t, strings.HasPrefix(att.URL, "/uploads/"))
		assert.True(t, strings.HasSuffix(att.URL, "-nota-fiscal.pdf"))

		data, err := afero.ReadFile(fs, "/data/uploads/"+strings.TrimPrefix(att.URL, "/uploads/"))
		require.NoError(t, err)
		assert.Equal(t, "pdf-content", string(data))
	})

	t.Run("descarta componentes de diretório do nome original", func(t *testing.T) {
		att, err := store.Save(context.Background(), ports.Upload{
			Filename: "../../etc/passwd",
			MimeType: "text/plain",
			Size:     4,
			Content:  strings.NewReader("oops"),
		}, "usr-1")
		require.NoError(t, err)

		assert.NotContains(t, att.URL, "..")
		assert.True(t, strings.HasSuffix(att.URL, "-passwd"))
	})
}
