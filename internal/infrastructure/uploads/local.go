package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
)

// LocalStore implementa ports.AttachmentStore sobre um filesystem afero.
// Em produção usa o disco local servido como estático em baseURL; nos
// testes, um filesystem em memória.
type LocalStore struct {
	fs      afero.Fs
	dir     string
	baseURL string
	now     func() time.Time
}

// NewLocalStore cria o armazenamento local de anexos
func NewLocalStore(fs afero.Fs, dir, baseURL string) (*LocalStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{fs: fs, dir: dir, baseURL: baseURL, now: time.Now}, nil
}

// Save grava o conteúdo e devolve o descritor com a URL pública.
// O nome físico leva o timestamp como prefixo para evitar colisões;
// o nome original fica só no descritor.
func (s *LocalStore) Save(_ context.Context, upload ports.Upload, uploadedBy string) (entities.Attachment, error) {
	now := s.now()
	physical := fmt.Sprintf("%d-%s", now.UnixMilli(), filepath.Base(upload.Filename))

	file, err := s.fs.Create(filepath.Join(s.dir, physical))
	if err != nil {
		return entities.Attachment{}, fmt.Errorf("create attachment file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, upload.Content); err != nil {
		return entities.Attachment{}, fmt.Errorf("write attachment: %w", err)
	}

	return entities.Attachment{
		Filename:   upload.Filename,
		URL:        path.Join(s.baseURL, physical),
		MimeType:   upload.MimeType,
		Size:       upload.Size,
		UploadedBy: uploadedBy,
		UploadedAt: now,
	}, nil
}
