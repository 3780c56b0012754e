package ports

import (
	"context"
	"io"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// Upload é um arquivo recebido para anexar a um ticket
type Upload struct {
	Filename string
	MimeType string
	Size     int64
	Content  io.Reader
}

// AttachmentStore define a interface do serviço de armazenamento de anexos.
// O serviço é opaco para o domínio: recebe o conteúdo e devolve o
// descritor com a URL pública.
type AttachmentStore interface {
	Save(ctx context.Context, upload Upload, uploadedBy string) (entities.Attachment, error)
}
