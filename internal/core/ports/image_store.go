package ports

import "mime/multipart"

// ImageStore persists uploaded sweet images and hands back the public
// reference recorded on the sweet (e.g. "/uploads/sweet-<id>.png").
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}
