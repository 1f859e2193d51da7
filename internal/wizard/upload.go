package wizard

import (
	"context"
	"io"
	"log"

	"github.com/grubline/grubline/internal/uploads"
)

// UploadImage validates the file locally, sends it to the hosting provider
// and attaches the resulting URL to the image field. A validation failure
// or upload failure leaves the image empty and the other fields untouched;
// the image is optional, so neither blocks saving name/price progress.
//
// Uploads are not cancellable mid-flight. If the wizard was reset or
// closed while the upload ran, the late result is discarded on arrival
// instead of being applied to a field that no longer exists.
func (w *Wizard) UploadImage(ctx context.Context, up uploads.Uploader, name, contentType string, size int64, body io.Reader) error {
	if err := uploads.ValidateImage(contentType, size); err != nil {
		return err
	}

	w.mu.Lock()
	session := w.session
	w.mu.Unlock()

	url, err := up.Upload(ctx, name, contentType, body)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session != session {
		log.Printf("wizard: discarding image upload that finished after the editor closed")
		return nil
	}
	w.image = url
	return nil
}

// Image returns the currently attached image URL, possibly empty.
func (w *Wizard) Image() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.image
}
