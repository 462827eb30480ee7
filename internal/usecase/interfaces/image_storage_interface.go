package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrUploadRejected means the image host answered but refused the image
	// (success:false envelope).
	ErrUploadRejected = errors.New("image host rejected the upload")
	// ErrUploadGatewayFailure covers transport errors and non-2xx statuses
	// from the image host.
	ErrUploadGatewayFailure = errors.New("image host upload failed")
)

// UploadResult is the image host's answer for a stored image. Raw keeps the
// provider's full data block (url, display_url, thumbnails, ...) for
// traceability.
type UploadResult struct {
	DisplayURL string          `json:"display_url"`
	URL        string          `json:"url"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// IImageStorage abstracts the third-party image host. The payload is the
// base64-encoded image body, matching the host's form contract.
type IImageStorage interface {
	UploadBase64(ctx context.Context, imageBase64 string) (UploadResult, error)
}
