package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

// MaxProofSizeBytes caps transfer-proof uploads at 5MB, matching the image
// host's free-tier limit.
const MaxProofSizeBytes = 5 * 1024 * 1024

var (
	ErrProofEmpty     = errors.New("proof image is empty")
	ErrProofTooLarge  = errors.New("proof image exceeds the 5MB limit")
	ErrProofBadFormat = errors.New("proof image must be PNG or JPEG")
)

// IUploadUseCase validates transfer-proof images and forwards them to the
// image host, keeping the host's API key server-side.

type IUploadUseCase interface {
	ValidateProofFile(fileName, contentType string, size int64) error
	UploadProofImage(ctx context.Context, fileName, contentType string, data []byte) (interfaces.UploadResult, error)
	ForwardBase64(ctx context.Context, imageBase64 string) (interfaces.UploadResult, error)
}

type UploadUseCase struct {
	storage interfaces.IImageStorage
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(storage interfaces.IImageStorage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

// ValidateProofFile applies the format and size rules without touching the
// network, so callers can reject bad files before reading them fully.
func (u *UploadUseCase) ValidateProofFile(fileName, contentType string, size int64) error {
	if size <= 0 {
		return ErrProofEmpty
	}
	if size > MaxProofSizeBytes {
		return ErrProofTooLarge
	}
	if !isAllowedProofFormat(fileName, contentType) {
		return ErrProofBadFormat
	}
	return nil
}

func (u *UploadUseCase) UploadProofImage(ctx context.Context, fileName, contentType string, data []byte) (interfaces.UploadResult, error) {
	if err := u.ValidateProofFile(fileName, contentType, int64(len(data))); err != nil {
		log.Printf("[upload][usecase] rejected file=%s content_type=%s size=%d err=%v", fileName, contentType, len(data), err)
		return interfaces.UploadResult{}, err
	}

	log.Printf("[upload][usecase] upload start file=%s size=%d", fileName, len(data))
	res, err := u.storage.UploadBase64(ctx, base64.StdEncoding.EncodeToString(data))
	if err != nil {
		log.Printf("[upload][usecase] upload failed file=%s err=%v", fileName, err)
		return interfaces.UploadResult{}, err
	}
	log.Printf("[upload][usecase] upload success file=%s display_url=%s", fileName, res.DisplayURL)
	return res, nil
}

// ForwardBase64 relays an already-encoded image to the host on behalf of the
// upload proxy endpoint. The browser validated format client-side; the size
// cap is still enforced on the decoded length.
func (u *UploadUseCase) ForwardBase64(ctx context.Context, imageBase64 string) (interfaces.UploadResult, error) {
	if imageBase64 == "" {
		return interfaces.UploadResult{}, ErrProofEmpty
	}
	if decodedLen := base64.StdEncoding.DecodedLen(len(imageBase64)); decodedLen > MaxProofSizeBytes {
		return interfaces.UploadResult{}, ErrProofTooLarge
	}

	log.Printf("[upload][usecase] forward start payload_len=%d", len(imageBase64))
	res, err := u.storage.UploadBase64(ctx, imageBase64)
	if err != nil {
		log.Printf("[upload][usecase] forward failed err=%v", err)
		return interfaces.UploadResult{}, err
	}
	log.Printf("[upload][usecase] forward success display_url=%s", res.DisplayURL)
	return res, nil
}

// isAllowedProofFormat accepts PNG and JPEG only. The content type wins when
// present; the extension is the fallback for clients that send
// application/octet-stream.
func isAllowedProofFormat(fileName, contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/png", "image/jpeg", "image/jpg":
		return true
	case "", "application/octet-stream":
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".png", ".jpg", ".jpeg":
			return true
		}
	}
	return false
}
