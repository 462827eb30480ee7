package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"konfirmasi_pembayaran/internal/usecase/interfaces"
	mock_interfaces "konfirmasi_pembayaran/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUploadUseCase_ValidateProofFile(t *testing.T) {
	uc := NewUploadUseCase(nil)

	cases := []struct {
		name        string
		fileName    string
		contentType string
		size        int64
		want        error
	}{
		{"png under limit", "bukti.png", "image/png", 2 * 1024 * 1024, nil},
		{"jpeg at limit", "bukti.jpg", "image/jpeg", MaxProofSizeBytes, nil},
		{"jpg alias content type", "bukti.jpg", "image/jpg", 1024, nil},
		{"octet-stream with png extension", "bukti.PNG", "application/octet-stream", 1024, nil},
		{"no content type with jpeg extension", "bukti.jpeg", "", 1024, nil},
		{"over limit", "bukti.png", "image/png", MaxProofSizeBytes + 1, ErrProofTooLarge},
		{"six megabyte png", "besar.png", "image/png", 6 * 1024 * 1024, ErrProofTooLarge},
		{"gif rejected", "bukti.gif", "image/gif", 1024, ErrProofBadFormat},
		{"pdf rejected", "bukti.pdf", "application/pdf", 1024, ErrProofBadFormat},
		{"octet-stream with gif extension", "bukti.gif", "application/octet-stream", 1024, ErrProofBadFormat},
		{"empty file", "bukti.png", "image/png", 0, ErrProofEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.ValidateProofFile(tc.fileName, tc.contentType, tc.size)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ValidateProofFile(%q, %q, %d) = %v, want %v", tc.fileName, tc.contentType, tc.size, err, tc.want)
			}
		})
	}
}

func TestUploadUseCase_UploadProofImage(t *testing.T) {
	t.Run("rejects before touching the image host", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		uc := NewUploadUseCase(storage)

		_, err := uc.UploadProofImage(context.Background(), "bukti.gif", "image/gif", []byte("xx"))
		if !errors.Is(err, ErrProofBadFormat) {
			t.Fatalf("expected ErrProofBadFormat, got %v", err)
		}
	})

	t.Run("sends base64 of the file body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		uc := NewUploadUseCase(storage)

		data := bytes.Repeat([]byte{0xff, 0xd8, 0xff}, 100)
		storage.EXPECT().
			UploadBase64(gomock.Any(), base64.StdEncoding.EncodeToString(data)).
			Return(interfaces.UploadResult{DisplayURL: "https://i.ibb.co/abc/bukti.jpg", URL: "https://i.ibb.co/full/bukti.jpg"}, nil)

		res, err := uc.UploadProofImage(context.Background(), "bukti.jpg", "image/jpeg", data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DisplayURL != "https://i.ibb.co/abc/bukti.jpg" {
			t.Fatalf("unexpected display url: %s", res.DisplayURL)
		}
	})

	t.Run("host failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		uc := NewUploadUseCase(storage)

		storage.EXPECT().UploadBase64(gomock.Any(), gomock.Any()).Return(interfaces.UploadResult{}, interfaces.ErrUploadRejected)

		_, err := uc.UploadProofImage(context.Background(), "bukti.png", "image/png", []byte("png"))
		if !errors.Is(err, interfaces.ErrUploadRejected) {
			t.Fatalf("expected ErrUploadRejected, got %v", err)
		}
	})
}
