package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"konfirmasi_pembayaran/internal/adapter/http/dto/response"
	"konfirmasi_pembayaran/internal/usecase"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// UploadHandler proxies base64 image uploads to the image host, keeping the
// host's API key out of the browser.

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadImage handles POST /api/upload-image. The multipart field `image`
// carries the base64-encoded file body, matching the image host's own form
// contract.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	imageBase64 := strings.TrimSpace(c.PostForm("image"))
	if imageBase64 == "" {
		c.JSON(http.StatusBadRequest, response.UploadImageError{Success: false, Error: "No image provided"})
		return
	}
	log.Printf("[upload][handler] upload start payload_len=%d", len(imageBase64))

	res, err := h.usecase.ForwardBase64(c.Request.Context(), imageBase64)
	if err != nil {
		log.Printf("[upload][handler] upload failed err=%v", err)
		switch {
		case errors.Is(err, usecase.ErrProofTooLarge):
			c.JSON(http.StatusBadRequest, response.UploadImageError{
				Success:     false,
				Error:       "Upload failed",
				Message:     response.MessageForCode("PROOF_TOO_LARGE"),
				SupportLink: response.SupportLink,
			})
		case errors.Is(err, interfaces.ErrUploadRejected):
			c.JSON(http.StatusBadRequest, response.UploadImageError{Success: false, Error: "Upload failed"})
		default:
			c.JSON(http.StatusInternalServerError, response.UploadImageError{Success: false, Error: "Failed to upload image"})
		}
		return
	}
	log.Printf("[upload][handler] upload success display_url=%s", res.DisplayURL)

	data := json.RawMessage(res.Raw)
	if len(data) == 0 {
		fallback, _ := json.Marshal(response.UploadImageData{DisplayURL: res.DisplayURL, URL: res.URL})
		data = fallback
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
