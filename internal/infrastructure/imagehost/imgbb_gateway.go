package imagehost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"konfirmasi_pembayaran/internal/usecase/interfaces"
)

var ErrMissingImgbbAPIKey = errors.New("missing IMGBB_API_KEY")

const (
	defaultUploadURL  = "https://api.imgbb.com/1/upload"
	defaultExpiration = "86400"
	requestTimeout    = 60 * time.Second
)

// ImgbbGateway stores proof images on the imgbb image host and hands back the
// public display URL. Images are uploaded as the base64 form field the host
// expects and expire after a day; the automation workflow snapshots them on
// its side.
type ImgbbGateway struct {
	uploadURL  string
	apiKey     string
	expiration string
	client     *http.Client
}

var _ interfaces.IImageStorage = (*ImgbbGateway)(nil)

func NewImgbbGateway(apiKey string) (*ImgbbGateway, error) {
	return NewImgbbGatewayWithURL(defaultUploadURL, apiKey, defaultExpiration)
}

func NewImgbbGatewayWithURL(uploadURL, apiKey, expiration string) (*ImgbbGateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[upload][gateway] missing IMGBB_API_KEY")
		return nil, ErrMissingImgbbAPIKey
	}
	if uploadURL == "" {
		uploadURL = defaultUploadURL
	}
	if expiration == "" {
		expiration = defaultExpiration
	}
	return &ImgbbGateway{
		uploadURL:  uploadURL,
		apiKey:     apiKey,
		expiration: expiration,
		client:     &http.Client{Timeout: requestTimeout},
	}, nil
}

type imgbbEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type imgbbData struct {
	URL        string `json:"url"`
	DisplayURL string `json:"display_url"`
}

func (g *ImgbbGateway) UploadBase64(ctx context.Context, imageBase64 string) (interfaces.UploadResult, error) {
	log.Printf("[upload][gateway] upload start payload_len=%d", len(imageBase64))

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("image", imageBase64); err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}
	if err := writer.Close(); err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}

	endpoint := fmt.Sprintf("%s?expiration=%s&key=%s", g.uploadURL, url.QueryEscape(g.expiration), url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[upload][gateway] upload transport error err=%v", err)
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[upload][gateway] upload failed status=%d", resp.StatusCode)
		return interfaces.UploadResult{}, fmt.Errorf("%w: upstream status %d", interfaces.ErrUploadGatewayFailure, resp.StatusCode)
	}

	var envelope imgbbEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		log.Printf("[upload][gateway] upload unmarshal failed err=%v", err)
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}

	if !envelope.Success {
		log.Printf("[upload][gateway] upload rejected by host")
		return interfaces.UploadResult{}, interfaces.ErrUploadRejected
	}

	var data imgbbData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		log.Printf("[upload][gateway] upload data block unmarshal failed err=%v", err)
		return interfaces.UploadResult{}, fmt.Errorf("%w: %v", interfaces.ErrUploadGatewayFailure, err)
	}
	if data.DisplayURL == "" {
		log.Printf("[upload][gateway] upload response missing display_url")
		return interfaces.UploadResult{}, interfaces.ErrUploadRejected
	}

	log.Printf("[upload][gateway] upload success display_url=%s", data.DisplayURL)
	return interfaces.UploadResult{
		DisplayURL: data.DisplayURL,
		URL:        data.URL,
		Raw:        envelope.Data,
	}, nil
}
