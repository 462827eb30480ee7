package response

import (
	"time"

	"konfirmasi_pembayaran/internal/domain/banks"
	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/domain/transfer"
)

// SupportLink is offered alongside upload and webhook errors so customers can
// escalate over WhatsApp.
const SupportLink = "https://wa.me/6285157975587"

type DestinationAccountResponse struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// DestinationOptionsResponse is the pair of company accounts offered for the
// session's bucket.
type DestinationOptionsResponse struct {
	BCA     DestinationAccountResponse `json:"bca"`
	Mandiri DestinationAccountResponse `json:"mandiri"`
}

type ProofResponse struct {
	FileName    string    `json:"fileName"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	DisplayURL  string    `json:"displayUrl"`
	URL         string    `json:"url,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type SessionResponse struct {
	ID      string           `json:"id"`
	Invoice string           `json:"invoice"`
	Data    entities.Invoice `json:"data"`

	State      string `json:"state"`
	ErrorKind  string `json:"errorKind,omitempty"`
	ErrorCode  string `json:"errorCode,omitempty"`
	ErrorMsg   string `json:"errorMessage,omitempty"`
	RetryState string `json:"retryState,omitempty"`

	Bucket             string                      `json:"bucket"`
	DestinationOptions DestinationOptionsResponse  `json:"destinationOptions"`
	Destination        *DestinationAccountResponse `json:"destination,omitempty"`
	SenderBanks        []string                    `json:"senderBanks"`

	Details        *entities.TransferDetails `json:"details,omitempty"`
	Proof          *ProofResponse            `json:"proof,omitempty"`
	UploadProgress int                       `json:"uploadProgress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromSession(s entities.ConfirmationSession) SessionResponse {
	pair := banks.PairFor(banks.Bucket(s.Bucket))
	resp := SessionResponse{
		ID:         s.ID,
		Invoice:    s.Invoice,
		Data:       s.Data,
		State:      string(s.State),
		ErrorKind:  string(s.ErrorKind),
		ErrorCode:  s.ErrorCode,
		RetryState: string(s.RetryState),
		Bucket:     s.Bucket,
		DestinationOptions: DestinationOptionsResponse{
			BCA:     fromDestination(pair.BCA),
			Mandiri: fromDestination(pair.Mandiri),
		},
		SenderBanks:    transfer.SenderBankOptions(),
		Details:        s.Details,
		UploadProgress: s.UploadProgress,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.ErrorCode != "" {
		resp.ErrorMsg = MessageForCode(s.ErrorCode)
	}
	if s.Destination != nil {
		d := fromDestination(*s.Destination)
		resp.Destination = &d
	}
	if s.Proof != nil {
		resp.Proof = &ProofResponse{
			FileName:    s.Proof.FileName,
			Size:        s.Proof.Size,
			ContentType: s.Proof.ContentType,
			DisplayURL:  s.Proof.DisplayURL,
			URL:         s.Proof.URL,
			UploadedAt:  s.Proof.UploadedAt,
		}
	}
	return resp
}

func fromDestination(d entities.DestinationBankAccount) DestinationAccountResponse {
	return DestinationAccountResponse{
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		AccountName:   d.AccountName,
	}
}

// SubmitDetailsResponse pairs the updated session with the amount verdict so
// the form can warn about over- or underpayment without a second call.
type SubmitDetailsResponse struct {
	Session SessionResponse        `json:"session"`
	Verdict transfer.AmountVerdict `json:"verdict"`
}

// ReceiptResponse backs the thank-you view. SubmittedAt comes from the
// persisted confirmation record when one exists; the session's last update is
// the fallback.
type ReceiptResponse struct {
	Invoice        string                      `json:"invoice"`
	ConfirmationID string                      `json:"confirmationId,omitempty"`
	CustomerName   string                      `json:"customerName"`
	Total          int64                       `json:"total"`
	PaymentMethod  string                      `json:"paymentMethod"`
	Destination    *DestinationAccountResponse `json:"destination,omitempty"`
	Details        *entities.TransferDetails   `json:"details,omitempty"`
	ProofURL       string                      `json:"proofUrl,omitempty"`
	SubmittedAt    time.Time                   `json:"submittedAt"`
}

func ReceiptFromSession(s entities.ConfirmationSession, rec entities.Confirmation) ReceiptResponse {
	r := ReceiptResponse{
		Invoice:        s.Invoice,
		ConfirmationID: rec.ID,
		CustomerName:   s.Data.Name,
		Total:          s.Data.Total,
		PaymentMethod:  s.Data.PaymentMethod.Name,
		Details:        s.Details,
		SubmittedAt:    s.UpdatedAt,
	}
	if !rec.SubmittedAt.IsZero() {
		r.SubmittedAt = rec.SubmittedAt
	}
	if s.Destination != nil {
		d := fromDestination(*s.Destination)
		r.Destination = &d
	}
	if s.Proof != nil {
		r.ProofURL = s.Proof.DisplayURL
	}
	return r
}

// UploadImageData mirrors the image host's data block for the proxy endpoint.
type UploadImageData struct {
	DisplayURL string `json:"display_url"`
	URL        string `json:"url"`
}

type UploadImageResponse struct {
	Success bool            `json:"success"`
	Data    UploadImageData `json:"data"`
}

type UploadImageError struct {
	Success     bool   `json:"success"`
	Error       string `json:"error"`
	Message     string `json:"message,omitempty"`
	SupportLink string `json:"supportLink,omitempty"`
}

// FlowError is the error body for session endpoints: a stable code for the
// frontend plus the localized copy and the WhatsApp escalation link.
type FlowError struct {
	Error       string `json:"error"`
	Message     string `json:"message,omitempty"`
	SupportLink string `json:"supportLink,omitempty"`
}

func NewFlowError(code string) FlowError {
	return FlowError{
		Error:       code,
		Message:     MessageForCode(code),
		SupportLink: SupportLink,
	}
}

// errorMessages carries the customer-facing copy per error code, matching the
// wording the store's support team expects.
var errorMessages = map[string]string{
	"PROOF_BAD_FORMAT":       "Format file harus PNG, JPEG, atau JPG",
	"PROOF_TOO_LARGE":        "Ukuran file maksimal 5MB",
	"PROOF_EMPTY":            "File bukti transfer kosong",
	"UPLOAD_FAILED":          "Gagal mengupload gambar",
	"UPLOAD_REJECTED":        "Gagal mengupload gambar",
	"WEBHOOK_NOT_CONFIGURED": "Webhook 'inbound_invoices' belum dikonfigurasi di sistem n8n. Silakan hubungi admin untuk mengaktifkan webhook ini.",
	"WEBHOOK_TEST_MODE":      "Sistem pembayaran dalam mode test. Admin perlu mengklik tombol 'Execute workflow' di n8n terlebih dahulu. Silakan hubungi admin.",
	"WEBHOOK_NOT_FOUND":      "Endpoint pembayaran tidak ditemukan. URL webhook mungkin salah atau tidak aktif. Silakan hubungi admin.",
	"WEBHOOK_SERVER_ERROR":   "Server webhook mengalami error internal. Silakan coba beberapa saat lagi atau hubungi admin.",
	"WEBHOOK_ERROR":          "Terjadi kesalahan saat mengirim data",
	"RATE_LIMIT_EXCEEDED":    "Terlalu banyak permintaan. Silakan coba beberapa saat lagi.",
	"INVOICE_NOT_FOUND":      "Invoice tidak ditemukan. Periksa kembali nomor invoice Anda.",
	"SERVER_ERROR":           "Server sedang mengalami gangguan. Silakan coba beberapa saat lagi.",
	"SESSION_NOT_FOUND":      "Sesi konfirmasi tidak ditemukan. Silakan mulai ulang dari link pembayaran Anda.",
}

// MessageForCode returns the localized copy for an error code, falling back
// to the generic message.
func MessageForCode(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Terjadi kesalahan saat mengirim data"
}
