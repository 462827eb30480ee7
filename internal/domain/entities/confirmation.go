package entities

import (
	"encoding/json"
	"time"
)

// SessionState is the position of a confirmation session in the submission
// pipeline. Sessions only exist after a successful invoice fetch, so
// awaiting_invoice never appears on a stored session; it anchors the
// transition table as the conceptual start state.
type SessionState string

const (
	StateAwaitingInvoice     SessionState = "awaiting_invoice"
	StateAwaitingDestination SessionState = "awaiting_destination"
	StateAwaitingDetails     SessionState = "awaiting_details"
	StateAwaitingProof       SessionState = "awaiting_proof"
	StateUploading           SessionState = "uploading"
	StateAwaitingSubmit      SessionState = "awaiting_submit"
	StateSubmitting          SessionState = "submitting"
	StateDone                SessionState = "done"
	StateErrored             SessionState = "errored"
)

// ErrorKind classifies a failed session step.
type ErrorKind string

const (
	ErrorKindInvoice    ErrorKind = "invoice_error"
	ErrorKindValidation ErrorKind = "validation_error"
	ErrorKindUpload     ErrorKind = "upload_error"
	ErrorKindWebhook    ErrorKind = "webhook_error"
)

// AllowedTransitions defines the legal pipeline moves. The key is the current
// state, the value the set of states reachable from it. Every non-terminal
// state may additionally move to errored. Re-entrant steps (re-selecting the
// destination, correcting details) appear as self-loops.
var AllowedTransitions = map[SessionState][]SessionState{
	StateAwaitingInvoice:     {StateAwaitingDestination, StateErrored},
	StateAwaitingDestination: {StateAwaitingDetails, StateErrored},
	StateAwaitingDetails:     {StateAwaitingDetails, StateAwaitingProof, StateErrored},
	StateAwaitingProof:       {StateAwaitingProof, StateUploading, StateErrored},
	StateUploading:           {StateAwaitingSubmit, StateErrored},
	StateAwaitingSubmit:      {StateSubmitting, StateUploading, StateErrored},
	StateSubmitting:          {StateDone, StateErrored},
	StateErrored:             {StateUploading, StateSubmitting, StateAwaitingSubmit},
	StateDone:                {},
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to SessionState) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UploadedProof is the transfer-proof image after a successful upload to the
// image host. DisplayURL is what goes into the confirmation payload; Raw keeps
// the full image-host response block for traceability.
type UploadedProof struct {
	FileName    string          `json:"fileName"`
	Size        int64           `json:"size"`
	ContentType string          `json:"contentType"`
	DisplayURL  string          `json:"displayUrl"`
	URL         string          `json:"url"`
	Raw         json.RawMessage `json:"raw,omitempty"`
	UploadedAt  time.Time       `json:"uploadedAt"`
}

// ConfirmationSession is the explicit context object threading one customer's
// confirmation flow through the pipeline. It replaces the ambient
// browser-local slot of the previous rendition: written on invoice fetch,
// read by every later step and by the thank-you view, last-writer-wins.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice-index): invoice
type ConfirmationSession struct {
	ID      string  `json:"id"`
	Invoice string  `json:"invoice"`
	Data    Invoice `json:"data"`

	State      SessionState `json:"state"`
	ErrorKind  ErrorKind    `json:"errorKind,omitempty"`
	ErrorCode  string       `json:"errorCode,omitempty"`
	RetryState SessionState `json:"retryState,omitempty"`

	Bucket      string                  `json:"bucket"`
	Destination *DestinationBankAccount `json:"destination,omitempty"`
	Details     *TransferDetails        `json:"details,omitempty"`
	Proof       *UploadedProof          `json:"proof,omitempty"`

	// UploadProgress is a monotonically increasing percentage, forced to 100
	// once the image host responds.
	UploadProgress int `json:"uploadProgress"`

	// ConfirmationID links to the persisted Confirmation once the webhook has
	// accepted the submission.
	ConfirmationID string `json:"confirmationId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarkErrored records a step failure without losing where the pipeline was:
// RetryState is the state to re-enter when the customer retries.
func (s *ConfirmationSession) MarkErrored(kind ErrorKind, code string, retry SessionState) {
	s.State = StateErrored
	s.ErrorKind = kind
	s.ErrorCode = code
	s.RetryState = retry
}

// ClearError resets error bookkeeping when a step is re-attempted.
func (s *ConfirmationSession) ClearError() {
	s.ErrorKind = ""
	s.ErrorCode = ""
	s.RetryState = ""
}

// PayloadCustomer is the customer block of the confirmation payload.
type PayloadCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PayloadProduct is a confirmation line item with its computed total.
type PayloadProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
	Total int64  `json:"total"`
}

// PayloadTransferDetails mirrors TransferDetails minus the destination, as the
// automation workflow expects it.
type PayloadTransferDetails struct {
	CustomerName   string `json:"customerName"`
	AccountNumber  string `json:"accountNumber"`
	SenderBank     string `json:"senderBank"`
	TransferDate   string `json:"transferDate"`
	TransferTime   string `json:"transferTime"`
	TransferAmount int64  `json:"transferAmount"`
	Notes          string `json:"notes"`
}

// ConfirmationPayload is the final record POSTed to the automation webhook.
// It can only be assembled once the invoice, a complete TransferDetails and an
// uploaded proof with a non-empty display URL all exist.
type ConfirmationPayload struct {
	Invoice         string                 `json:"invoice"`
	Customer        PayloadCustomer        `json:"customer"`
	Products        []PayloadProduct       `json:"products"`
	Total           int64                  `json:"total"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TransferDetails PayloadTransferDetails `json:"transferDetails"`
	PaymentProof    string                 `json:"paymentProof"`
	SubmittedAt     string                 `json:"submittedAt"`
}

// Confirmation is the persisted record of a successfully submitted payload.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice-index): invoice
type Confirmation struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"session_id"`
	Invoice     string          `json:"invoice"`
	SubmittedAt time.Time       `json:"submitted_at"`
	PayloadRaw  json.RawMessage `json:"payload_raw,omitempty"`
}
