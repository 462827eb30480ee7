package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"konfirmasi_pembayaran/internal/domain/banks"
	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/domain/transfer"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound        = errors.New("confirmation session not found")
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrInvalidDestinationBank = errors.New("destination bank must be bca or mandiri")
	ErrIncompleteDetails      = errors.New("transfer details are incomplete")
	ErrInvalidSessionState    = errors.New("operation not allowed in the current session state")
	ErrUploadInFlight         = errors.New("an upload is already in progress for this session")
	ErrSubmitPreconditions    = errors.New("session is missing invoice, details or proof")
	ErrReceiptNotReady        = errors.New("confirmation has not been submitted yet")
)

// Error codes stored on the session when a step fails. The frontend keys its
// retry copy off these.
const (
	codeProofTooLarge   = "PROOF_TOO_LARGE"
	codeProofBadFormat  = "PROOF_BAD_FORMAT"
	codeProofEmpty      = "PROOF_EMPTY"
	codeUploadRejected  = "UPLOAD_REJECTED"
	codeUploadFailed    = "UPLOAD_FAILED"
	codeWebhookNotConf  = "WEBHOOK_NOT_CONFIGURED"
	codeWebhookTestMode = "WEBHOOK_TEST_MODE"
	codeWebhookNotFound = "WEBHOOK_NOT_FOUND"
	codeWebhookServer   = "WEBHOOK_SERVER_ERROR"
	codeWebhookGeneric  = "WEBHOOK_ERROR"
)

// IConfirmationUseCase drives a payment-confirmation session through the
// pipeline:
//
//	awaiting_destination -> awaiting_details -> awaiting_proof ->
//	uploading -> awaiting_submit -> submitting -> done
//
// A failed upload or webhook call parks the session in errored with the state
// to re-enter on retry; only a missing session is unrecoverable.

type IConfirmationUseCase interface {
	StartSession(ctx context.Context, invoiceParam string) (entities.ConfirmationSession, error)
	GetSession(ctx context.Context, id string) (entities.ConfirmationSession, error)
	SelectDestination(ctx context.Context, id, bank string) (entities.ConfirmationSession, error)
	SubmitDetails(ctx context.Context, id string, d entities.TransferDetails) (entities.ConfirmationSession, transfer.AmountVerdict, error)
	UploadProof(ctx context.Context, id, fileName, contentType string, data []byte) (entities.ConfirmationSession, error)
	Submit(ctx context.Context, id string) (entities.ConfirmationSession, error)
	Receipt(ctx context.Context, id string) (entities.ConfirmationSession, entities.Confirmation, error)
}

type ConfirmationUseCase struct {
	sessions      interfaces.ISessionRepository
	confirmations interfaces.IConfirmationRepository
	invoices      IInvoiceUseCase
	uploads       IUploadUseCase
	webhook       interfaces.IConfirmationWebhook

	progress *progressTracker
}

var _ IConfirmationUseCase = (*ConfirmationUseCase)(nil)

func NewConfirmationUseCase(
	sessions interfaces.ISessionRepository,
	confirmations interfaces.IConfirmationRepository,
	invoices IInvoiceUseCase,
	uploads IUploadUseCase,
	webhook interfaces.IConfirmationWebhook,
) *ConfirmationUseCase {
	return &ConfirmationUseCase{
		sessions:      sessions,
		confirmations: confirmations,
		invoices:      invoices,
		uploads:       uploads,
		webhook:       webhook,
		progress:      newProgressTracker(),
	}
}

// StartSession fetches the invoice and opens a session positioned at the
// destination-selection step. Gateway errors pass through untouched so the
// handler can map them to the upstream status codes. Reopening the payment
// link for an invoice with an unfinished session resumes that session instead
// of starting over.
func (u *ConfirmationUseCase) StartSession(ctx context.Context, invoiceParam string) (entities.ConfirmationSession, error) {
	inv, _, err := u.invoices.Fetch(ctx, invoiceParam)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}

	existing, err := u.sessions.GetByInvoice(ctx, inv.Invoice)
	if err != nil {
		log.Printf("[confirmation][usecase] session lookup failed invoice=%s err=%v", inv.Invoice, err)
	} else if existing.ID != "" && existing.State != entities.StateDone {
		log.Printf("[confirmation][usecase] session resumed id=%s invoice=%s state=%s", existing.ID, existing.Invoice, existing.State)
		return existing, nil
	}

	now := time.Now().UTC()
	s := entities.ConfirmationSession{
		ID:        uuid.NewString(),
		Invoice:   inv.Invoice,
		Data:      inv,
		State:     entities.StateAwaitingDestination,
		Bucket:    string(banks.ResolveBucket(inv.FirstProduct())),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		log.Printf("[confirmation][usecase] session create failed invoice=%s err=%v", inv.Invoice, err)
		return entities.ConfirmationSession{}, err
	}
	log.Printf("[confirmation][usecase] session started id=%s invoice=%s bucket=%s", created.ID, created.Invoice, created.Bucket)
	return created, nil
}

func (u *ConfirmationUseCase) GetSession(ctx context.Context, id string) (entities.ConfirmationSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	// While an upload is in flight the live progress lives in memory, not in
	// the stored item.
	if s.State == entities.StateUploading {
		if p, ok := u.progress.get(s.ID); ok {
			s.UploadProgress = p
		}
	}
	return s, nil
}

// SelectDestination picks BCA or Mandiri out of the bucket the session's
// first product resolved to. Re-selecting while still filling in details is
// allowed.
func (u *ConfirmationUseCase) SelectDestination(ctx context.Context, id, bank string) (entities.ConfirmationSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	if !entities.CanTransition(s.State, entities.StateAwaitingDetails) {
		log.Printf("[confirmation][usecase] select-destination rejected id=%s state=%s", s.ID, s.State)
		return entities.ConfirmationSession{}, ErrInvalidSessionState
	}

	pair := banks.PairFor(banks.Bucket(s.Bucket))
	var dest entities.DestinationBankAccount
	switch strings.ToLower(strings.TrimSpace(bank)) {
	case "bca":
		dest = pair.BCA
	case "mandiri":
		dest = pair.Mandiri
	default:
		return entities.ConfirmationSession{}, ErrInvalidDestinationBank
	}

	s.Destination = &dest
	s.State = entities.StateAwaitingDetails
	s.UpdatedAt = time.Now().UTC()
	saved, err := u.sessions.Save(ctx, s)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	log.Printf("[confirmation][usecase] destination selected id=%s bank=%s account=%s", saved.ID, dest.BankName, dest.AccountNumber)
	return saved, nil
}

// SubmitDetails stores the transfer form and classifies the entered amount
// against the billed total. Over- and underpayment produce a verdict but do
// not block the pipeline; the customer decides whether to correct.
func (u *ConfirmationUseCase) SubmitDetails(ctx context.Context, id string, d entities.TransferDetails) (entities.ConfirmationSession, transfer.AmountVerdict, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, transfer.AmountVerdict{}, err
	}
	if !entities.CanTransition(s.State, entities.StateAwaitingProof) {
		log.Printf("[confirmation][usecase] submit-details rejected id=%s state=%s", s.ID, s.State)
		return entities.ConfirmationSession{}, transfer.AmountVerdict{}, ErrInvalidSessionState
	}
	if s.Destination == nil || s.Destination.IsZero() {
		return entities.ConfirmationSession{}, transfer.AmountVerdict{}, ErrInvalidSessionState
	}

	d.DestinationBank = s.Destination
	if !d.Complete() {
		log.Printf("[confirmation][usecase] submit-details incomplete id=%s", s.ID)
		return entities.ConfirmationSession{}, transfer.AmountVerdict{}, ErrIncompleteDetails
	}

	verdict := transfer.ClassifyAmount(d.TransferAmount, s.Data.Total)
	s.Details = &d
	s.State = entities.StateAwaitingProof
	s.UpdatedAt = time.Now().UTC()
	saved, err := u.sessions.Save(ctx, s)
	if err != nil {
		return entities.ConfirmationSession{}, transfer.AmountVerdict{}, err
	}
	log.Printf("[confirmation][usecase] details accepted id=%s amount=%d verdict=%s", saved.ID, d.TransferAmount, verdict.Type)
	return saved, verdict, nil
}

// UploadProof pushes the proof image to the image host. File validation
// failures annotate the session without moving it; a host failure parks the
// session in errored with uploading as the retry state.
func (u *ConfirmationUseCase) UploadProof(ctx context.Context, id, fileName, contentType string, data []byte) (entities.ConfirmationSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	if s.State == entities.StateUploading {
		return entities.ConfirmationSession{}, ErrUploadInFlight
	}
	if !uploadAllowedFrom(s) {
		log.Printf("[confirmation][usecase] upload rejected id=%s state=%s", s.ID, s.State)
		return entities.ConfirmationSession{}, ErrInvalidSessionState
	}

	if err := u.uploads.ValidateProofFile(fileName, contentType, int64(len(data))); err != nil {
		s.ErrorKind = entities.ErrorKindValidation
		s.ErrorCode = proofValidationCode(err)
		s.UpdatedAt = time.Now().UTC()
		if _, saveErr := u.sessions.Save(ctx, s); saveErr != nil {
			log.Printf("[confirmation][usecase] session save failed id=%s err=%v", s.ID, saveErr)
		}
		return entities.ConfirmationSession{}, err
	}

	s.ClearError()
	s.State = entities.StateUploading
	s.UploadProgress = 0
	s.UpdatedAt = time.Now().UTC()
	if s, err = u.sessions.Save(ctx, s); err != nil {
		return entities.ConfirmationSession{}, err
	}

	stop := u.progress.begin(s.ID)
	res, err := u.uploads.UploadProofImage(ctx, fileName, contentType, data)
	stop()
	u.progress.drop(s.ID)

	if err != nil {
		code := codeUploadFailed
		if errors.Is(err, interfaces.ErrUploadRejected) {
			code = codeUploadRejected
		}
		s.MarkErrored(entities.ErrorKindUpload, code, entities.StateUploading)
		s.UploadProgress = 0
		s.UpdatedAt = time.Now().UTC()
		if _, saveErr := u.sessions.Save(ctx, s); saveErr != nil {
			log.Printf("[confirmation][usecase] session save failed id=%s err=%v", s.ID, saveErr)
		}
		return entities.ConfirmationSession{}, err
	}

	s.Proof = &entities.UploadedProof{
		FileName:    fileName,
		Size:        int64(len(data)),
		ContentType: contentType,
		DisplayURL:  res.DisplayURL,
		URL:         res.URL,
		Raw:         res.Raw,
		UploadedAt:  time.Now().UTC(),
	}
	s.ClearError()
	s.State = entities.StateAwaitingSubmit
	s.UploadProgress = 100
	s.UpdatedAt = time.Now().UTC()
	saved, err := u.sessions.Save(ctx, s)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	log.Printf("[confirmation][usecase] proof uploaded id=%s file=%s display_url=%s", saved.ID, fileName, res.DisplayURL)
	return saved, nil
}

// Submit assembles the confirmation payload and delivers it to the
// automation webhook. The payload requires the invoice, complete details and
// an uploaded proof; anything less is a programming error on the client's
// part and gets rejected up front.
func (u *ConfirmationUseCase) Submit(ctx context.Context, id string) (entities.ConfirmationSession, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	if !submitAllowedFrom(s) {
		log.Printf("[confirmation][usecase] submit rejected id=%s state=%s", s.ID, s.State)
		return entities.ConfirmationSession{}, ErrInvalidSessionState
	}
	if s.Invoice == "" || s.Details == nil || !s.Details.Complete() || s.Proof == nil || s.Proof.DisplayURL == "" {
		log.Printf("[confirmation][usecase] submit preconditions failed id=%s", s.ID)
		return entities.ConfirmationSession{}, ErrSubmitPreconditions
	}

	s.ClearError()
	s.State = entities.StateSubmitting
	s.UpdatedAt = time.Now().UTC()
	if s, err = u.sessions.Save(ctx, s); err != nil {
		return entities.ConfirmationSession{}, err
	}

	submittedAt := time.Now().UTC()
	payload := buildConfirmationPayload(s, submittedAt)

	log.Printf("[confirmation][usecase] webhook send id=%s invoice=%s", s.ID, s.Invoice)
	if err := u.webhook.Send(ctx, payload); err != nil {
		s.MarkErrored(entities.ErrorKindWebhook, webhookErrorCode(err), entities.StateSubmitting)
		s.UpdatedAt = time.Now().UTC()
		if _, saveErr := u.sessions.Save(ctx, s); saveErr != nil {
			log.Printf("[confirmation][usecase] session save failed id=%s err=%v", s.ID, saveErr)
		}
		log.Printf("[confirmation][usecase] webhook failed id=%s code=%s err=%v", s.ID, s.ErrorCode, err)
		return entities.ConfirmationSession{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	c := entities.Confirmation{
		ID:          uuid.NewString(),
		SessionID:   s.ID,
		Invoice:     s.Invoice,
		SubmittedAt: submittedAt,
		PayloadRaw:  raw,
	}
	if _, err := u.confirmations.Create(ctx, c); err != nil {
		// The webhook has already accepted the confirmation; losing the local
		// record is logged but does not fail the customer's submission.
		log.Printf("[confirmation][usecase] confirmation record create failed id=%s err=%v", s.ID, err)
	} else {
		s.ConfirmationID = c.ID
	}

	s.State = entities.StateDone
	s.UpdatedAt = time.Now().UTC()
	saved, err := u.sessions.Save(ctx, s)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	log.Printf("[confirmation][usecase] submit success id=%s invoice=%s confirmation_id=%s", saved.ID, saved.Invoice, c.ID)
	return saved, nil
}

// Receipt returns the finished session backing the thank-you view, together
// with the persisted confirmation record when one was written. A session that
// never reached done has no receipt; a missing session is the one
// unrecoverable condition in the flow.
func (u *ConfirmationUseCase) Receipt(ctx context.Context, id string) (entities.ConfirmationSession, entities.Confirmation, error) {
	s, err := u.loadSession(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, entities.Confirmation{}, err
	}
	if s.State != entities.StateDone {
		return entities.ConfirmationSession{}, entities.Confirmation{}, ErrReceiptNotReady
	}

	var rec entities.Confirmation
	if s.ConfirmationID != "" {
		rec, err = u.confirmations.GetByID(ctx, s.ConfirmationID)
		if err != nil {
			// The receipt still renders from the session alone.
			log.Printf("[confirmation][usecase] confirmation record fetch failed id=%s confirmation_id=%s err=%v", s.ID, s.ConfirmationID, err)
			rec = entities.Confirmation{}
		}
	} else {
		// Sessions finished before the record write succeeded carry no link;
		// the invoice index recovers the record when one landed after all.
		recs, err := u.confirmations.ListByInvoice(ctx, s.Invoice)
		if err != nil {
			log.Printf("[confirmation][usecase] confirmation lookup failed id=%s invoice=%s err=%v", s.ID, s.Invoice, err)
		}
		for _, c := range recs {
			if c.SessionID == s.ID {
				rec = c
				break
			}
		}
	}
	return s, rec, nil
}

func (u *ConfirmationUseCase) loadSession(ctx context.Context, id string) (entities.ConfirmationSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConfirmationSession{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	if s.ID == "" {
		return entities.ConfirmationSession{}, ErrSessionNotFound
	}
	return s, nil
}

// The transition table answers whether the target state is reachable; from
// errored the retry state additionally pins which step may be re-entered.
func uploadAllowedFrom(s entities.ConfirmationSession) bool {
	if !entities.CanTransition(s.State, entities.StateUploading) {
		return false
	}
	return s.State != entities.StateErrored || s.RetryState == entities.StateUploading
}

func submitAllowedFrom(s entities.ConfirmationSession) bool {
	if !entities.CanTransition(s.State, entities.StateSubmitting) {
		return false
	}
	return s.State != entities.StateErrored || s.RetryState == entities.StateSubmitting
}

func proofValidationCode(err error) string {
	switch {
	case errors.Is(err, ErrProofTooLarge):
		return codeProofTooLarge
	case errors.Is(err, ErrProofBadFormat):
		return codeProofBadFormat
	case errors.Is(err, ErrProofEmpty):
		return codeProofEmpty
	default:
		return codeUploadFailed
	}
}

func webhookErrorCode(err error) string {
	switch {
	case errors.Is(err, interfaces.ErrWebhookNotConfigured):
		return codeWebhookNotConf
	case errors.Is(err, interfaces.ErrWebhookTestMode):
		return codeWebhookTestMode
	case errors.Is(err, interfaces.ErrWebhookNotFound):
		return codeWebhookNotFound
	case errors.Is(err, interfaces.ErrWebhookServerError):
		return codeWebhookServer
	default:
		return codeWebhookGeneric
	}
}

func buildConfirmationPayload(s entities.ConfirmationSession, submittedAt time.Time) entities.ConfirmationPayload {
	products := make([]entities.PayloadProduct, 0, len(s.Data.Products))
	for _, p := range s.Data.Products {
		products = append(products, entities.PayloadProduct{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Qty:   p.Qty,
			Total: p.LineTotal(),
		})
	}

	d := s.Details
	return entities.ConfirmationPayload{
		Invoice: s.Invoice,
		Customer: entities.PayloadCustomer{
			Name:    s.Data.Name,
			Email:   s.Data.Email,
			Phone:   s.Data.Phone,
			Address: s.Data.Address,
		},
		Products:      products,
		Total:         s.Data.Total,
		PaymentMethod: s.Data.PaymentMethod.Name,
		TransferDetails: entities.PayloadTransferDetails{
			CustomerName:   d.CustomerName,
			AccountNumber:  d.AccountNumber,
			SenderBank:     d.SenderBank,
			TransferDate:   d.TransferDate,
			TransferTime:   d.TransferTime,
			TransferAmount: d.TransferAmount,
			Notes:          d.Notes,
		},
		PaymentProof: s.Proof.DisplayURL,
		SubmittedAt:  submittedAt.Format(time.RFC3339),
	}
}

// progressTracker keeps the synthetic upload progress for in-flight uploads.
// The image host gives no transfer feedback, so progress ticks up to 90 while
// the request runs and jumps to 100 on completion.
type progressTracker struct {
	mu sync.Mutex
	m  map[string]int
}

func newProgressTracker() *progressTracker {
	return &progressTracker{m: make(map[string]int)}
}

// begin starts ticking progress for a session and returns the stop function.
func (t *progressTracker) begin(id string) func() {
	t.mu.Lock()
	t.m[id] = 0
	t.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				t.mu.Lock()
				if p, ok := t.m[id]; ok && p < 90 {
					t.m[id] = p + 10
				}
				t.mu.Unlock()
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func (t *progressTracker) get(id string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.m[id]
	return p, ok
}

func (t *progressTracker) drop(id string) {
	t.mu.Lock()
	delete(t.m, id)
	t.mu.Unlock()
}
