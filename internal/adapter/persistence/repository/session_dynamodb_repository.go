package repository

import (
	"context"
	"encoding/json"
	"time"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "confirmation_sessions"
	sessionsInvoiceIndex     = "invoice-index"
)

type sessionItem struct {
	ID             string `dynamodbav:"id"`
	Invoice        string `dynamodbav:"invoice"`
	Data           string `dynamodbav:"data,omitempty"`
	State          string `dynamodbav:"state"`
	ErrorKind      string `dynamodbav:"error_kind,omitempty"`
	ErrorCode      string `dynamodbav:"error_code,omitempty"`
	RetryState     string `dynamodbav:"retry_state,omitempty"`
	Bucket         string `dynamodbav:"bucket,omitempty"`
	Destination    string `dynamodbav:"destination,omitempty"`
	Details        string `dynamodbav:"details,omitempty"`
	Proof          string `dynamodbav:"proof,omitempty"`
	UploadProgress int    `dynamodbav:"upload_progress"`
	ConfirmationID string `dynamodbav:"confirmation_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists ConfirmationSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice-index (PK: invoice)

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.ConfirmationSession) (entities.ConfirmationSession, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConfirmationSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConfirmationSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConfirmationSession{}, err
	}
	return fromSessionItem(it)
}

// Save overwrites the whole item. Sessions have a single writer, so
// last-writer-wins is fine here.
func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.ConfirmationSession) (entities.ConfirmationSession, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ConfirmationSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ConfirmationSession{}, err
	}
	return s, nil
}

// GetByInvoice returns the most recently updated session for an invoice, or a
// zero session when none exists.
func (r *SessionDynamoRepository) GetByInvoice(ctx context.Context, invoice string) (entities.ConfirmationSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsInvoiceIndex),
		KeyConditionExpression: aws.String("invoice = :inv"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inv": &types.AttributeValueMemberS{Value: invoice},
		},
	})
	if err != nil {
		return entities.ConfirmationSession{}, err
	}

	var latest entities.ConfirmationSession
	for _, raw := range out.Items {
		var it sessionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.ConfirmationSession{}, err
		}
		s, err := fromSessionItem(it)
		if err != nil {
			return entities.ConfirmationSession{}, err
		}
		if latest.ID == "" || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	return latest, nil
}

func toSessionItem(s entities.ConfirmationSession) (sessionItem, error) {
	it := sessionItem{
		ID:             s.ID,
		Invoice:        s.Invoice,
		State:          string(s.State),
		ErrorKind:      string(s.ErrorKind),
		ErrorCode:      s.ErrorCode,
		RetryState:     string(s.RetryState),
		Bucket:         s.Bucket,
		UploadProgress: s.UploadProgress,
		ConfirmationID: s.ConfirmationID,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(s.Data)
	if err != nil {
		return sessionItem{}, err
	}
	it.Data = string(data)

	if s.Destination != nil {
		b, err := json.Marshal(s.Destination)
		if err != nil {
			return sessionItem{}, err
		}
		it.Destination = string(b)
	}
	if s.Details != nil {
		b, err := json.Marshal(s.Details)
		if err != nil {
			return sessionItem{}, err
		}
		it.Details = string(b)
	}
	if s.Proof != nil {
		b, err := json.Marshal(s.Proof)
		if err != nil {
			return sessionItem{}, err
		}
		it.Proof = string(b)
	}
	return it, nil
}

func fromSessionItem(it sessionItem) (entities.ConfirmationSession, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	s := entities.ConfirmationSession{
		ID:             it.ID,
		Invoice:        it.Invoice,
		State:          entities.SessionState(it.State),
		ErrorKind:      entities.ErrorKind(it.ErrorKind),
		ErrorCode:      it.ErrorCode,
		RetryState:     entities.SessionState(it.RetryState),
		Bucket:         it.Bucket,
		UploadProgress: it.UploadProgress,
		ConfirmationID: it.ConfirmationID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}

	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &s.Data); err != nil {
			return entities.ConfirmationSession{}, err
		}
	}
	if it.Destination != "" {
		var d entities.DestinationBankAccount
		if err := json.Unmarshal([]byte(it.Destination), &d); err != nil {
			return entities.ConfirmationSession{}, err
		}
		s.Destination = &d
	}
	if it.Details != "" {
		var d entities.TransferDetails
		if err := json.Unmarshal([]byte(it.Details), &d); err != nil {
			return entities.ConfirmationSession{}, err
		}
		s.Details = &d
	}
	if it.Proof != "" {
		var p entities.UploadedProof
		if err := json.Unmarshal([]byte(it.Proof), &p); err != nil {
			return entities.ConfirmationSession{}, err
		}
		s.Proof = &p
	}
	return s, nil
}
