package repository

import (
	"context"
	"time"

	"konfirmasi_pembayaran/internal/domain/entities"
	"konfirmasi_pembayaran/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfirmationsTableName = "confirmations"
	confirmationsInvoiceIndex     = "invoice-index"
)

type confirmationItem struct {
	ID          string `dynamodbav:"id"`
	SessionID   string `dynamodbav:"session_id"`
	Invoice     string `dynamodbav:"invoice"`
	SubmittedAt string `dynamodbav:"submitted_at"`
	PayloadRaw  string `dynamodbav:"payload_raw,omitempty"`
}

// ConfirmationDynamoRepository persists submitted Confirmation records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice-index (PK: invoice)

type ConfirmationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfirmationRepository = (*ConfirmationDynamoRepository)(nil)

func NewConfirmationDynamoRepository(ddb *dynamodb.Client) *ConfirmationDynamoRepository {
	return &ConfirmationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIRMATIONS_TABLE", defaultConfirmationsTableName),
	}
}

func (r *ConfirmationDynamoRepository) Create(ctx context.Context, c entities.Confirmation) (entities.Confirmation, error) {
	it := toConfirmationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Confirmation{}, err
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
		return entities.Confirmation{}, err
	}
	return c, nil
}

func (r *ConfirmationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Confirmation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Confirmation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Confirmation{}, nil
	}

	var it confirmationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Confirmation{}, err
	}
	return fromConfirmationItem(it), nil
}

func (r *ConfirmationDynamoRepository) ListByInvoice(ctx context.Context, invoice string) ([]entities.Confirmation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(confirmationsInvoiceIndex),
		KeyConditionExpression: aws.String("invoice = :inv"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inv": &types.AttributeValueMemberS{Value: invoice},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Confirmation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it confirmationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConfirmationItem(it))
	}
	return items, nil
}

func toConfirmationItem(c entities.Confirmation) confirmationItem {
	return confirmationItem{
		ID:          c.ID,
		SessionID:   c.SessionID,
		Invoice:     c.Invoice,
		SubmittedAt: c.SubmittedAt.UTC().Format(time.RFC3339Nano),
		PayloadRaw:  string(c.PayloadRaw),
	}
}

func fromConfirmationItem(it confirmationItem) entities.Confirmation {
	at, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	return entities.Confirmation{
		ID:          it.ID,
		SessionID:   it.SessionID,
		Invoice:     it.Invoice,
		SubmittedAt: at,
		PayloadRaw:  []byte(it.PayloadRaw),
	}
}
