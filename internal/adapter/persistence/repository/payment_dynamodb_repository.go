package repository

import (
	"context"
	"encoding/json"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsUserIDIndex      = "user_id-index"
)

type paymentItem struct {
	ID         string                 `dynamodbav:"id"`
	UserID     string                 `dynamodbav:"user_id"`
	Amount     string                 `dynamodbav:"amount"`
	Date       string                 `dynamodbav:"date"`
	Status     string                 `dynamodbav:"status"`
	Subtotal   string                 `dynamodbav:"subtotal"`
	Shipping   string                 `dynamodbav:"shipping"`
	Discount   string                 `dynamodbav:"discount"`
	Total      string                 `dynamodbav:"total"`
	Items      int                    `dynamodbav:"items"`
	MPPayload  map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	PayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists checkout payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:         p.ID,
		UserID:     p.UserID,
		Amount:     floatToString(p.Amount),
		Date:       formatTime(p.Date),
		Status:     string(p.Status),
		Subtotal:   floatToString(p.Summary.Subtotal),
		Shipping:   floatToString(p.Summary.Shipping),
		Discount:   floatToString(p.Summary.Discount),
		Total:      floatToString(p.Summary.Total),
		Items:      p.Items,
		MPPayload:  p.ProviderPayload,
		PayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:     it.ID,
		UserID: it.UserID,
		Amount: parseFloat(it.Amount),
		Date:   parseTime(it.Date),
		Status: entities.PaymentStatus(it.Status),
		Summary: entities.CartSummary{
			Subtotal: parseFloat(it.Subtotal),
			Shipping: parseFloat(it.Shipping),
			Discount: parseFloat(it.Discount),
			Total:    parseFloat(it.Total),
		},
		Items:           it.Items,
		ProviderPayload: it.MPPayload,
	}
	if it.PayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.PayloadRaw)
	}
	return p
}
