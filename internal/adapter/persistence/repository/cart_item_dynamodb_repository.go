package repository

import (
	"context"
	"strconv"
	"time"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCartItemsTableName = "cart_items"
	cartItemsUserIDIndex      = "user_id-index"
)

type cartItemItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	ProductID int64  `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
	Image     string `dynamodbav:"image,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CartItemDynamoRepository persists CartItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The id is derived from (user, product), so the conditional put is what keeps
// a single line per product. Quantity changes are UpdateItem expressions.
type CartItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartItemRepository = (*CartItemDynamoRepository)(nil)

func NewCartItemDynamoRepository(ddb *dynamodb.Client, tableName string) *CartItemDynamoRepository {
	return &CartItemDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCartItemsTableName),
	}
}

func (r *CartItemDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.CartItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cartItemsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := make([]entities.CartItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it cartItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCartItemItem(it))
		}
	}
	sortCartItems(items)
	return items, nil
}

func (r *CartItemDynamoRepository) GetByUserAndProduct(ctx context.Context, userID string, productID int64) (entities.CartItem, error) {
	it, err := r.get(ctx, entities.CartItemID(userID, productID))
	if err != nil {
		return entities.CartItem{}, err
	}
	if it.UserID != userID || it.ProductID != productID {
		return entities.CartItem{}, nil
	}
	return it, nil
}

func (r *CartItemDynamoRepository) get(ctx context.Context, id string) (entities.CartItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CartItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CartItem{}, nil
	}

	var it cartItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CartItem{}, err
	}
	return fromCartItemItem(it), nil
}

func (r *CartItemDynamoRepository) Create(ctx context.Context, item entities.CartItem) (entities.CartItem, error) {
	av, err := attributevalue.MarshalMap(toCartItemItem(item))
	if err != nil {
		return entities.CartItem{}, err
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
			return entities.CartItem{}, interfaces.ErrAlreadyExists
		}
		return entities.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemDynamoRepository) IncrementQuantity(ctx context.Context, userID, itemID string, delta int) (entities.CartItem, error) {
	return r.update(ctx, userID, itemID, "SET #quantity = #quantity + :q, #updated_at = :updated_at", delta)
}

func (r *CartItemDynamoRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.CartItem, error) {
	return r.update(ctx, userID, itemID, "SET #quantity = :q, #updated_at = :updated_at", quantity)
}

func (r *CartItemDynamoRepository) update(ctx context.Context, userID, itemID, updateExpr string, q int) (entities.CartItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		UpdateExpression:    aws.String(updateExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q":          &types.AttributeValueMemberN{Value: strconv.Itoa(q)},
			":uid":        &types.AttributeValueMemberS{Value: userID},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#quantity": "quantity", "#updated_at": "updated_at"},
			map[string]string{"#id": "id", "#user_id": "user_id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CartItem{}, nil
		}
		return entities.CartItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CartItem{}, nil
	}
	var it cartItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CartItem{}, err
	}
	return fromCartItemItem(it), nil
}

func (r *CartItemDynamoRepository) Delete(ctx context.Context, userID, itemID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("#user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *CartItemDynamoRepository) DeleteByUserID(ctx context.Context, userID string) error {
	items, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := r.Delete(ctx, userID, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func toCartItemItem(it entities.CartItem) cartItemItem {
	return cartItemItem{
		ID:        it.ID,
		UserID:    it.UserID,
		ProductID: it.ProductID,
		Name:      it.Name,
		UnitPrice: floatToString(it.UnitPrice),
		Quantity:  it.Quantity,
		Image:     it.Image,
		CreatedAt: formatTime(it.CreatedAt),
		UpdatedAt: formatTime(it.UpdatedAt),
	}
}

func fromCartItemItem(it cartItemItem) entities.CartItem {
	return entities.CartItem{
		ID:        it.ID,
		UserID:    it.UserID,
		ProductID: it.ProductID,
		Name:      it.Name,
		UnitPrice: parseFloat(it.UnitPrice),
		Quantity:  it.Quantity,
		Image:     it.Image,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
