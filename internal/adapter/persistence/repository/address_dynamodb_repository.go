package repository

import (
	"context"
	"sort"

	"sacola_api/internal/domain/entities"
	"sacola_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAddressesTableName = "addresses"
	addressesUserIDIndex      = "user_id-index"
)

type addressItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	CEP          string `dynamodbav:"cep"`
	Street       string `dynamodbav:"street,omitempty"`
	Number       string `dynamodbav:"number,omitempty"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty"`
	City         string `dynamodbav:"city,omitempty"`
	State        string `dynamodbav:"state,omitempty"`
	IsDefault    bool   `dynamodbav:"is_default"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AddressDynamoRepository persists Address entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type AddressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddressRepository = (*AddressDynamoRepository)(nil)

func NewAddressDynamoRepository(ddb *dynamodb.Client, tableName string) *AddressDynamoRepository {
	return &AddressDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAddressesTableName),
	}
}

func (r *AddressDynamoRepository) GetDefault(ctx context.Context, userID string) (entities.Address, error) {
	list, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Address{}, err
	}
	for _, a := range list {
		if a.IsDefault {
			return a, nil
		}
	}
	return entities.Address{}, nil
}

// ListByUserID returns the user's addresses, newest first.
func (r *AddressDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Address, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(addressesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	out := make([]entities.Address, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it addressItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAddressItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ReplaceDefault demotes every current default and puts addr in a single
// TransactWriteItems call, so readers never observe zero or two defaults.
func (r *AddressDynamoRepository) ReplaceDefault(ctx context.Context, addr entities.Address) (entities.Address, error) {
	addr.IsDefault = true
	current, err := r.ListByUserID(ctx, addr.UserID)
	if err != nil {
		return entities.Address{}, err
	}

	writes, err := r.replaceDefaultWrites(addr, current)
	if err != nil {
		return entities.Address{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		if isPutConflict(err) {
			return entities.Address{}, interfaces.ErrAlreadyExists
		}
		return entities.Address{}, err
	}
	return addr, nil
}

// replaceDefaultWrites puts addr first, then one conditional demotion per
// current default.
func (r *AddressDynamoRepository) replaceDefaultWrites(addr entities.Address, current []entities.Address) ([]types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toAddressItem(addr))
	if err != nil {
		return nil, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	for _, a := range current {
		if !a.IsDefault || a.ID == addr.ID {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: a.ID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #is_default = :true"),
				UpdateExpression:    aws.String("SET #is_default = :false"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#is_default": "is_default",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":true":  &types.AttributeValueMemberBOOL{Value: true},
					":false": &types.AttributeValueMemberBOOL{Value: false},
				},
			},
		})
	}
	return writes, nil
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		ID:           a.ID,
		UserID:       a.UserID,
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		IsDefault:    a.IsDefault,
		CreatedAt:    formatTime(a.CreatedAt),
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		ID:           it.ID,
		UserID:       it.UserID,
		CEP:          it.CEP,
		Street:       it.Street,
		Number:       it.Number,
		Complement:   it.Complement,
		Neighborhood: it.Neighborhood,
		City:         it.City,
		State:        it.State,
		IsDefault:    it.IsDefault,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
