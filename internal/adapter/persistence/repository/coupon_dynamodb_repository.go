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
	defaultCouponsTableName        = "coupons"
	defaultAppliedCouponsTableName = "applied_coupons"
)

type couponItem struct {
	Code        string `dynamodbav:"code"`
	Kind        string `dynamodbav:"type"`
	Value       string `dynamodbav:"value"`
	Description string `dynamodbav:"description,omitempty"`
}

type appliedCouponItem struct {
	UserID     string `dynamodbav:"user_id"`
	CouponCode string `dynamodbav:"coupon_code"`
	AppliedAt  string `dynamodbav:"applied_at"`
}

// CouponDynamoRepository persists the coupon catalogue and applied coupons.
//
// Table requirements:
//   - coupons: PK code (string)
//   - applied_coupons: PK user_id (string)
type CouponDynamoRepository struct {
	ddb          *dynamodb.Client
	couponsTable string
	appliedTable string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client, couponsTable, appliedTable string) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:          ddb,
		couponsTable: tableOrDefault(couponsTable, defaultCouponsTableName),
		appliedTable: tableOrDefault(appliedTable, defaultAppliedCouponsTableName),
	}
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.couponsTable),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}
	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.couponsTable),
	})
	out := make([]entities.Coupon, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it couponItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromCouponItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.couponsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Coupon{}, interfaces.ErrAlreadyExists
		}
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) GetApplied(ctx context.Context, userID string) (entities.AppliedCoupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.appliedTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.AppliedCoupon{}, nil
	}
	var it appliedCouponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AppliedCoupon{}, err
	}

	coupon, err := r.GetByCode(ctx, it.CouponCode)
	if err != nil {
		return entities.AppliedCoupon{}, err
	}
	return entities.AppliedCoupon{
		UserID:     it.UserID,
		CouponCode: it.CouponCode,
		AppliedAt:  parseTime(it.AppliedAt),
		Coupon:     coupon,
	}, nil
}

func (r *CouponDynamoRepository) CreateApplied(ctx context.Context, a entities.AppliedCoupon) error {
	av, err := attributevalue.MarshalMap(appliedCouponItem{
		UserID:     a.UserID,
		CouponCode: a.CouponCode,
		AppliedAt:  formatTime(a.AppliedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.appliedTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#user_id)"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

func (r *CouponDynamoRepository) UpdateApplied(ctx context.Context, a entities.AppliedCoupon) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.appliedTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: a.UserID},
		},
		ConditionExpression: aws.String("attribute_exists(#user_id)"),
		UpdateExpression:    aws.String("SET #coupon_code = :code, #applied_at = :applied_at"),
		ExpressionAttributeNames: map[string]string{
			"#user_id":     "user_id",
			"#coupon_code": "coupon_code",
			"#applied_at":  "applied_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code":       &types.AttributeValueMemberS{Value: a.CouponCode},
			":applied_at": &types.AttributeValueMemberS{Value: formatTime(a.AppliedAt)},
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

func (r *CouponDynamoRepository) DeleteApplied(ctx context.Context, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.appliedTable),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	return err
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{Code: c.Code, Kind: string(c.Kind), Value: floatToString(c.Value), Description: c.Description}
}

func fromCouponItem(it couponItem) entities.Coupon {
	return entities.Coupon{
		Code:        it.Code,
		Kind:        entities.CouponKind(it.Kind),
		Value:       parseFloat(it.Value),
		Description: it.Description,
	}
}
