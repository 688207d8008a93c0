package repository

import (
	"context"
	"encoding/json"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrderChargesTableName = "order_charges"
	orderChargesOrderIDIndex     = "order_id-index"
)

type orderChargeItem struct {
	ID                 string                 `dynamodbav:"id"`
	OrderID            string                 `dynamodbav:"order_id"`
	TenantID           string                 `dynamodbav:"tenant_id"`
	OrderNumber        int                    `dynamodbav:"num_os"`
	Amount             string                 `dynamodbav:"amount"`
	Status             string                 `dynamodbav:"status"`
	Date               string                 `dynamodbav:"date"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// OrderChargeDynamoRepository persists OrderCharge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type OrderChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderChargeRepository = (*OrderChargeDynamoRepository)(nil)

func NewOrderChargeDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderChargeDynamoRepository {
	return &OrderChargeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "ORDER_CHARGES_TABLE", defaultOrderChargesTableName),
	}
}

func (r *OrderChargeDynamoRepository) Create(ctx context.Context, c entities.OrderCharge) (entities.OrderCharge, error) {
	av, err := attributevalue.MarshalMap(toOrderChargeItem(c))
	if err != nil {
		return entities.OrderCharge{}, err
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
		return entities.OrderCharge{}, err
	}
	return c, nil
}

func (r *OrderChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderCharge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderCharge{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderCharge{}, nil
	}

	var it orderChargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderCharge{}, err
	}
	return fromOrderChargeItem(it), nil
}

func (r *OrderChargeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderChargesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderChargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderChargeItem(it))
	}
	return items, nil
}

func toOrderChargeItem(c entities.OrderCharge) orderChargeItem {
	it := orderChargeItem{
		ID:                 c.ID,
		OrderID:            c.OrderID,
		TenantID:           c.TenantID,
		OrderNumber:        c.OrderNumber,
		Amount:             c.Amount.StringFixed(2),
		Status:             string(c.Status),
		Date:               formatTime(c.Date),
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
	// The parsed copy keeps provider fields queryable from the console.
	var payload map[string]interface{}
	if len(c.ProviderPayloadRaw) > 0 && json.Unmarshal(c.ProviderPayloadRaw, &payload) == nil {
		it.ProviderPayload = payload
	}
	return it
}

func fromOrderChargeItem(it orderChargeItem) entities.OrderCharge {
	amount, _ := decimal.NewFromString(it.Amount)
	c := entities.OrderCharge{
		ID:          it.ID,
		OrderID:     it.OrderID,
		TenantID:    it.TenantID,
		OrderNumber: it.OrderNumber,
		Amount:      amount,
		Status:      entities.ChargeStatus(it.Status),
		Date:        parseTime(it.Date),
	}
	if it.ProviderPayloadRaw != "" {
		c.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return c
}
