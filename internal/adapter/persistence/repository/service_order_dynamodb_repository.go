package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	serviceOrdersIDIndex          = "id-index"
)

// ErrColumnNotUpdatable is returned when a partial update names an identity
// or unknown column.
var ErrColumnNotUpdatable = errors.New("column cannot be updated")

type serviceOrderItem struct {
	TenantID    string `dynamodbav:"tenant_id"`
	OrderNumber int    `dynamodbav:"num_os"`
	ID          string `dynamodbav:"id"`

	ClientName       string `dynamodbav:"cliente_nome,omitempty"`
	ClientPhone      string `dynamodbav:"telefone_cliente,omitempty"`
	TaxID            string `dynamodbav:"cpf,omitempty"`
	Address          string `dynamodbav:"endereco,omitempty"`
	BirthDate        string `dynamodbav:"data_nascimento,omitempty"`
	SaleDate         string `dynamodbav:"data_venda,omitempty"`
	DeliveryDate     string `dynamodbav:"data_entrega,omitempty"`
	SphereRight      string `dynamodbav:"esf_od,omitempty"`
	CylinderRight    string `dynamodbav:"cil_od,omitempty"`
	AxisRight        string `dynamodbav:"eixo_od,omitempty"`
	DNPRight         string `dynamodbav:"dnp_od,omitempty"`
	HeightRight      string `dynamodbav:"altura_od,omitempty"`
	SphereLeft       string `dynamodbav:"esf_oe,omitempty"`
	CylinderLeft     string `dynamodbav:"cil_oe,omitempty"`
	AxisLeft         string `dynamodbav:"eixo_oe,omitempty"`
	DNPLeft          string `dynamodbav:"dnp_oe,omitempty"`
	HeightLeft       string `dynamodbav:"altura_oe,omitempty"`
	Addition         string `dynamodbav:"adicao,omitempty"`
	LensType         string `dynamodbav:"tipo_lente,omitempty"`
	LensDescription  string `dynamodbav:"descricao_lente,omitempty"`
	TotalValue       string `dynamodbav:"valor_total,omitempty"`
	PaymentMethod    string `dynamodbav:"forma_pagamento,omitempty"`
	Installments     string `dynamodbav:"credito_parcelas,omitempty"`
	PaymentStatus    string `dynamodbav:"status_pagamento,omitempty"`
	GeneralNote      string `dynamodbav:"observacao,omitempty"`
	OrderDescription string `dynamodbav:"descricao_pedido,omitempty"`
	ClientNote       string `dynamodbav:"observacao_cliente,omitempty"`
	ArrivedAt        string `dynamodbav:"data_chegada_real,omitempty"`
	PaymentReference string `dynamodbav:"referencia_pagamento,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: num_os (number)
//   - GSI: id-index (PK: id)
//
// The sort key makes the order number unique per tenant and gives the
// management list its highest-first order for free.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Insert(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#num_os)"),
		ExpressionAttributeNames: map[string]string{
			"#num_os": entities.ColumnOrderNumber,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, interfaces.ErrDuplicateOrderNumber
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#tenant_id = :tid"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": entities.ColumnTenantID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	var orders []entities.ServiceOrder
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
	}
	return orders, nil
}

// GetByID resolves the order through the id index and only returns it to
// its own tenant.
func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceOrdersIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": entities.ColumnID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	if it.TenantID != tenantID {
		return entities.ServiceOrder{}, nil
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) UpdateFields(ctx context.Context, tenantID, id string, fields entities.OrderFields) (entities.ServiceOrder, error) {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if existing.ID == "" {
		return entities.ServiceOrder{}, nil
	}

	updateExpr, values, names, err := buildOrderUpdate(fields, formatTime(nowUTC()))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			entities.ColumnTenantID:    &types.AttributeValueMemberS{Value: existing.TenantID},
			entities.ColumnOrderNumber: &types.AttributeValueMemberN{Value: intToString(existing.OrderNumber)},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": entities.ColumnID}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// buildOrderUpdate turns a partial update into one SET/REMOVE expression.
// Columns are visited in name order so the expression is stable.
func buildOrderUpdate(fields entities.OrderFields, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !entities.IsEditableColumn(col) {
			return "", nil, nil, fmt.Errorf("%w: %s", ErrColumnNotUpdatable, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	names := map[string]string{"#updated_at": entities.ColumnUpdatedAt}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	sets := []string{"#updated_at = :updated_at"}
	var removes []string
	for i, col := range cols {
		name := fmt.Sprintf("#c%d", i)
		names[name] = col
		v := fields[col]
		if v == nil {
			removes = append(removes, name)
			continue
		}
		value := fmt.Sprintf(":v%d", i)
		values[value] = &types.AttributeValueMemberS{Value: *v}
		sets = append(sets, name+" = "+value)
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, values, names, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		TenantID:         o.TenantID,
		OrderNumber:      o.OrderNumber,
		ID:               o.ID,
		ClientName:       o.ClientName,
		ClientPhone:      o.ClientPhone,
		TaxID:            o.TaxID,
		Address:          o.Address,
		BirthDate:        o.BirthDate,
		SaleDate:         o.SaleDate,
		DeliveryDate:     o.DeliveryDate,
		SphereRight:      o.RightEye.Sphere,
		CylinderRight:    o.RightEye.Cylinder,
		AxisRight:        o.RightEye.Axis,
		DNPRight:         o.RightEye.DNP,
		HeightRight:      o.RightEye.Height,
		SphereLeft:       o.LeftEye.Sphere,
		CylinderLeft:     o.LeftEye.Cylinder,
		AxisLeft:         o.LeftEye.Axis,
		DNPLeft:          o.LeftEye.DNP,
		HeightLeft:       o.LeftEye.Height,
		Addition:         o.Addition,
		LensType:         string(o.LensType),
		LensDescription:  o.LensDescription,
		PaymentMethod:    string(o.PaymentMethod),
		PaymentStatus:    string(o.PaymentStatus),
		GeneralNote:      o.GeneralNote,
		OrderDescription: o.OrderDescription,
		ClientNote:       o.ClientNote,
		PaymentReference: o.PaymentReference,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
	if o.TotalValue.Valid {
		it.TotalValue = o.TotalValue.Decimal.StringFixed(2)
	}
	if o.Installments > 0 {
		it.Installments = intToString(o.Installments)
	}
	if o.ArrivedAt != nil {
		it.ArrivedAt = formatTime(*o.ArrivedAt)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:          it.ID,
		TenantID:    it.TenantID,
		OrderNumber: it.OrderNumber,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	o.ApplyFields(entities.OrderFields{
		entities.ColumnClientName:       &it.ClientName,
		entities.ColumnClientPhone:      &it.ClientPhone,
		entities.ColumnTaxID:            &it.TaxID,
		entities.ColumnAddress:          &it.Address,
		entities.ColumnBirthDate:        &it.BirthDate,
		entities.ColumnSaleDate:         &it.SaleDate,
		entities.ColumnDeliveryDate:     &it.DeliveryDate,
		entities.ColumnSphereRight:      &it.SphereRight,
		entities.ColumnCylinderRight:    &it.CylinderRight,
		entities.ColumnAxisRight:        &it.AxisRight,
		entities.ColumnDNPRight:         &it.DNPRight,
		entities.ColumnHeightRight:      &it.HeightRight,
		entities.ColumnSphereLeft:       &it.SphereLeft,
		entities.ColumnCylinderLeft:     &it.CylinderLeft,
		entities.ColumnAxisLeft:         &it.AxisLeft,
		entities.ColumnDNPLeft:          &it.DNPLeft,
		entities.ColumnHeightLeft:       &it.HeightLeft,
		entities.ColumnAddition:         &it.Addition,
		entities.ColumnLensType:         &it.LensType,
		entities.ColumnLensDescription:  &it.LensDescription,
		entities.ColumnTotalValue:       &it.TotalValue,
		entities.ColumnPaymentMethod:    &it.PaymentMethod,
		entities.ColumnInstallments:     &it.Installments,
		entities.ColumnPaymentStatus:    &it.PaymentStatus,
		entities.ColumnGeneralNote:      &it.GeneralNote,
		entities.ColumnOrderDescription: &it.OrderDescription,
		entities.ColumnClientNote:       &it.ClientNote,
		entities.ColumnArrivedAt:        &it.ArrivedAt,
		entities.ColumnPaymentReference: &it.PaymentReference,
	})
	return o
}
