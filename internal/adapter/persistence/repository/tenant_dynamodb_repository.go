package repository

import (
	"context"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTenantsTableName  = "tenants"
	defaultProfilesTableName = "profiles"
)

type tenantItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	LogoURL   string `dynamodbav:"logo_url,omitempty"`
	Address   string `dynamodbav:"endereco,omitempty"`
	Number    string `dynamodbav:"numero,omitempty"`
	Phone     string `dynamodbav:"telefone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type profileItem struct {
	UserID    string `dynamodbav:"user_id"`
	TenantID  string `dynamodbav:"tenant_id"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TenantDynamoRepository reads tenants (PK: id).
type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client, tableName string) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return entities.Tenant{
		ID:        it.ID,
		Name:      it.Name,
		LogoURL:   it.LogoURL,
		Address:   it.Address,
		Number:    it.Number,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

// ProfileDynamoRepository reads user profiles (PK: user_id).
type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		UserID:    it.UserID,
		TenantID:  it.TenantID,
		Role:      entities.ProfileRole(it.Role),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}
