package repository

import (
	"context"
	"errors"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposits"
	depositsUsernameIndex    = "username-index"
)

type depositItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`

	Date            string `dynamodbav:"date,omitempty"`
	Amount          string `dynamodbav:"amount,omitempty"`
	Description     string `dynamodbav:"description,omitempty"`
	ReferenceNumber string `dynamodbav:"reference_number,omitempty"`
	Account         string `dynamodbav:"account,omitempty"`
}

// DepositDynamoRepository persists Deposit ledger rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
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
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deposit{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deposit{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListByUsername(ctx context.Context, username string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsUsernameIndex),
		KeyConditionExpression: aws.String("#username = :username"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Deposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func (r *DepositDynamoRepository) Update(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deposit{}, nil
		}
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:              d.ID,
		Username:        d.Username,
		Date:            dateString(d.Date),
		Amount:          moneyString(d.Amount),
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		Account:         d.Account,
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	return entities.Deposit{
		ID:              it.ID,
		Username:        it.Username,
		Date:            parseDate(it.Date),
		Amount:          parseMoney(it.Amount),
		Description:     it.Description,
		ReferenceNumber: it.ReferenceNumber,
		Account:         it.Account,
	}
}
