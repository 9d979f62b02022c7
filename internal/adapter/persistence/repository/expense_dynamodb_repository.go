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
	defaultExpensesTableName = "expenses"
	expensesUsernameIndex    = "username-index"
)

type expenseItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`

	Date        string `dynamodbav:"date,omitempty"`
	Amount      string `dynamodbav:"amount,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	ItemNumber  string `dynamodbav:"item_number,omitempty"`
}

// ExpenseDynamoRepository persists Expense ledger rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) ListByUsername(ctx context.Context, username string) ([]entities.Expense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(expensesUsernameIndex),
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

	items := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExpenseItem(it))
	}
	return items, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
			return entities.Expense{}, nil
		}
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:          e.ID,
		Username:    e.Username,
		Date:        dateString(e.Date),
		Amount:      moneyString(e.Amount),
		Description: e.Description,
		ItemNumber:  e.ItemNumber,
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	return entities.Expense{
		ID:          it.ID,
		Username:    it.Username,
		Date:        parseDate(it.Date),
		Amount:      parseMoney(it.Amount),
		Description: it.Description,
		ItemNumber:  it.ItemNumber,
	}
}
