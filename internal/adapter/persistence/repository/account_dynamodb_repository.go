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

const defaultAccountsTableName = "accounts"

type accountItem struct {
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
	Email        string `dynamodbav:"email"`
	CompanyName  string `dynamodbav:"company_name"`
	PhoneNumber  string `dynamodbav:"phone_number"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: username (string)
//
// The username doubles as tenant key, so uniqueness falls out of the PK.

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
	})
	if err != nil {
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#username)"),
		ExpressionAttributeNames: map[string]string{
			"#username": "username",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}
	return a, nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Email:        a.Email,
		CompanyName:  a.CompanyName,
		PhoneNumber:  a.PhoneNumber,
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		Username:     it.Username,
		PasswordHash: it.PasswordHash,
		Email:        it.Email,
		CompanyName:  it.CompanyName,
		PhoneNumber:  it.PhoneNumber,
	}
}
