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
	defaultReportsTableName = "reports"
	reportsUsernameIndex    = "username-index"
	reportsVINIndex         = "vin-index"
)

type reportItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`
	VIN      string `dynamodbav:"vin"`

	DateOccurred string `dynamodbav:"date_occurred,omitempty"`
	Cost         string `dynamodbav:"cost,omitempty"`
	Category     string `dynamodbav:"category,omitempty"`
	Vendor       string `dynamodbav:"vendor,omitempty"`
	Description  string `dynamodbav:"description,omitempty"`
}

// ReportDynamoRepository persists Report entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)
//   - GSI: vin-index (PK: vin)
//
// The VIN index is queried without a username key, so results are filtered by
// owner after the query; the VIN join is soft and cross-account VIN collisions
// are possible.

type ReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
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
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) ListByUsername(ctx context.Context, username string) ([]entities.Report, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reportsUsernameIndex),
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

	items := make([]entities.Report, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reportItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReportItem(it))
	}
	return items, nil
}

func (r *ReportDynamoRepository) ListByVIN(ctx context.Context, username, vin string) ([]entities.Report, error) {
	items, err := r.queryByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Report, 0, len(items))
	for _, it := range items {
		if it.Username != username {
			continue
		}
		out = append(out, fromReportItem(it))
	}
	return out, nil
}

func (r *ReportDynamoRepository) Update(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
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
			return entities.Report{}, nil
		}
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ReportDynamoRepository) DeleteByVIN(ctx context.Context, username, vin string) error {
	items, err := r.queryByVIN(ctx, vin)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.Username != username {
			continue
		}
		if err := r.DeleteByID(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReportDynamoRepository) queryByVIN(ctx context.Context, vin string) ([]reportItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reportsVINIndex),
		KeyConditionExpression: aws.String("#vin = :vin"),
		ExpressionAttributeNames: map[string]string{
			"#vin": "vin",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vin": &types.AttributeValueMemberS{Value: vin},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]reportItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reportItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func toReportItem(rep entities.Report) reportItem {
	return reportItem{
		ID:           rep.ID,
		Username:     rep.Username,
		VIN:          rep.VIN,
		DateOccurred: dateString(rep.DateOccurred),
		Cost:         moneyString(rep.Cost),
		Category:     rep.Category,
		Vendor:       rep.Vendor,
		Description:  rep.Description,
	}
}

func fromReportItem(it reportItem) entities.Report {
	return entities.Report{
		ID:           it.ID,
		Username:     it.Username,
		VIN:          it.VIN,
		DateOccurred: parseDate(it.DateOccurred),
		Cost:         parseMoney(it.Cost),
		Category:     it.Category,
		Vendor:       it.Vendor,
		Description:  it.Description,
	}
}
