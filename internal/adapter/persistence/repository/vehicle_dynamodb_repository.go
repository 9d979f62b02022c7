package repository

import (
	"context"
	"errors"
	"strconv"

	"dealcost/internal/domain/entities"
	"dealcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	Username string `dynamodbav:"username"`
	VIN      string `dynamodbav:"vin"`

	Make    string `dynamodbav:"make,omitempty"`
	Model   string `dynamodbav:"model,omitempty"`
	Trim    string `dynamodbav:"trim,omitempty"`
	Year    string `dynamodbav:"year,omitempty"`
	Mileage string `dynamodbav:"mileage,omitempty"`
	Color   string `dynamodbav:"color,omitempty"`

	PurchasePrice string `dynamodbav:"purchase_price,omitempty"`
	SalePrice     string `dynamodbav:"sale_price,omitempty"`
	SaleStatus    string `dynamodbav:"sale_status,omitempty"`
	SaleType      string `dynamodbav:"sale_type,omitempty"`

	DateAdded    string `dynamodbav:"date_added,omitempty"`
	PurchaseDate string `dynamodbav:"purchase_date,omitempty"`
	DateSold     string `dynamodbav:"date_sold,omitempty"`

	FinanceType      string `dynamodbav:"finance_type,omitempty"`
	TitleStatus      string `dynamodbav:"title_status,omitempty"`
	InspectionStatus string `dynamodbav:"inspection_status,omitempty"`
	PendingIssues    string `dynamodbav:"pending_issues,omitempty"`
	Purchaser        string `dynamodbav:"purchaser,omitempty"`
	PostedOnline     bool   `dynamodbav:"posted_online,omitempty"`
	ClosingStatement string `dynamodbav:"closing_statement,omitempty"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: username (string)
//   - SK: vin (string)
//
// Numeric-ish attributes are stored as strings; parsing happens here at the
// boundary and malformed values read back as zero/absent rather than erroring.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#vin)"),
		ExpressionAttributeNames: map[string]string{
			"#vin": "vin",
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByVIN(ctx context.Context, username, vin string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
			"vin":      &types.AttributeValueMemberS{Value: vin},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByUsername(ctx context.Context, username string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
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

	items := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#vin)"),
		ExpressionAttributeNames: map[string]string{
			"#vin": "vin",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, username, vin string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
			"vin":      &types.AttributeValueMemberS{Value: vin},
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		Username:         v.Username,
		VIN:              v.VIN,
		Make:             v.Make,
		Model:            v.Model,
		Trim:             v.Trim,
		Year:             intString(v.Year),
		Mileage:          intString(v.Mileage),
		Color:            v.Color,
		PurchasePrice:    moneyString(v.PurchasePrice),
		SalePrice:        moneyString(v.SalePrice),
		SaleStatus:       string(v.SaleStatus),
		SaleType:         string(v.SaleType),
		DateAdded:        dateString(v.DateAdded),
		PurchaseDate:     dateString(v.PurchaseDate),
		DateSold:         dateString(v.DateSold),
		FinanceType:      v.FinanceType,
		TitleStatus:      v.TitleStatus,
		InspectionStatus: v.InspectionStatus,
		PendingIssues:    v.PendingIssues,
		Purchaser:        v.Purchaser,
		PostedOnline:     v.PostedOnline,
		ClosingStatement: v.ClosingStatement,
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	year, _ := strconv.Atoi(it.Year)
	mileage, _ := strconv.Atoi(it.Mileage)
	return entities.Vehicle{
		Username:         it.Username,
		VIN:              it.VIN,
		Make:             it.Make,
		Model:            it.Model,
		Trim:             it.Trim,
		Year:             year,
		Mileage:          mileage,
		Color:            it.Color,
		PurchasePrice:    parseMoney(it.PurchasePrice),
		SalePrice:        parseMoney(it.SalePrice),
		SaleStatus:       entities.SaleStatus(it.SaleStatus),
		SaleType:         entities.SaleType(it.SaleType),
		DateAdded:        parseDate(it.DateAdded),
		PurchaseDate:     parseDate(it.PurchaseDate),
		DateSold:         parseDate(it.DateSold),
		FinanceType:      it.FinanceType,
		TitleStatus:      it.TitleStatus,
		InspectionStatus: it.InspectionStatus,
		PendingIssues:    it.PendingIssues,
		Purchaser:        it.Purchaser,
		PostedOnline:     it.PostedOnline,
		ClosingStatement: it.ClosingStatement,
	}
}

func intString(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
