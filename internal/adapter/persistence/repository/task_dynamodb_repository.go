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
	defaultTasksTableName = "tasks"
	tasksUsernameIndex    = "username-index"
)

type taskItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`

	Title       string `dynamodbav:"title,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status,omitempty"`
	AssignedTo  string `dynamodbav:"assigned_to,omitempty"`

	DateAssigned  string `dynamodbav:"date_assigned,omitempty"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	CompletedDate string `dynamodbav:"completed_date,omitempty"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) ListByUsername(ctx context.Context, username string) ([]entities.Task, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tasksUsernameIndex),
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

	items := make([]entities.Task, 0, len(out.Items))
	for _, raw := range out.Items {
		var it taskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTaskItem(it))
	}
	return items, nil
}

func (r *TaskDynamoRepository) Update(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	return t, nil
}

// UpdateStatus flips status and completed_date together in one UpdateItem so
// the pair can never diverge.
func (r *TaskDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TaskStatus, completedDate entities.Date) (entities.Task, error) {
	expr := "SET #status = :status, #completed_date = :completed_date"
	if !completedDate.Valid() {
		expr = "SET #status = :status REMOVE #completed_date"
	}

	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if completedDate.Valid() {
		values[":completed_date"] = &types.AttributeValueMemberS{Value: completedDate.String()}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":         "status",
			"#completed_date": "completed_date",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:            t.ID,
		Username:      t.Username,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		AssignedTo:    t.AssignedTo,
		DateAssigned:  dateString(t.DateAssigned),
		DueDate:       dateString(t.DueDate),
		CompletedDate: dateString(t.CompletedDate),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:            it.ID,
		Username:      it.Username,
		Title:         it.Title,
		Description:   it.Description,
		Status:        entities.TaskStatus(it.Status),
		AssignedTo:    it.AssignedTo,
		DateAssigned:  parseDate(it.DateAssigned),
		DueDate:       parseDate(it.DueDate),
		CompletedDate: parseDate(it.CompletedDate),
	}
}
