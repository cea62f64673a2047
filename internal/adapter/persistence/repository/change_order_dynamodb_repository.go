package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChangeOrdersTableName   = "change_orders"
	changeOrdersApprovalTokenIndex = "approval_token-index"
	changeOrdersStatusIndex        = "status-index"
)

type lineItemItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
}

type changeOrderItem struct {
	ID                  string         `dynamodbav:"id"`
	UserID              string         `dynamodbav:"user_id"`
	ProjectID           string         `dynamodbav:"project_id"`
	ChangeOrderNumber   string         `dynamodbav:"change_order_number"`
	Title               string         `dynamodbav:"title"`
	Description         string         `dynamodbav:"description"`
	Reason              string         `dynamodbav:"reason"`
	Status              string         `dynamodbav:"status"`
	ApprovalToken       string         `dynamodbav:"approval_token"`
	ClientResponse      string         `dynamodbav:"client_response,omitempty"`
	ClientResponseDate  string         `dynamodbav:"client_response_date,omitempty"`
	ClientResponseNotes string         `dynamodbav:"client_response_notes,omitempty"`
	ExpiresAt           string         `dynamodbav:"expires_at"`
	ExpiresAtTS         int64          `dynamodbav:"expires_at_ts"`
	OriginalAmount      float64        `dynamodbav:"original_amount"`
	ChangeAmount        float64        `dynamodbav:"change_amount"`
	NewTotalAmount      float64        `dynamodbav:"new_total_amount"`
	Items               []lineItemItem `dynamodbav:"items,omitempty"`
	ContractorEmail     string         `dynamodbav:"contractor_email,omitempty"`
	BudgetApplied       bool           `dynamodbav:"budget_applied"`
	CreatedAt           string         `dynamodbav:"created_at"`
	UpdatedAt           string         `dynamodbav:"updated_at"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: approval_token-index (PK: approval_token)
//   - GSI: status-index (PK: status)
//
// expires_at_ts duplicates expires_at as an epoch-millis number so the
// sweep's range filter does not depend on string ordering.
//
// All state transitions are conditional single-document updates: a lost race
// surfaces as ConditionalCheckFailed and is reported as a zero entity or a
// false flag, never as an overwrite.

type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	it := toChangeOrderItem(co)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) GetByApprovalToken(ctx context.Context, token string) (entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeOrdersApprovalTokenIndex),
		KeyConditionExpression: aws.String("approval_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) ListPendingExpiredBefore(ctx context.Context, cutoff time.Time) ([]entities.ChangeOrder, error) {
	var (
		results   []entities.ChangeOrder
		exclusive map[string]types.AttributeValue
	)

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(changeOrdersStatusIndex),
			KeyConditionExpression: aws.String("#status = :pending"),
			FilterExpression:       aws.String("expires_at_ts < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
				":cutoff":  &types.AttributeValueMemberN{Value: strconv.FormatInt(cutoff.UTC().UnixMilli(), 10)},
			},
			ExclusiveStartKey: exclusive,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it changeOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			results = append(results, fromChangeOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		exclusive = out.LastEvaluatedKey
	}
	return results, nil
}

// SetClientResponse records the client decision exactly once. The condition
// requires the record to still be pending with no prior response; a second
// attempt fails the condition and comes back as a zero entity.
func (r *ChangeOrderDynamoRepository) SetClientResponse(ctx context.Context, id string, response entities.ClientResponse, respondedAt time.Time, notes string) (entities.ChangeOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending AND attribute_not_exists(#client_response)"),
		UpdateExpression:    aws.String("SET #status = :status, #client_response = :response, #client_response_date = :response_date, #client_response_notes = :notes, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                    "id",
			"#status":                "status",
			"#client_response":       "client_response",
			"#client_response_date":  "client_response_date",
			"#client_response_notes": "client_response_notes",
			"#updated_at":            "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":       &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
			":status":        &types.AttributeValueMemberS{Value: string(response)},
			":response":      &types.AttributeValueMemberS{Value: string(response)},
			":response_date": &types.AttributeValueMemberS{Value: respondedAt.UTC().Format(time.RFC3339Nano)},
			":notes":         &types.AttributeValueMemberS{Value: notes},
			":updated_at":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeOrder{}, nil
		}
		return entities.ChangeOrder{}, err
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

// MarkExpired transitions pending -> expired. False means the record was no
// longer pending (already swept or responded), which the sweep treats as a
// no-op.
func (r *ChangeOrderDynamoRepository) MarkExpired(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :expired, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusPending)},
			":expired":    &types.AttributeValueMemberS{Value: string(entities.ChangeOrderStatusExpired)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetBudgetApplied flips budget_applied once. False means it was already
// set, so a projection retry knows the delta already landed.
func (r *ChangeOrderDynamoRepository) SetBudgetApplied(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #budget_applied = :false"),
		UpdateExpression:    aws.String("SET #budget_applied = :true, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#budget_applied": "budget_applied",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	it := changeOrderItem{
		ID:                  co.ID,
		UserID:              co.UserID,
		ProjectID:           co.ProjectID,
		ChangeOrderNumber:   co.ChangeOrderNumber,
		Title:               co.Title,
		Description:         co.Description,
		Reason:              co.Reason,
		Status:              string(co.Status),
		ApprovalToken:       co.ApprovalToken,
		ClientResponse:      string(co.ClientResponse),
		ClientResponseNotes: co.ClientResponseNotes,
		ExpiresAt:           co.ExpiresAt.UTC().Format(time.RFC3339Nano),
		ExpiresAtTS:         co.ExpiresAt.UTC().UnixMilli(),
		OriginalAmount:      co.OriginalAmount,
		ChangeAmount:        co.ChangeAmount,
		NewTotalAmount:      co.NewTotalAmount,
		Items:               toLineItemItems(co.Items),
		ContractorEmail:     co.ContractorEmail,
		BudgetApplied:       co.BudgetApplied,
		CreatedAt:           co.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           co.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if co.ClientResponseDate != nil {
		it.ClientResponseDate = co.ClientResponseDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	co := entities.ChangeOrder{
		ID:                  it.ID,
		UserID:              it.UserID,
		ProjectID:           it.ProjectID,
		ChangeOrderNumber:   it.ChangeOrderNumber,
		Title:               it.Title,
		Description:         it.Description,
		Reason:              it.Reason,
		Status:              entities.ChangeOrderStatus(it.Status),
		ApprovalToken:       it.ApprovalToken,
		ClientResponse:      entities.ClientResponse(it.ClientResponse),
		ClientResponseNotes: it.ClientResponseNotes,
		ExpiresAt:           expiresAt,
		OriginalAmount:      it.OriginalAmount,
		ChangeAmount:        it.ChangeAmount,
		NewTotalAmount:      it.NewTotalAmount,
		Items:               fromLineItemItems(it.Items),
		ContractorEmail:     it.ContractorEmail,
		BudgetApplied:       it.BudgetApplied,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.ClientResponseDate != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.ClientResponseDate); err == nil {
			co.ClientResponseDate = &dt
		}
	}
	return co
}

func toLineItemItems(items []entities.LineItem) []lineItemItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]lineItemItem, len(items))
	for i, it := range items {
		out[i] = lineItemItem(it)
	}
	return out
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem(it)
	}
	return out
}
