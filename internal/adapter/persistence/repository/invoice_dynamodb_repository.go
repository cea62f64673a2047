package repository

import (
	"context"
	"errors"
	"time"

	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesUserIDIndex      = "user_id-index"
)

type invoiceItem struct {
	ID            string         `dynamodbav:"id"`
	UserID        string         `dynamodbav:"user_id"`
	ProjectID     string         `dynamodbav:"project_id,omitempty"`
	ClientID      string         `dynamodbav:"client_id,omitempty"`
	InvoiceNumber string         `dynamodbav:"invoice_number"`
	Status        string         `dynamodbav:"status"`
	Items         []lineItemItem `dynamodbav:"items,omitempty"`
	TaxRate       float64        `dynamodbav:"tax_rate"`
	Subtotal      float64        `dynamodbav:"subtotal"`
	Tax           float64        `dynamodbav:"tax"`
	Total         float64        `dynamodbav:"total"`
	AmountPaid    float64        `dynamodbav:"amount_paid"`
	Balance       float64        `dynamodbav:"balance"`
	DueDate       string         `dynamodbav:"due_date"`
	PaidDate      string         `dynamodbav:"paid_date,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
	UpdatedAt     string         `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// UpdatePaymentState writes all derived ledger fields in one document
// update, so the invoice never carries a stale balance next to a fresh
// amount_paid.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func (r *InvoiceDynamoRepository) UpdatePaymentState(ctx context.Context, id string, amountPaid, balance float64, status entities.InvoiceStatus, paidDate *time.Time) (entities.Invoice, error) {
	updateExpr := "SET #amount_paid = :amount_paid, #balance = :balance, #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":amount_paid": &types.AttributeValueMemberN{Value: floatToString(amountPaid)},
		":balance":     &types.AttributeValueMemberN{Value: floatToString(balance)},
		":status":      &types.AttributeValueMemberS{Value: string(status)},
		":updated_at":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#id":          "id",
		"#amount_paid": "amount_paid",
		"#balance":     "balance",
		"#status":      "status",
		"#updated_at":  "updated_at",
	}
	if paidDate != nil {
		updateExpr += ", #paid_date = :paid_date"
		values[":paid_date"] = &types.AttributeValueMemberS{Value: paidDate.UTC().Format(time.RFC3339Nano)}
		names["#paid_date"] = "paid_date"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:            inv.ID,
		UserID:        inv.UserID,
		ProjectID:     inv.ProjectID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		Items:         toLineItemItems(inv.Items),
		TaxRate:       inv.TaxRate,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		AmountPaid:    inv.AmountPaid,
		Balance:       inv.Balance,
		DueDate:       inv.DueDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if inv.PaidDate != nil {
		it.PaidDate = inv.PaidDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	inv := entities.Invoice{
		ID:            it.ID,
		UserID:        it.UserID,
		ProjectID:     it.ProjectID,
		ClientID:      it.ClientID,
		InvoiceNumber: it.InvoiceNumber,
		Status:        entities.InvoiceStatus(it.Status),
		Items:         fromLineItemItems(it.Items),
		TaxRate:       it.TaxRate,
		Subtotal:      it.Subtotal,
		Tax:           it.Tax,
		Total:         it.Total,
		AmountPaid:    it.AmountPaid,
		Balance:       it.Balance,
		DueDate:       dueDate,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.PaidDate != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.PaidDate); err == nil {
			inv.PaidDate = &dt
		}
	}
	return inv
}
