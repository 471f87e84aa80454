package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rhenando/hyperpay-api/internal/domain"
)

// DynamoDB caps BatchWriteItem at 25 requests per call.
const batchWriteLimit = 25

type CartRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewCartRepository(client *dynamodb.Client, tableName string) *CartRepository {
	return &CartRepository{
		client:    client,
		tableName: tableName,
	}
}

// ListItems reads every cart item for the buyer that belongs to the given
// supplier. An empty result is not an error.
func (r *CartRepository) ListItems(ctx context.Context, buyerID, supplierID string) ([]domain.CartItem, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		FilterExpression:       aws.String("supplier_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":  &types.AttributeValueMemberS{Value: fmt.Sprintf("CART#%s", buyerID)},
			":sk":  &types.AttributeValueMemberS{Value: "ITEM#"},
			":sid": &types.AttributeValueMemberS{Value: supplierID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}

	items := make([]domain.CartItem, 0, len(out.Items))
	for _, av := range out.Items {
		var item domain.CartItem
		if err := attributevalue.UnmarshalMap(av, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteItems removes the given items from the buyer's cart in batches.
// Deleting an item that is already gone is a no-op at the store level, which
// is what keeps a retried fulfillment harmless.
func (r *CartRepository) DeleteItems(ctx context.Context, buyerID string, items []domain.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("CART#%s", buyerID)},
					"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ITEM#%s", item.ItemID)},
				},
			},
		})
	}

	for start := 0; start < len(requests); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(requests) {
			end = len(requests)
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: requests[start:end],
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
	}
	return nil
}
