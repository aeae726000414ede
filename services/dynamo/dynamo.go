package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gpng/quip-bot/models"
)

// attribute names
const (
	attrID      = "id"
	attrMessage = "message"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// QuipStore keeps quips in a DynamoDB table keyed by the string attribute id
type QuipStore struct {
	client dynamoAPI
	table  string
}

// New store using the default credential chain
func New(ctx context.Context, region string, table string) (*QuipStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &QuipStore{client: dynamodb.NewFromConfig(cfg), table: table}, nil
}

// Put writes quip
func (s *QuipStore) Put(ctx context.Context, quip models.Quip) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			attrID:      &types.AttributeValueMemberS{Value: quip.ID},
			attrMessage: &types.AttributeValueMemberS{Value: quip.Text},
		},
	})
	if err != nil {
		return fmt.Errorf("put quip %s: %w", quip.ID, err)
	}
	return nil
}

// Scan reads a single page. Items without string id and message attributes
// are skipped.
func (s *QuipStore) Scan(ctx context.Context) ([]models.Quip, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scan quips: %w", err)
	}

	quips := make([]models.Quip, 0, len(out.Items))
	for _, item := range out.Items {
		id, ok := stringAttr(item, attrID)
		if !ok {
			continue
		}
		text, ok := stringAttr(item, attrMessage)
		if !ok {
			continue
		}
		quips = append(quips, models.Quip{ID: id, Text: text})
	}
	return quips, nil
}

// Delete removes the quip with id, missing ids are fine
func (s *QuipStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete quip %s: %w", id, err)
	}
	return nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, bool) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return v.Value, true
}
