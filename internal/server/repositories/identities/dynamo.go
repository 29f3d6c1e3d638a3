package identities

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/server/models"
)

// DynamoAPI is the subset of the DynamoDB client the repository uses.
// Narrowing it to an interface lets tests substitute a fake client.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoRepository persists identities in a DynamoDB table.
type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) Put(ctx context.Context, identity *models.Identity) error {
	item, err := attributevalue.MarshalMap(identity)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	return nil
}

func (r *DynamoRepository) List(ctx context.Context) ([]*models.Identity, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.table)})
}

func (r *DynamoRepository) FindByUsername(ctx context.Context, username string) ([]*models.Identity, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
}

// scan drains the paginator, so result sets larger than one response page
// still come back complete.
func (r *DynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]*models.Identity, error) {
	var out []*models.Identity

	p := dynamodb.NewScanPaginator(r.client, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
		}

		var items []*models.Identity
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
		}
		out = append(out, items...)
	}

	return out, nil
}
