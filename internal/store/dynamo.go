// Package store implements the repository contracts on top of DynamoDB,
// one table per entity with the id attribute as the primary key.
package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client the repositories call.
// The SDK client satisfies it; tests substitute doubles.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Tables holds the table and index names the repositories address.
type Tables struct {
	Homes            string
	Authors          string
	Books            string
	BooksAuthorIndex string
}

// Repositories bundles one repository per entity, all sharing a client.
type Repositories struct {
	Homes   *HomeDynamo
	Authors *AuthorDynamo
	Books   *BookDynamo
}

// NewRepositories constructs the entity repositories over db.
func NewRepositories(db DynamoAPI, t Tables) Repositories {
	return Repositories{
		Homes:   NewHomeDynamo(db, t.Homes),
		Authors: NewAuthorDynamo(db, t.Authors),
		Books:   NewBookDynamo(db, t.Books, t.BooksAuthorIndex),
	}
}

// NewClient builds a DynamoDB client from the ambient AWS configuration.
// A non-empty endpoint overrides the resolved one, which is how local
// development and integration tests reach DynamoDB Local.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
