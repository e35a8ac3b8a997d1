package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// mockDynamo is a function-field double for DynamoAPI. Any operation without
// a configured function fails the test.
type mockDynamo struct {
	t          *testing.T
	ScanFunc   func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	QueryFunc  func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	GetFunc    func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutFunc    func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateFunc func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteFunc func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoAPI = (*mockDynamo)(nil)

func newMockDynamo(t *testing.T) *mockDynamo {
	return &mockDynamo{t: t}
}

func (m *mockDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFunc == nil {
		m.t.Fatal("unexpected Scan call")
	}
	return m.ScanFunc(ctx, params, optFns...)
}

func (m *mockDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if m.QueryFunc == nil {
		m.t.Fatal("unexpected Query call")
	}
	return m.QueryFunc(ctx, params, optFns...)
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetFunc == nil {
		m.t.Fatal("unexpected GetItem call")
	}
	return m.GetFunc(ctx, params, optFns...)
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutFunc == nil {
		m.t.Fatal("unexpected PutItem call")
	}
	return m.PutFunc(ctx, params, optFns...)
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if m.UpdateFunc == nil {
		m.t.Fatal("unexpected UpdateItem call")
	}
	return m.UpdateFunc(ctx, params, optFns...)
}

func (m *mockDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteFunc == nil {
		m.t.Fatal("unexpected DeleteItem call")
	}
	return m.DeleteFunc(ctx, params, optFns...)
}
