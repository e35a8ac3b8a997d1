package store

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// memDynamo is an in-memory stand-in for DynamoDB, covering exactly what the
// repositories exercise: per-table item maps keyed by id, a SET-clause
// applier with attribute_exists support, and index queries reduced to a
// single equality match.
type memDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func newMemDynamo(tables ...string) *memDynamo {
	m := &memDynamo{tables: make(map[string]map[string]map[string]types.AttributeValue)}
	for _, t := range tables {
		m.tables[t] = make(map[string]map[string]types.AttributeValue)
	}
	return m
}

var _ DynamoAPI = (*memDynamo)(nil)

func (m *memDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := m.tables[aws.ToString(name)]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		m.tables[aws.ToString(name)] = t
	}
	return t
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (m *memDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []map[string]types.AttributeValue
	for _, item := range m.table(params.TableName) {
		items = append(items, copyItem(item))
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

// Query honors only a single "#n = :n" equality key condition, which is all
// the book repository ever issues against the author index.
func (m *memDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	nameRef, valueRef, ok := strings.Cut(aws.ToString(params.KeyConditionExpression), " = ")
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("unsupported key condition")}
	}
	attr := params.ExpressionAttributeNames[strings.TrimSpace(nameRef)]
	want, _ := params.ExpressionAttributeValues[strings.TrimSpace(valueRef)].(*types.AttributeValueMemberS)
	if want == nil {
		return nil, &types.ResourceNotFoundException{Message: aws.String("unsupported key value")}
	}

	var items []map[string]types.AttributeValue
	for _, item := range m.table(params.TableName) {
		if stringAttr(item, attr) == want.Value {
			items = append(items, copyItem(item))
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (m *memDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.table(params.TableName)[stringAttr(params.Key, "id")]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (m *memDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.table(params.TableName)
	id := stringAttr(params.Item, "id")
	out := &dynamodb.PutItemOutput{}
	if old, ok := table[id]; ok && params.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = copyItem(old)
	}
	table[id] = copyItem(params.Item)
	return out, nil
}

func (m *memDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := m.table(params.TableName)
	id := stringAttr(params.Key, "id")
	item, ok := table[id]
	if !ok {
		if strings.Contains(aws.ToString(params.ConditionExpression), "attribute_exists") {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("item does not exist")}
		}
		item = copyItem(params.Key)
		table[id] = item
	}

	clauses := strings.TrimPrefix(aws.ToString(params.UpdateExpression), "SET ")
	for _, clause := range strings.Split(clauses, ", ") {
		nameRef, valueRef, ok := strings.Cut(clause, " = ")
		if !ok {
			return nil, &types.ResourceNotFoundException{Message: aws.String("unsupported update clause")}
		}
		attr := params.ExpressionAttributeNames[strings.TrimSpace(nameRef)]
		item[attr] = params.ExpressionAttributeValues[strings.TrimSpace(valueRef)]
	}

	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

func (m *memDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.table(params.TableName), stringAttr(params.Key, "id"))
	return &dynamodb.DeleteItemOutput{}, nil
}
