package store

import (
	"audio-joiner/src/application/history/entity"
	"audio-joiner/src/lib/cerr"
	"audio-joiner/src/lib/env"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

const idField = "batch_id"

var _ entity.BatchStore = DynamoDBBatchStore{}

func NewDynamoDBBatchStore(environment env.Environment, region string, tableName string) DynamoDBBatchStore {
	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().WithRegion(region).WithCredentials(credentials.NewEnvCredentials())

	if environment == env.Development {
		config = config.WithEndpoint("http://localhost:8000")
	}

	client := dynamodb.New(dbSession, config)
	return DynamoDBBatchStore{
		dynamoDBClient: client,
		tableName:      tableName,
	}
}

type DynamoDBBatchStore struct {
	dynamoDBClient *dynamodb.DynamoDB
	tableName      string
}

func (d DynamoDBBatchStore) SaveBatch(ctx context.Context, record entity.BatchRecord) error {
	errctx := cerr.Field("batch_id", record.BatchID).Field("table_name", d.tableName)

	item, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to marshal batch record")
	}

	_, err = d.dynamoDBClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      item,
		TableName: aws.String(d.tableName),
	})
	if err != nil {
		return errctx.Wrap(err).Error("Failed to put batch record into DynamoDB")
	}

	return nil
}

func (d DynamoDBBatchStore) GetBatch(ctx context.Context, batchID string) (entity.BatchRecord, error) {
	errctx := cerr.Field("batch_id", batchID).Field("table_name", d.tableName)

	output, err := d.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		ConsistentRead: aws.Bool(true),
		Key:            makeKey(batchID),
		TableName:      aws.String(d.tableName),
	})
	if err != nil {
		return entity.BatchRecord{}, errctx.Wrap(err).Error("Failed to get batch record from DynamoDB")
	}

	if output.Item == nil {
		return entity.BatchRecord{}, errctx.Error("No batch record found")
	}

	record := entity.BatchRecord{}
	if err = dynamodbattribute.UnmarshalMap(output.Item, &record); err != nil {
		return entity.BatchRecord{}, errctx.Wrap(err).Error("Failed to unmarshal batch record")
	}

	return record, nil
}

func makeKey(key string) map[string]*dynamodb.AttributeValue {
	attributeValue := dynamodb.AttributeValue{}
	attributeValue.SetS(key)
	return map[string]*dynamodb.AttributeValue{
		idField: &attributeValue,
	}
}
