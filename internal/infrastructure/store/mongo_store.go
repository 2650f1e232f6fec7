package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhub/internal/domain/contract"
	usecasecontract "stayhub/internal/usecase/contract"
)

// kvDocument is how one blob is stored: the key as _id and the JSON
// payload as a string value.
type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore keeps every blob as a document in a single kv collection.
type MongoStore struct {
	collection *mongo.Collection
	logger     usecasecontract.IAppLogger
}

var _ contract.KVStore = (*MongoStore)(nil)

// NewMongoClient establishes a MongoDB connection.
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// NewMongoStore creates a KVStore over the kv collection of the given
// database.
func NewMongoStore(db *mongo.Database, logger usecasecontract.IAppLogger) *MongoStore {
	return &MongoStore{collection: db.Collection("kv"), logger: logger}
}

func (s *MongoStore) Get(ctx context.Context, key string, dest interface{}) bool {
	var doc kvDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Errorf("mongo store: reading %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(doc.Value), dest); err != nil {
		s.logger.Errorf("mongo store: decoding %s: %v", key, err)
		return false
	}
	return true
}

func (s *MongoStore) Set(ctx context.Context, key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf("mongo store: encoding %s: %v", key, err)
		return false
	}
	doc := kvDocument{Key: key, Value: string(raw)}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		s.logger.Errorf("mongo store: writing %s: %v", key, err)
		return false
	}
	return true
}

func (s *MongoStore) Remove(ctx context.Context, key string) bool {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		s.logger.Errorf("mongo store: removing %s: %v", key, err)
		return false
	}
	return true
}

func (s *MongoStore) Clear(ctx context.Context) bool {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		s.logger.Errorf("mongo store: clearing: %v", err)
		return false
	}
	return true
}
