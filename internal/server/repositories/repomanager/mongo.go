package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "taskkeeper"

// MongoRepositoryManager vends repositories backed by a MongoDB database.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  users.Repository
	tasks  tasks.Repository

	userColl *mongo.Collection
}

func NewMongoRepositoryManager(ctx context.Context, dsn string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	db := client.Database(mongoDatabase)
	userColl := db.Collection("users")

	return &MongoRepositoryManager{
		client:   client,
		users:    users.NewMongoRepository(userColl),
		tasks:    tasks.NewMongoRepository(db.Collection("tasks")),
		userColl: userColl,
	}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

// RunMigrations ensures the unique email index that backs duplicate-email
// detection at write time.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	_, err := m.userColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
