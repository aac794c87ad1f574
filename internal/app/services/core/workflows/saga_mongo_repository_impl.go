package workflows

import (
	"context"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/models"
	"mortuary-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sagaCollectionName = "workflow_sagas"

type SagaMongoRepository struct {
	DB *mongo.Database
}

func NewSagaMongoRepository(db *mongo.Database) contracts.SagaRepository {
	return &SagaMongoRepository{
		DB: db,
	}
}

func (r *SagaMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(sagaCollectionName)
}

func (r *SagaMongoRepository) InsertSaga(ctx context.Context, saga *models.Saga) error {
	_, err := r.collection().InsertOne(ctx, saga)
	if err != nil {
		return exceptions.ErrMongoInsert(err)
	}
	return nil
}

func (r *SagaMongoRepository) UpdateSaga(ctx context.Context, saga *models.Saga) error {
	filter := bson.M{"_id": saga.ID}
	_, err := r.collection().ReplaceOne(ctx, filter, saga)
	if err != nil {
		return exceptions.ErrMongoUpdate(err)
	}
	return nil
}

func (r *SagaMongoRepository) FindSagaByID(ctx context.Context, sagaID string) (*models.Saga, error) {
	saga := new(models.Saga)
	err := r.collection().FindOne(ctx, bson.M{"_id": sagaID}).Decode(saga)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrSagaNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	return saga, nil
}

func (r *SagaMongoRepository) FindSagasByPatient(ctx context.Context, patientUUID string) ([]models.Saga, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{"patientUuid": patientUUID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	defer cursor.Close(ctx)

	sagas := []models.Saga{}
	if err := cursor.All(ctx, &sagas); err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	return sagas, nil
}
