package repository

import (
	"context"
	"fmt"
	"time"

	"talentops/internal/core"
	client "talentops/internal/database/client"
	"talentops/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Collection(core.MongoCollectionEmployees),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return err
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	if employee.Status == "" {
		employee.Status = core.EmployeeActive
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, translateError(returnedError, "employee", employeeIdentifier)
	}
	return &employee, nil
}

func (repository *EmployeeRepository) ListByReportTo(contextValue context.Context, leadIdentifier primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	return repository.list(contextValue, bson.M{"reportToEmployeeId": leadIdentifier})
}

func (repository *EmployeeRepository) ListByRoles(contextValue context.Context, roles ...core.EmployeeRole) (_ []*model.Employee, returnedError error) {
	if len(roles) == 0 {
		return nil, nil
	}
	return repository.list(contextValue, bson.M{"role": bson.M{"$in": roles}})
}

func (repository *EmployeeRepository) list(contextValue context.Context, filter bson.M) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	return decodeAll[model.Employee](contextValue, cursor)
}
