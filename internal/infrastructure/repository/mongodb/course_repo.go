package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository stores courses with their lectures embedded in the same document.
type CourseRepository struct {
	collection *mongo.Collection
}

var _ contract.ICourseRepository = (*CourseRepository)(nil)

// NewCourseRepository creates and returns a new CourseRepository instance.
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{
		collection: db.Collection("courses"),
	}
}

// CreateCourse inserts a new course document.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	if _, err := r.collection.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a course including its lectures.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to retrieve course with ID %s: %w", id, err)
	}
	return &course, nil
}

// ListCourses retrieves every course, newest first, without lectures.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]entity.Course, error) {
	opts := options.Find().
		SetProjection(bson.M{"lectures": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]entity.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// SaveCourse replaces the stored document with the given course.
func (r *CourseRepository) SaveCourse(ctx context.Context, course *entity.Course) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.ID, err)
	}
	if result.MatchedCount == 0 {
		return contract.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course document.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return contract.ErrCourseNotFound
	}
	return nil
}
