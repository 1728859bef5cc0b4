package service

import (
	"context"
	"errors"
	"fmt"

	"task-manager-crud/internal/repository"
	"task-manager-crud/internal/validation"
)

var (
	ErrNotFound = errors.New("resource not found")
)

// Resource names one resource kind for routes, messages and logs.
type Resource struct {
	Singular string // "task"
	Plural   string // "tasks", also the route segment
	Title    string // "Task"
}

// ResourceService defines the business operations shared by every resource kind
type ResourceService[T any] interface {
	// Resource describes the kind this service manages.
	Resource() Resource

	// Create validates fields against the schema and stores a new value.
	//
	// It returns a *validation.FieldError for the first rejected field.
	Create(ctx context.Context, fields validation.Fields) (T, error)

	// List returns every value, newest first.
	List(ctx context.Context) ([]T, error)

	// Get returns ErrNotFound if no value has the given id.
	Get(ctx context.Context, id string) (T, error)

	// Update applies only the fields present. Validation runs before the
	// stored value is touched, so a rejected update changes nothing.
	//
	// It returns a *validation.FieldError or ErrNotFound.
	Update(ctx context.Context, id string, fields validation.Fields) (T, error)

	// Delete returns ErrNotFound if no value has the given id.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored values.
	Count(ctx context.Context) int
}

type resourceService[T any] struct {
	resource Resource
	schema   *validation.Schema[T]
	repo     repository.Repository[T]
}

// NewResourceService creates a new instance of ResourceService
func NewResourceService[T any](resource Resource, schema *validation.Schema[T], repo repository.Repository[T]) ResourceService[T] {
	return &resourceService[T]{
		resource: resource,
		schema:   schema,
		repo:     repo,
	}
}

func (s *resourceService[T]) Resource() Resource {
	return s.resource
}

func (s *resourceService[T]) Create(ctx context.Context, fields validation.Fields) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", s.resource.Singular, err)
	}

	value, err := s.schema.Build(fields)
	if err != nil {
		return zero, err
	}

	return s.repo.Create(value), nil
}

func (s *resourceService[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.resource.Plural, err)
	}
	return s.repo.GetAll(), nil
}

func (s *resourceService[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("failed to get %s: %w", s.resource.Singular, err)
	}

	value, ok := s.repo.GetByID(id)
	if !ok {
		return zero, ErrNotFound
	}
	return value, nil
}

func (s *resourceService[T]) Update(ctx context.Context, id string, fields validation.Fields) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", s.resource.Singular, err)
	}

	patch, err := s.schema.Patch(fields)
	if err != nil {
		return zero, err
	}

	value, ok := s.repo.Update(id, patch)
	if !ok {
		return zero, ErrNotFound
	}
	return value, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.resource.Singular, err)
	}

	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}

func (s *resourceService[T]) Count(_ context.Context) int {
	return s.repo.Len()
}
