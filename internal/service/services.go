package service

import (
	"context"

	"task-manager-crud/internal/domain"
	"task-manager-crud/internal/repository"
	"task-manager-crud/internal/validation"
)

var (
	TaskResource    = Resource{Singular: "task", Plural: "tasks", Title: "Task"}
	UserResource    = Resource{Singular: "user", Plural: "users", Title: "User"}
	ProductResource = Resource{Singular: "product", Plural: "products", Title: "Product"}
)

// Services groups one service per resource kind.
type Services struct {
	Tasks    ResourceService[domain.Task]
	Users    ResourceService[domain.User]
	Products ResourceService[domain.Product]
}

// Stats is a count of stored values per resource kind.
type Stats struct {
	Tasks    int `json:"tasks"`
	Users    int `json:"users"`
	Products int `json:"products"`
}

// NewServices wires every resource kind to its own empty in-memory repository.
func NewServices(opts ...repository.Option) *Services {
	return &Services{
		Tasks: NewResourceService(TaskResource, validation.TaskSchema(),
			repository.NewMemoryRepository[domain.Task](opts...)),
		Users: NewResourceService(UserResource, validation.UserSchema(),
			repository.NewMemoryRepository[domain.User](opts...)),
		Products: NewResourceService(ProductResource, validation.ProductSchema(),
			repository.NewMemoryRepository[domain.Product](opts...)),
	}
}

// Stats counts stored values across all resource kinds.
func (s *Services) Stats(ctx context.Context) Stats {
	return Stats{
		Tasks:    s.Tasks.Count(ctx),
		Users:    s.Users.Count(ctx),
		Products: s.Products.Count(ctx),
	}
}
