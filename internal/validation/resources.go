package validation

import (
	"task-manager-crud/internal/domain"
)

// TaskSchema validates task payloads. Completed can only be changed by an
// update; new tasks always start incomplete.
func TaskSchema() *Schema[domain.Task] {
	return NewSchema(
		RequiredString("title", "Title", func(t *domain.Task, v string) { t.Title = v }),
		Bool("completed", "Completed", func(t *domain.Task, v bool) { t.Completed = v }).UpdateOnly(),
	)
}

// UserSchema validates user payloads
func UserSchema() *Schema[domain.User] {
	roles := make([]string, len(domain.Roles))
	for i, r := range domain.Roles {
		roles[i] = string(r)
	}

	return NewSchema(
		RequiredString("name", "Name", func(u *domain.User, v string) { u.Name = v }),
		RequiredString("email", "Email", func(u *domain.User, v string) { u.Email = v }),
		Enum("role", roles, string(domain.DefaultRole), func(u *domain.User, v string) { u.Role = domain.Role(v) }),
	)
}

// ProductSchema validates product payloads
func ProductSchema() *Schema[domain.Product] {
	return NewSchema(
		RequiredString("name", "Name", func(p *domain.Product, v string) { p.Name = v }),
		RequiredString("description", "Description", func(p *domain.Product, v string) { p.Description = v }),
		NonNegativeNumber("price", "Price", func(p *domain.Product, v float64) { p.Price = v }),
		NonNegativeInt("stock", "Stock", func(p *domain.Product, v int) { p.Stock = v }),
		RequiredString("category", "Category", func(p *domain.Product, v string) { p.Category = v }),
	)
}
