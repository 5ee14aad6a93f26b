package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// CategoryDefinition esquema del recurso Category. Description es opcional:
// si no viene en el update se conserva la existente.
func CategoryDefinition() Definition[entity.Category] {
	return Definition[entity.Category]{
		Label:      "Category",
		Plural:     "categories",
		Singular:   "category",
		CreatedKey: "new_category",
		Rules: validate.MustRules(map[string]string{
			"name":        "required|string|max:255",
			"description": "nullable|string|max:1000",
		}),
		Messages: validate.Messages{
			"name.required": "Category name is not allowed to be null.",
		},
		Apply: func(rec *entity.Category, in validate.Input) error {
			rec.Name = inString(in, "name")
			if desc := inNullString(in, "description"); desc != nil {
				rec.Description = desc
			}
			return nil
		},
	}
}
