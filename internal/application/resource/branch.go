package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// BranchDefinition esquema del recurso Branch.
func BranchDefinition() Definition[entity.Branch] {
	return Definition[entity.Branch]{
		Label:      "Branch",
		Plural:     "branches",
		Singular:   "branch",
		CreatedKey: "new_branch",
		Rules: validate.MustRules(map[string]string{
			"name":           "required|string|max:255",
			"location":       "required|string|max:255",
			"contact_number": "required|string|max:20",
		}),
		Messages: validate.Messages{
			"name.required":           "Branch name is not allowed to be null.",
			"location.required":       "Branch location is not allowed to be null.",
			"contact_number.required": "Contact number is not allowed to be null.",
		},
		Apply: func(rec *entity.Branch, in validate.Input) error {
			rec.Name = inString(in, "name")
			rec.Location = inString(in, "location")
			rec.ContactNumber = inString(in, "contact_number")
			return nil
		},
	}
}
