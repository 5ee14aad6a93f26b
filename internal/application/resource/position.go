package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// PositionDefinition esquema del recurso Position.
func PositionDefinition() Definition[entity.Position] {
	return Definition[entity.Position]{
		Label:      "Position",
		Plural:     "positions",
		Singular:   "position",
		CreatedKey: "new_position",
		Rules: validate.MustRules(map[string]string{
			"name":      "required|string|max:255",
			"branch_id": "required|integer|exists:branches,id",
		}),
		Messages: validate.Messages{
			"name.required":      "Position name is required.",
			"name.string":        "Position name must be a valid string.",
			"name.max":           "Position name cannot exceed 255 characters.",
			"branch_id.required": "Branch ID is required.",
			"branch_id.integer":  "Branch ID must be an integer.",
			"branch_id.exists":   "The selected branch ID does not exist.",
		},
		Apply: func(rec *entity.Position, in validate.Input) error {
			rec.Name = inString(in, "name")
			rec.BranchID = inInt64(in, "branch_id")
			return nil
		},
	}
}
