package resource

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// UserDefinition esquema del recurso User. La contraseña llega en claro,
// se valida como string y se persiste hasheada con bcrypt tanto en create
// como en update.
func UserDefinition() Definition[entity.User] {
	return Definition[entity.User]{
		Label:      "User",
		Plural:     "users",
		Singular:   "user",
		CreatedKey: "new_user",
		Rules: validate.MustRules(map[string]string{
			"name":     "required|string|max:255",
			"password": "required|string|max:255",
			"staff_id": "required|integer|exists:staff,id",
		}),
		Messages: validate.Messages{
			"name.required":     "User name is required.",
			"name.string":       "User name must be a valid string.",
			"name.max":          "User name cannot exceed 255 characters.",
			"password.required": "Password is required.",
			"password.string":   "Password must be a valid string.",
			"password.max":      "Password cannot exceed 255 characters.",
			"staff_id.required": "Staff ID is required.",
			"staff_id.integer":  "Staff ID must be an integer.",
			"staff_id.exists":   "The selected staff ID does not exist.",
		},
		Apply: func(rec *entity.User, in validate.Input) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(inString(in, "password")), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			rec.Name = inString(in, "name")
			rec.PasswordHash = string(hash)
			rec.StaffID = inInt64(in, "staff_id")
			return nil
		},
	}
}
