package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// InvoiceDefinition esquema del recurso Invoice. Solo user_id es editable;
// total lo mantienen los procesos de datos, no este CRUD.
func InvoiceDefinition() Definition[entity.Invoice] {
	return Definition[entity.Invoice]{
		Label:      "Invoice",
		Plural:     "invoices",
		Singular:   "invoice",
		CreatedKey: "new_invoice",
		Rules: validate.MustRules(map[string]string{
			"user_id": "required|integer|exists:users,id",
		}),
		Messages: validate.Messages{
			"user_id.required": "User ID is required.",
			"user_id.integer":  "User ID must be an integer.",
			"user_id.exists":   "The selected User ID does not exist.",
		},
		Apply: func(rec *entity.Invoice, in validate.Input) error {
			rec.UserID = inInt64(in, "user_id")
			return nil
		},
	}
}
