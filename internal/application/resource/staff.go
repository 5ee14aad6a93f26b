package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// StaffDefinition esquema del recurso Staff. Gender es el único campo
// opcional; el resto del juego completo es obligatorio también en update.
func StaffDefinition() Definition[entity.Staff] {
	return Definition[entity.Staff]{
		Label:      "Staff",
		Plural:     "staffs",
		Singular:   "staff",
		CreatedKey: "new_staff",
		Rules: validate.MustRules(map[string]string{
			"position_id":    "required|integer|exists:positions,id",
			"name":           "required|string|max:255",
			"gender":         "nullable|string",
			"dob":            "required|string",
			"pob":            "required|string",
			"address":        "required|string",
			"phone":          "required|string",
			"nation_id_card": "required|string",
		}),
		Messages: validate.Messages{
			"position_id.required":    "Position ID is required.",
			"position_id.integer":     "Position ID must be an integer.",
			"position_id.exists":      "The selected position ID does not exist.",
			"name.required":           "Staff name is not allowed to be null.",
			"dob.required":            "dob is not allowed to be null.",
			"pob.required":            "pob is not allowed to be null.",
			"address.required":        "Address is not allowed to be null.",
			"phone.required":          "Phone is not allowed to be null.",
			"nation_id_card.required": "Nation_id_card is not allowed to be null.",
		},
		Apply: func(rec *entity.Staff, in validate.Input) error {
			rec.PositionID = inInt64(in, "position_id")
			rec.Name = inString(in, "name")
			rec.Gender = inNullString(in, "gender")
			rec.DOB = inString(in, "dob")
			rec.POB = inString(in, "pob")
			rec.Address = inString(in, "address")
			rec.Phone = inString(in, "phone")
			rec.NationIDCard = inString(in, "nation_id_card")
			return nil
		},
	}
}
