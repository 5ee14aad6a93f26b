package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// InvoiceItemDefinition esquema del recurso InvoiceItem. Total es columna
// generada (qty * price) y no se escribe desde aquí.
func InvoiceItemDefinition() Definition[entity.InvoiceItem] {
	return Definition[entity.InvoiceItem]{
		Label:      "InvoiceItem",
		Plural:     "invoiceItems",
		Singular:   "invoiceItem",
		CreatedKey: "new_invoice_item",
		Rules: validate.MustRules(map[string]string{
			"invoice_id": "required|integer|exists:invoices,id",
			"product_id": "required|integer|exists:products,id",
			"qty":        "required|numeric|min:0",
			"price":      "required|numeric|min:0",
		}),
		Messages: validate.Messages{
			"invoice_id.required": "Invoice ID is required.",
			"invoice_id.integer":  "Invoice ID must be an integer.",
			"invoice_id.exists":   "The selected Invoice ID does not exist.",
			"product_id.required": "Product ID is required.",
			"product_id.integer":  "Product ID must be an integer.",
			"product_id.exists":   "The selected Product ID does not exist.",
			"qty.required":        "Qty is required.",
			"qty.numeric":         "Qty must be a number.",
			"qty.min":             "Qty must be greater than or equal to 0.",
			"price.required":      "Price is required.",
			"price.numeric":       "Price must be a number.",
			"price.min":           "Price must be greater than or equal to 0.",
		},
		Apply: func(rec *entity.InvoiceItem, in validate.Input) error {
			rec.InvoiceID = inInt64(in, "invoice_id")
			rec.ProductID = inInt64(in, "product_id")
			rec.Qty = inDecimal(in, "qty")
			rec.Price = inDecimal(in, "price")
			return nil
		},
	}
}
