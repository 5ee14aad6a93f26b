package resource

import (
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// ProductDefinition esquema del recurso Product. category_id debe referenciar
// una categoría activa (exists ignora registros en papelera).
func ProductDefinition() Definition[entity.Product] {
	return Definition[entity.Product]{
		Label:      "Product",
		Plural:     "products",
		Singular:   "product",
		CreatedKey: "new_product",
		Rules: validate.MustRules(map[string]string{
			"product_name": "required|string|max:255",
			"price":        "required|numeric|min:0",
			"cost":         "required|numeric|min:0",
			"category_id":  "required|integer|exists:categories,id",
		}),
		Messages: validate.Messages{
			"product_name.required": "Product name is required.",
			"product_name.string":   "Product name must be a valid string.",
			"product_name.max":      "Product name cannot exceed 255 characters.",
			"price.required":        "Price is required.",
			"price.numeric":         "Price must be a number.",
			"price.min":             "Price must be greater than or equal to 0.",
			"cost.required":         "Cost is required.",
			"cost.numeric":          "Cost must be a number.",
			"cost.min":              "Cost must be at least 0.",
			"category_id.required":  "Category ID is required.",
			"category_id.integer":   "Category ID must be an integer.",
			"category_id.exists":    "The selected category ID does not exist.",
		},
		Apply: func(rec *entity.Product, in validate.Input) error {
			rec.ProductName = inString(in, "product_name")
			rec.Price = inDecimal(in, "price")
			rec.Cost = inDecimal(in, "cost")
			rec.CategoryID = inInt64(in, "category_id")
			return nil
		},
	}
}
