// seed aplica el esquema y repobla las tablas con los datos de ejemplo del
// mart (sucursal FakeMart, categorías, productos, cargos, empleados,
// usuarios y facturas).
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca migrations/schema.sql en el directorio actual.
// ADVERTENCIA: trunca todas las tablas antes de insertar.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fakemart-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fakemart-api/pkg/config"
)

func main() {
	schemaPath := "migrations/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fail("leer esquema", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("aplicar esquema", err)
	}

	if _, err := pool.Exec(ctx, `
		TRUNCATE branches, categories, products, positions, staff, users, invoices, invoice_items
		RESTART IDENTITY`); err != nil {
		fail("truncar tablas", err)
	}

	// Las contraseñas se almacenan hasheadas con bcrypt.
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear contraseña", err)
	}
	saleHash, err := bcrypt.GenerateFromPassword([]byte("sale123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear contraseña", err)
	}

	statements := []struct {
		desc string
		sql  string
		args []any
	}{
		{"branches", `INSERT INTO branches (name, location, contact_number)
			VALUES ('FakeMart', 'PhnomPenh', '0987654321')`, nil},
		{"categories", `INSERT INTO categories (name, description) VALUES
			('Beverages', 'Drinks and refreshments'),
			('Snacks', 'Sweet and salty snacks')`, nil},
		{"products", `INSERT INTO products (product_name, cost, price, category_id) VALUES
			('Coca Cola', 0.25, 0.50, 1),
			('Lays Chips', 0.30, 0.60, 2)`, nil},
		{"positions", `INSERT INTO positions (name, branch_id) VALUES
			('Admin', 1),
			('Sale', 1)`, nil},
		{"staff", `INSERT INTO staff (position_id, name, gender, dob, pob, address, phone, nation_id_card) VALUES
			(1, 'Sok Dara', 'Male', '1990-01-01', 'Phnom Penh', 'Street 123, Phnom Penh', '012345678', 'N123456789'),
			(2, 'Chan Srey', 'Female', '1995-05-15', 'Siem Reap', 'Street 456, Siem Reap', '098765432', 'ID987654321')`, nil},
		{"users", `INSERT INTO users (name, password, staff_id) VALUES ($1, $2, 1), ($3, $4, 2)`,
			[]any{"admin", string(adminHash), "sale", string(saleHash)}},
		{"invoices", `INSERT INTO invoices (user_id, total) VALUES (1, 1.60), (2, 0.60)`, nil},
		{"invoice_items", `INSERT INTO invoice_items (invoice_id, product_id, qty, price) VALUES
			(1, 1, 2, 0.50),
			(1, 2, 1, 0.60),
			(2, 2, 1, 0.60)`, nil},
	}

	for _, st := range statements {
		if _, err := pool.Exec(ctx, st.sql, st.args...); err != nil {
			fail("insertar "+st.desc, err)
		}
	}

	fmt.Println("seed completado")
}

func fail(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}
