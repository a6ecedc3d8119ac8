// seed puebla una base vacía con datos de arranque: el operador, el grupo de
// clientes de sistema y un catálogo checo de ejemplo (materiales y servicios).
//
// Uso: go run ./cmd/seed [contraseña]
// Por defecto la contraseña del operador es "changeme".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/infrastructure/postgres"
	"github.com/supervisor-bit/HairBook-New/pkg/config"
)

func main() {
	password := "changeme"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.First()
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar operador: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("La base ya tiene datos; no se siembra nada.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}
	if err := users.Create(&entity.User{ID: uuid.NewString(), PasswordHash: string(hash)}); err != nil {
		fmt.Fprintf(os.Stderr, "crear operador: %v\n", err)
		os.Exit(1)
	}

	clientGroups := postgres.NewClientGroupRepository(pool)
	if err := clientGroups.Create(&entity.ClientGroup{
		ID:       uuid.NewString(),
		Name:     "Moji klienti",
		IsSystem: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "crear grupo de clientes: %v\n", err)
		os.Exit(1)
	}

	materialGroups := postgres.NewMaterialGroupRepository(pool)
	materials := postgres.NewMaterialRepository(pool)
	groups := []struct {
		name  string
		items []entity.Material
	}{
		{"Barvy", []entity.Material{
			{Name: "Barva 6.0 tmavá blond", Unit: entity.UnitGram, PackageSize: decimal.NewFromInt(60)},
			{Name: "Barva 7.1 popelavá blond", Unit: entity.UnitGram, PackageSize: decimal.NewFromInt(60)},
			{Name: "Oxidant 6%", Unit: entity.UnitMilliliter, PackageSize: decimal.NewFromInt(1000)},
		}},
		{"Péče", []entity.Material{
			{Name: "Šampon regenerační", Unit: entity.UnitMilliliter, PackageSize: decimal.NewFromInt(300), IsRetailProduct: true},
			{Name: "Maska na vlasy", Unit: entity.UnitMilliliter, PackageSize: decimal.NewFromInt(250), IsRetailProduct: true},
		}},
		{"Spotřební", []entity.Material{
			{Name: "Alobal", Unit: entity.UnitPiece, PackageSize: decimal.NewFromInt(1)},
			{Name: "Rukavice", Unit: entity.UnitPiece, PackageSize: decimal.NewFromInt(1)},
		}},
	}
	for i, g := range groups {
		group := &entity.MaterialGroup{ID: uuid.NewString(), Name: g.name, Order: i + 1}
		if err := materialGroups.Create(group); err != nil {
			fmt.Fprintf(os.Stderr, "crear grupo %q: %v\n", g.name, err)
			os.Exit(1)
		}
		for _, m := range g.items {
			m.ID = uuid.NewString()
			m.GroupID = group.ID
			if err := materials.Create(&m); err != nil {
				fmt.Fprintf(os.Stderr, "crear material %q: %v\n", m.Name, err)
				os.Exit(1)
			}
		}
	}

	services := postgres.NewServiceRepository(pool)
	catalog := []struct {
		name  string
		items []string
	}{
		{"Střihy", []string{"Dámský střih", "Pánský střih", "Dětský střih"}},
		{"Barvení", []string{"Barvení celé hlavy", "Melír", "Tónování"}},
		{"Styling", []string{"Foukaná", "Společenský účes"}},
	}
	for i, g := range catalog {
		group := &entity.ServiceGroup{ID: uuid.NewString(), Name: g.name, Order: i + 1}
		if err := services.CreateGroup(group); err != nil {
			fmt.Fprintf(os.Stderr, "crear grupo de servicios %q: %v\n", g.name, err)
			os.Exit(1)
		}
		for j, name := range g.items {
			svc := &entity.Service{ID: uuid.NewString(), GroupID: group.ID, Name: name, Order: j + 1}
			if err := services.Create(svc); err != nil {
				fmt.Fprintf(os.Stderr, "crear servicio %q: %v\n", name, err)
				os.Exit(1)
			}
		}
	}

	fmt.Println("Siembra completada: operador, grupos y catálogo de ejemplo.")
}
