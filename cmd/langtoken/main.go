// Command langtoken renders a template containing language tokens
// against a stored entity.
//
// Usage:
//
//	langtoken <entity-type> <entity-id> <template> [display-locale]
//
// Example:
//
//	langtoken node 42 'Titel: [node:title:_lang_de]'
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"langtoken/internal/adapters/engine"
	"langtoken/internal/application"
	"langtoken/internal/config"
	"langtoken/internal/domain"
	"langtoken/internal/infrastructure/database"
	"langtoken/internal/infrastructure/dispatch"
	"langtoken/internal/infrastructure/i18n"
	"langtoken/internal/infrastructure/schema"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: langtoken <entity-type> <entity-id> <template> [display-locale]")
		os.Exit(2)
	}
	entityType, entityID, template := os.Args[1], os.Args[2], os.Args[3]
	displayLocale := ""
	if len(os.Args) > 4 {
		displayLocale = os.Args[4]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("database: %v", err)
	}

	languages := i18n.NewRegistry(cfg.DefaultLangcode)
	types := schema.NewEntityTypes()
	settings := schema.NewSettings(cfg.TranslatableTypes)

	bus := dispatch.NewBus()
	eng := engine.New()
	resolver := application.NewTokenService(eng, bus)
	eng.Register(engine.NewFieldProvider())
	eng.Register(resolver)

	repo := database.NewEntityRepository(pool)
	entity, err := repo.FindByID(ctx, entityType, entityID)
	if err != nil {
		fmt.Println(languages.T(displayLocale, "EntityNotFound", map[string]any{
			"Type": entityType,
			"ID":   entityID,
		}))
		os.Exit(1)
	}

	meta := domain.NewCacheability()
	data := map[string]any{entityType: entity}
	options := map[string]any{}

	rendered, err := eng.Replace(ctx, template, data, options, meta)
	if err != nil {
		log.Fatalf("replace: %v", err)
	}

	fmt.Println(languages.T(displayLocale, "Rendered", nil))
	fmt.Println(rendered)
	if tags := meta.Tags(); len(tags) > 0 {
		fmt.Println(languages.T(displayLocale, "CacheTags", nil), strings.Join(tags, ", "))
	}

	// Token documentation for the wired registries, handy with -v style
	// debugging of which patterns exist.
	if os.Getenv("LANGTOKEN_DEBUG_INFO") != "" {
		info := application.NewTokenInfoBuilder(types, languages, settings).TokenInfo()
		for typeID, patterns := range info {
			for pattern, desc := range patterns {
				fmt.Printf("%s\t[%s:%s]\t%s\n", typeID, typeID, pattern, desc.Name)
			}
		}
	}
}
