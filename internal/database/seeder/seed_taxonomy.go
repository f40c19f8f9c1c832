package seeder

import (
	"context"
	"fmt"

	"talent-triage/internal/database"
	"talent-triage/internal/domain/taxonomy"
)

// TaxonomySeeder loads the default category tree, including the unclassified
// bucket every unmatched candidate is parked in. Declaration order of the
// rule table is preserved so the scorer's tie-break stays stable across
// reseeds.
type TaxonomySeeder struct{}

func (TaxonomySeeder) Name() string { return "taxonomy" }

func (TaxonomySeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "categories", "id", "name", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "sub_categories", "id", "category_id", "name", "keywords", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO categories (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
		taxonomy.UnclassifiedCategory,
	); err != nil {
		return err
	}

	for _, rule := range taxonomy.DefaultRules() {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO categories (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			rule.Category,
		); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO sub_categories (id, category_id, name, keywords)
			 SELECT gen_random_uuid(), c.id, $2, $3 FROM categories c WHERE c.name = $1
			 ON CONFLICT (category_id, name) DO UPDATE SET keywords = EXCLUDED.keywords`,
			rule.Category,
			rule.SubCategory,
			rule.Keywords,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
