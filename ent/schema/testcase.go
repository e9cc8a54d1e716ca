package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/neonhq/neon/pkg/models"
)

// TestCase holds the schema definition for the TestCase entity: one test
// input plus expectations and a pass threshold.
//
// The expected_* columns are nullable on purpose: "not set" (column NULL,
// slice nil) and "explicitly empty" (stored '[]') carry different meanings
// for the tool-selection scorer.
type TestCase struct {
	ent.Schema
}

// Fields of the TestCase.
func (TestCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("suite_id"),
		field.String("name").
			Comment("Unique per suite; stable join key across runs"),
		field.String("description").
			Optional(),
		field.JSON("input", models.CaseInput{}),
		field.JSON("expected_tools", []string{}).
			Optional(),
		field.JSON("expected_tool_sequence", []string{}).
			Optional(),
		field.JSON("expected_output_contains", []string{}).
			Optional(),
		field.String("expected_output_pattern").
			Optional(),
		field.JSON("scorers", []string{}).
			Optional(),
		field.JSON("scorer_config", map[string]interface{}{}).
			Optional(),
		field.Float("min_score").
			Default(0.7),
		field.Int("timeout_seconds").
			Default(300),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TestCase.
func (TestCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("suite", Suite.Type).
			Ref("cases").
			Field("suite_id").
			Unique().
			Required(),
		// Results outlive their case: deleting a case clears the
		// reference and the denormalized case_name keeps the row usable.
		edge.To("results", Result.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the TestCase.
func (TestCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("suite_id", "name").Unique(),
		index.Fields("suite_id"),
	}
}
