package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/neonhq/neon/pkg/models"
)

// Result holds the schema definition for the Result entity: one case
// execution inside one run. Exactly one row per (run_id, case_id).
type Result struct {
	ent.Schema
}

// Fields of the Result.
func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("run_id"),
		field.String("case_id").
			Optional().
			Comment("Cleared when the case is deleted after the run"),
		field.String("case_name").
			Comment("Denormalized from the case; comparator join key"),
		field.String("trace_run_id").
			Optional().
			Nillable().
			Comment("External observability run id"),
		field.String("trace_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("success", "error", "timeout"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.JSON("scores", map[string]float64{}).
			Optional().
			Comment("Empty unless status=success"),
		field.JSON("score_details", map[string]models.ScoreDetail{}).
			Optional(),
		field.JSON("trace_summary", &models.TraceSummary{}).
			Optional(),
		field.Bool("passed").
			Default(false),
		field.Int64("execution_time_ms").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Result.
func (Result) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("results").
			Field("run_id").
			Unique().
			Required(),
		edge.From("test_case", TestCase.Type).
			Ref("results").
			Field("case_id").
			Unique(),
	}
}

// Indexes of the Result.
func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "case_id").Unique(),
		index.Fields("run_id"),
		index.Fields("case_id"),
	}
}
