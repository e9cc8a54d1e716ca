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

// Run holds the schema definition for the Run entity: one execution of
// one suite at one agent version.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("suite_id"),
		field.String("agent_version").
			Optional().
			Nillable(),
		field.Enum("trigger").
			Values("cli", "ci", "manual", "api").
			Default("api"),
		field.String("trigger_ref").
			Optional().
			Nillable().
			Comment("CI build id, git SHA, or similar"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("config", &models.RunConfig{}).
			Optional().
			Comment("Per-run overrides of suite config"),
		field.JSON("summary", &models.RunSummary{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set on the pending -> running transition"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set on entering any terminal state"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For stale-run detection across restarts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("runs").
			Field("project_id").
			Unique().
			Required(),
		edge.From("suite", Suite.Type).
			Ref("runs").
			Field("suite_id").
			Unique().
			Required(),
		edge.To("results", Result.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("suite_id"),
		index.Fields("project_id", "status"),
		index.Fields("agent_version"),
		index.Fields("project_id", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
