package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Suite holds the schema definition for the Suite entity: a named,
// ordered collection of test cases targeting one agent.
type Suite struct {
	ent.Schema
}

// Fields of the Suite.
func (Suite) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suite_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("name").
			Comment("Unique per project"),
		field.String("agent_id").
			Comment("Agent locator, '<module>:<attribute>'"),
		field.String("description").
			Optional(),
		field.Bool("parallel").
			Default(true),
		field.Bool("stop_on_failure").
			Default(false),
		field.JSON("default_scorers", []string{}).
			Optional(),
		field.Float("default_min_score").
			Default(0.7),
		field.Int("default_timeout_seconds").
			Default(300),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Suite.
func (Suite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("suites").
			Field("project_id").
			Unique().
			Required(),
		edge.To("cases", TestCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Suite.
func (Suite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}
