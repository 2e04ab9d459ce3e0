package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DistributionPolicy is a named, reusable fee-split configuration. The
// platform fee percent is fixed platform-wide and therefore not stored here.
type DistributionPolicy struct {
	ent.Schema
}

func (DistributionPolicy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DistributionPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			Unique().
			Comment("Human-readable configuration name"),

		field.Enum("mode").
			Values("percentage", "fixed").
			Default("percentage").
			Comment("How the three shares are interpreted"),

		field.Float("admin_share").
			Optional().
			Nillable().
			Comment("Percentage points (percentage mode) or currency amount (fixed mode)"),

		field.Float("therapist_share").
			Optional().
			Nillable(),

		field.Float("doctor_share").
			Optional().
			Nillable(),

		field.Enum("auto_balance_role").
			Values("admin", "therapist", "doctor").
			Optional().
			Nillable().
			Comment("Role whose percentage is computed as 100 minus the other two (percentage mode only)"),

		field.Bool("is_default").
			Default(false).
			Comment("At most one policy is the default at a time"),

		field.Bool("is_active").
			Default(true),
	}
}

func (DistributionPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_default"),
		index.Fields("is_active", "created_at"),
	}
}
