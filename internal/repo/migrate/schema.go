// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DistributionPoliciesColumns holds the columns for the "distribution_policies" table.
	DistributionPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"percentage", "fixed"}, Default: "percentage"},
		{Name: "admin_share", Type: field.TypeFloat64, Nullable: true},
		{Name: "therapist_share", Type: field.TypeFloat64, Nullable: true},
		{Name: "doctor_share", Type: field.TypeFloat64, Nullable: true},
		{Name: "auto_balance_role", Type: field.TypeEnum, Nullable: true, Enums: []string{"admin", "therapist", "doctor"}},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// DistributionPoliciesTable holds the schema information for the "distribution_policies" table.
	DistributionPoliciesTable = &schema.Table{
		Name:       "distribution_policies",
		Columns:    DistributionPoliciesColumns,
		PrimaryKey: []*schema.Column{DistributionPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "distributionpolicy_is_default",
				Unique:  false,
				Columns: []*schema.Column{DistributionPoliciesColumns[9]},
			},
			{
				Name:    "distributionpolicy_is_active_created_at",
				Unique:  false,
				Columns: []*schema.Column{DistributionPoliciesColumns[10], DistributionPoliciesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DistributionPoliciesTable,
	}
)

func init() {
}
