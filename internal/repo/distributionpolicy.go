// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
)

// DistributionPolicy is the model entity for the DistributionPolicy schema.
type DistributionPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable configuration name
	Name string `json:"name,omitempty"`
	// How the three shares are interpreted
	Mode distributionpolicy.Mode `json:"mode,omitempty"`
	// Percentage points (percentage mode) or currency amount (fixed mode)
	AdminShare *float64 `json:"admin_share,omitempty"`
	// TherapistShare holds the value of the "therapist_share" field.
	TherapistShare *float64 `json:"therapist_share,omitempty"`
	// DoctorShare holds the value of the "doctor_share" field.
	DoctorShare *float64 `json:"doctor_share,omitempty"`
	// Role whose percentage is computed as 100 minus the other two (percentage mode only)
	AutoBalanceRole *distributionpolicy.AutoBalanceRole `json:"auto_balance_role,omitempty"`
	// At most one policy is the default at a time
	IsDefault bool `json:"is_default,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DistributionPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributionpolicy.FieldIsDefault, distributionpolicy.FieldIsActive:
			values[i] = new(sql.NullBool)
		case distributionpolicy.FieldAdminShare, distributionpolicy.FieldTherapistShare, distributionpolicy.FieldDoctorShare:
			values[i] = new(sql.NullFloat64)
		case distributionpolicy.FieldName, distributionpolicy.FieldMode, distributionpolicy.FieldAutoBalanceRole:
			values[i] = new(sql.NullString)
		case distributionpolicy.FieldCreatedAt, distributionpolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case distributionpolicy.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DistributionPolicy fields.
func (_m *DistributionPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributionpolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributionpolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case distributionpolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case distributionpolicy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case distributionpolicy.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = distributionpolicy.Mode(value.String)
			}
		case distributionpolicy.FieldAdminShare:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_share", values[i])
			} else if value.Valid {
				_m.AdminShare = new(float64)
				*_m.AdminShare = value.Float64
			}
		case distributionpolicy.FieldTherapistShare:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_share", values[i])
			} else if value.Valid {
				_m.TherapistShare = new(float64)
				*_m.TherapistShare = value.Float64
			}
		case distributionpolicy.FieldDoctorShare:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_share", values[i])
			} else if value.Valid {
				_m.DoctorShare = new(float64)
				*_m.DoctorShare = value.Float64
			}
		case distributionpolicy.FieldAutoBalanceRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auto_balance_role", values[i])
			} else if value.Valid {
				_m.AutoBalanceRole = new(distributionpolicy.AutoBalanceRole)
				*_m.AutoBalanceRole = distributionpolicy.AutoBalanceRole(value.String)
			}
		case distributionpolicy.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case distributionpolicy.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DistributionPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *DistributionPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DistributionPolicy.
// Note that you need to call DistributionPolicy.Unwrap() before calling this method if this DistributionPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DistributionPolicy) Update() *DistributionPolicyUpdateOne {
	return NewDistributionPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DistributionPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DistributionPolicy) Unwrap() *DistributionPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DistributionPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DistributionPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("DistributionPolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	if v := _m.AdminShare; v != nil {
		builder.WriteString("admin_share=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TherapistShare; v != nil {
		builder.WriteString("therapist_share=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DoctorShare; v != nil {
		builder.WriteString("doctor_share=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AutoBalanceRole; v != nil {
		builder.WriteString("auto_balance_role=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// DistributionPolicies is a parsable slice of DistributionPolicy.
type DistributionPolicies []*DistributionPolicy
