// Code generated by ent, DO NOT EDIT.

package distributionpolicy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the distributionpolicy type in the database.
	Label = "distribution_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldAdminShare holds the string denoting the admin_share field in the database.
	FieldAdminShare = "admin_share"
	// FieldTherapistShare holds the string denoting the therapist_share field in the database.
	FieldTherapistShare = "therapist_share"
	// FieldDoctorShare holds the string denoting the doctor_share field in the database.
	FieldDoctorShare = "doctor_share"
	// FieldAutoBalanceRole holds the string denoting the auto_balance_role field in the database.
	FieldAutoBalanceRole = "auto_balance_role"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the distributionpolicy in the database.
	Table = "distribution_policies"
)

// Columns holds all SQL columns for distributionpolicy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldMode,
	FieldAdminShare,
	FieldTherapistShare,
	FieldDoctorShare,
	FieldAutoBalanceRole,
	FieldIsDefault,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModePercentage is the default value of the Mode enum.
const DefaultMode = ModePercentage

// Mode values.
const (
	ModePercentage Mode = "percentage"
	ModeFixed      Mode = "fixed"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModePercentage, ModeFixed:
		return nil
	default:
		return fmt.Errorf("distributionpolicy: invalid enum value for mode field: %q", m)
	}
}

// AutoBalanceRole defines the type for the "auto_balance_role" enum field.
type AutoBalanceRole string

// AutoBalanceRole values.
const (
	AutoBalanceRoleAdmin     AutoBalanceRole = "admin"
	AutoBalanceRoleTherapist AutoBalanceRole = "therapist"
	AutoBalanceRoleDoctor    AutoBalanceRole = "doctor"
)

func (abr AutoBalanceRole) String() string {
	return string(abr)
}

// AutoBalanceRoleValidator is a validator for the "auto_balance_role" field enum values. It is called by the builders before save.
func AutoBalanceRoleValidator(abr AutoBalanceRole) error {
	switch abr {
	case AutoBalanceRoleAdmin, AutoBalanceRoleTherapist, AutoBalanceRoleDoctor:
		return nil
	default:
		return fmt.Errorf("distributionpolicy: invalid enum value for auto_balance_role field: %q", abr)
	}
}

// OrderOption defines the ordering options for the DistributionPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByAdminShare orders the results by the admin_share field.
func ByAdminShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminShare, opts...).ToFunc()
}

// ByTherapistShare orders the results by the therapist_share field.
func ByTherapistShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTherapistShare, opts...).ToFunc()
}

// ByDoctorShare orders the results by the doctor_share field.
func ByDoctorShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorShare, opts...).ToFunc()
}

// ByAutoBalanceRole orders the results by the auto_balance_role field.
func ByAutoBalanceRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoBalanceRole, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
