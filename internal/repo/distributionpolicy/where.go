// Code generated by ent, DO NOT EDIT.

package distributionpolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peyvand/peyvand_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldName, v))
}

// AdminShare applies equality check predicate on the "admin_share" field. It's identical to AdminShareEQ.
func AdminShare(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldAdminShare, v))
}

// TherapistShare applies equality check predicate on the "therapist_share" field. It's identical to TherapistShareEQ.
func TherapistShare(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldTherapistShare, v))
}

// DoctorShare applies equality check predicate on the "doctor_share" field. It's identical to DoctorShareEQ.
func DoctorShare(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldDoctorShare, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldIsDefault, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldContainsFold(FieldName, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldMode, vs...))
}

// AdminShareEQ applies the EQ predicate on the "admin_share" field.
func AdminShareEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldAdminShare, v))
}

// AdminShareNEQ applies the NEQ predicate on the "admin_share" field.
func AdminShareNEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldAdminShare, v))
}

// AdminShareIn applies the In predicate on the "admin_share" field.
func AdminShareIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldAdminShare, vs...))
}

// AdminShareNotIn applies the NotIn predicate on the "admin_share" field.
func AdminShareNotIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldAdminShare, vs...))
}

// AdminShareGT applies the GT predicate on the "admin_share" field.
func AdminShareGT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldAdminShare, v))
}

// AdminShareGTE applies the GTE predicate on the "admin_share" field.
func AdminShareGTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldAdminShare, v))
}

// AdminShareLT applies the LT predicate on the "admin_share" field.
func AdminShareLT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldAdminShare, v))
}

// AdminShareLTE applies the LTE predicate on the "admin_share" field.
func AdminShareLTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldAdminShare, v))
}

// AdminShareIsNil applies the IsNil predicate on the "admin_share" field.
func AdminShareIsNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIsNull(FieldAdminShare))
}

// AdminShareNotNil applies the NotNil predicate on the "admin_share" field.
func AdminShareNotNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotNull(FieldAdminShare))
}

// TherapistShareEQ applies the EQ predicate on the "therapist_share" field.
func TherapistShareEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldTherapistShare, v))
}

// TherapistShareNEQ applies the NEQ predicate on the "therapist_share" field.
func TherapistShareNEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldTherapistShare, v))
}

// TherapistShareIn applies the In predicate on the "therapist_share" field.
func TherapistShareIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldTherapistShare, vs...))
}

// TherapistShareNotIn applies the NotIn predicate on the "therapist_share" field.
func TherapistShareNotIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldTherapistShare, vs...))
}

// TherapistShareGT applies the GT predicate on the "therapist_share" field.
func TherapistShareGT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldTherapistShare, v))
}

// TherapistShareGTE applies the GTE predicate on the "therapist_share" field.
func TherapistShareGTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldTherapistShare, v))
}

// TherapistShareLT applies the LT predicate on the "therapist_share" field.
func TherapistShareLT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldTherapistShare, v))
}

// TherapistShareLTE applies the LTE predicate on the "therapist_share" field.
func TherapistShareLTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldTherapistShare, v))
}

// TherapistShareIsNil applies the IsNil predicate on the "therapist_share" field.
func TherapistShareIsNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIsNull(FieldTherapistShare))
}

// TherapistShareNotNil applies the NotNil predicate on the "therapist_share" field.
func TherapistShareNotNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotNull(FieldTherapistShare))
}

// DoctorShareEQ applies the EQ predicate on the "doctor_share" field.
func DoctorShareEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldDoctorShare, v))
}

// DoctorShareNEQ applies the NEQ predicate on the "doctor_share" field.
func DoctorShareNEQ(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldDoctorShare, v))
}

// DoctorShareIn applies the In predicate on the "doctor_share" field.
func DoctorShareIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldDoctorShare, vs...))
}

// DoctorShareNotIn applies the NotIn predicate on the "doctor_share" field.
func DoctorShareNotIn(vs ...float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldDoctorShare, vs...))
}

// DoctorShareGT applies the GT predicate on the "doctor_share" field.
func DoctorShareGT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGT(FieldDoctorShare, v))
}

// DoctorShareGTE applies the GTE predicate on the "doctor_share" field.
func DoctorShareGTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldGTE(FieldDoctorShare, v))
}

// DoctorShareLT applies the LT predicate on the "doctor_share" field.
func DoctorShareLT(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLT(FieldDoctorShare, v))
}

// DoctorShareLTE applies the LTE predicate on the "doctor_share" field.
func DoctorShareLTE(v float64) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldLTE(FieldDoctorShare, v))
}

// DoctorShareIsNil applies the IsNil predicate on the "doctor_share" field.
func DoctorShareIsNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIsNull(FieldDoctorShare))
}

// DoctorShareNotNil applies the NotNil predicate on the "doctor_share" field.
func DoctorShareNotNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotNull(FieldDoctorShare))
}

// AutoBalanceRoleEQ applies the EQ predicate on the "auto_balance_role" field.
func AutoBalanceRoleEQ(v AutoBalanceRole) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldAutoBalanceRole, v))
}

// AutoBalanceRoleNEQ applies the NEQ predicate on the "auto_balance_role" field.
func AutoBalanceRoleNEQ(v AutoBalanceRole) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldAutoBalanceRole, v))
}

// AutoBalanceRoleIn applies the In predicate on the "auto_balance_role" field.
func AutoBalanceRoleIn(vs ...AutoBalanceRole) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIn(FieldAutoBalanceRole, vs...))
}

// AutoBalanceRoleNotIn applies the NotIn predicate on the "auto_balance_role" field.
func AutoBalanceRoleNotIn(vs ...AutoBalanceRole) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotIn(FieldAutoBalanceRole, vs...))
}

// AutoBalanceRoleIsNil applies the IsNil predicate on the "auto_balance_role" field.
func AutoBalanceRoleIsNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldIsNull(FieldAutoBalanceRole))
}

// AutoBalanceRoleNotNil applies the NotNil predicate on the "auto_balance_role" field.
func AutoBalanceRoleNotNil() predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNotNull(FieldAutoBalanceRole))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldIsDefault, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DistributionPolicy) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DistributionPolicy) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DistributionPolicy) predicate.DistributionPolicy {
	return predicate.DistributionPolicy(sql.NotPredicates(p))
}
