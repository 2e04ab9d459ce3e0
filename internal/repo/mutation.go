// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/internal/repo/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDistributionPolicy = "DistributionPolicy"
)

// DistributionPolicyMutation represents an operation that mutates the DistributionPolicy nodes in the graph.
type DistributionPolicyMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	mode               *distributionpolicy.Mode
	admin_share        *float64
	addadmin_share     *float64
	therapist_share    *float64
	addtherapist_share *float64
	doctor_share       *float64
	adddoctor_share    *float64
	auto_balance_role  *distributionpolicy.AutoBalanceRole
	is_default         *bool
	is_active          *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DistributionPolicy, error)
	predicates         []predicate.DistributionPolicy
}

var _ ent.Mutation = (*DistributionPolicyMutation)(nil)

// distributionpolicyOption allows management of the mutation configuration using functional options.
type distributionpolicyOption func(*DistributionPolicyMutation)

// newDistributionPolicyMutation creates new mutation for the DistributionPolicy entity.
func newDistributionPolicyMutation(c config, op Op, opts ...distributionpolicyOption) *DistributionPolicyMutation {
	m := &DistributionPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributionPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributionPolicyID sets the ID field of the mutation.
func withDistributionPolicyID(id uuid.UUID) distributionpolicyOption {
	return func(m *DistributionPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *DistributionPolicy
		)
		m.oldValue = func(ctx context.Context) (*DistributionPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DistributionPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributionPolicy sets the old DistributionPolicy of the mutation.
func withDistributionPolicy(node *DistributionPolicy) distributionpolicyOption {
	return func(m *DistributionPolicyMutation) {
		m.oldValue = func(context.Context) (*DistributionPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributionPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributionPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DistributionPolicy entities.
func (m *DistributionPolicyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributionPolicyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributionPolicyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DistributionPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DistributionPolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DistributionPolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DistributionPolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DistributionPolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DistributionPolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DistributionPolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DistributionPolicyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DistributionPolicyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DistributionPolicyMutation) ResetName() {
	m.name = nil
}

// SetMode sets the "mode" field.
func (m *DistributionPolicyMutation) SetMode(d distributionpolicy.Mode) {
	m.mode = &d
}

// Mode returns the value of the "mode" field in the mutation.
func (m *DistributionPolicyMutation) Mode() (r distributionpolicy.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldMode(ctx context.Context) (v distributionpolicy.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *DistributionPolicyMutation) ResetMode() {
	m.mode = nil
}

// SetAdminShare sets the "admin_share" field.
func (m *DistributionPolicyMutation) SetAdminShare(f float64) {
	m.admin_share = &f
	m.addadmin_share = nil
}

// AdminShare returns the value of the "admin_share" field in the mutation.
func (m *DistributionPolicyMutation) AdminShare() (r float64, exists bool) {
	v := m.admin_share
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminShare returns the old "admin_share" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldAdminShare(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminShare: %w", err)
	}
	return oldValue.AdminShare, nil
}

// AddAdminShare adds f to the "admin_share" field.
func (m *DistributionPolicyMutation) AddAdminShare(f float64) {
	if m.addadmin_share != nil {
		*m.addadmin_share += f
	} else {
		m.addadmin_share = &f
	}
}

// AddedAdminShare returns the value that was added to the "admin_share" field in this mutation.
func (m *DistributionPolicyMutation) AddedAdminShare() (r float64, exists bool) {
	v := m.addadmin_share
	if v == nil {
		return
	}
	return *v, true
}

// ClearAdminShare clears the value of the "admin_share" field.
func (m *DistributionPolicyMutation) ClearAdminShare() {
	m.admin_share = nil
	m.addadmin_share = nil
	m.clearedFields[distributionpolicy.FieldAdminShare] = struct{}{}
}

// AdminShareCleared returns if the "admin_share" field was cleared in this mutation.
func (m *DistributionPolicyMutation) AdminShareCleared() bool {
	_, ok := m.clearedFields[distributionpolicy.FieldAdminShare]
	return ok
}

// ResetAdminShare resets all changes to the "admin_share" field.
func (m *DistributionPolicyMutation) ResetAdminShare() {
	m.admin_share = nil
	m.addadmin_share = nil
	delete(m.clearedFields, distributionpolicy.FieldAdminShare)
}

// SetTherapistShare sets the "therapist_share" field.
func (m *DistributionPolicyMutation) SetTherapistShare(f float64) {
	m.therapist_share = &f
	m.addtherapist_share = nil
}

// TherapistShare returns the value of the "therapist_share" field in the mutation.
func (m *DistributionPolicyMutation) TherapistShare() (r float64, exists bool) {
	v := m.therapist_share
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistShare returns the old "therapist_share" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldTherapistShare(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistShare: %w", err)
	}
	return oldValue.TherapistShare, nil
}

// AddTherapistShare adds f to the "therapist_share" field.
func (m *DistributionPolicyMutation) AddTherapistShare(f float64) {
	if m.addtherapist_share != nil {
		*m.addtherapist_share += f
	} else {
		m.addtherapist_share = &f
	}
}

// AddedTherapistShare returns the value that was added to the "therapist_share" field in this mutation.
func (m *DistributionPolicyMutation) AddedTherapistShare() (r float64, exists bool) {
	v := m.addtherapist_share
	if v == nil {
		return
	}
	return *v, true
}

// ClearTherapistShare clears the value of the "therapist_share" field.
func (m *DistributionPolicyMutation) ClearTherapistShare() {
	m.therapist_share = nil
	m.addtherapist_share = nil
	m.clearedFields[distributionpolicy.FieldTherapistShare] = struct{}{}
}

// TherapistShareCleared returns if the "therapist_share" field was cleared in this mutation.
func (m *DistributionPolicyMutation) TherapistShareCleared() bool {
	_, ok := m.clearedFields[distributionpolicy.FieldTherapistShare]
	return ok
}

// ResetTherapistShare resets all changes to the "therapist_share" field.
func (m *DistributionPolicyMutation) ResetTherapistShare() {
	m.therapist_share = nil
	m.addtherapist_share = nil
	delete(m.clearedFields, distributionpolicy.FieldTherapistShare)
}

// SetDoctorShare sets the "doctor_share" field.
func (m *DistributionPolicyMutation) SetDoctorShare(f float64) {
	m.doctor_share = &f
	m.adddoctor_share = nil
}

// DoctorShare returns the value of the "doctor_share" field in the mutation.
func (m *DistributionPolicyMutation) DoctorShare() (r float64, exists bool) {
	v := m.doctor_share
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorShare returns the old "doctor_share" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldDoctorShare(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorShare: %w", err)
	}
	return oldValue.DoctorShare, nil
}

// AddDoctorShare adds f to the "doctor_share" field.
func (m *DistributionPolicyMutation) AddDoctorShare(f float64) {
	if m.adddoctor_share != nil {
		*m.adddoctor_share += f
	} else {
		m.adddoctor_share = &f
	}
}

// AddedDoctorShare returns the value that was added to the "doctor_share" field in this mutation.
func (m *DistributionPolicyMutation) AddedDoctorShare() (r float64, exists bool) {
	v := m.adddoctor_share
	if v == nil {
		return
	}
	return *v, true
}

// ClearDoctorShare clears the value of the "doctor_share" field.
func (m *DistributionPolicyMutation) ClearDoctorShare() {
	m.doctor_share = nil
	m.adddoctor_share = nil
	m.clearedFields[distributionpolicy.FieldDoctorShare] = struct{}{}
}

// DoctorShareCleared returns if the "doctor_share" field was cleared in this mutation.
func (m *DistributionPolicyMutation) DoctorShareCleared() bool {
	_, ok := m.clearedFields[distributionpolicy.FieldDoctorShare]
	return ok
}

// ResetDoctorShare resets all changes to the "doctor_share" field.
func (m *DistributionPolicyMutation) ResetDoctorShare() {
	m.doctor_share = nil
	m.adddoctor_share = nil
	delete(m.clearedFields, distributionpolicy.FieldDoctorShare)
}

// SetAutoBalanceRole sets the "auto_balance_role" field.
func (m *DistributionPolicyMutation) SetAutoBalanceRole(dbr distributionpolicy.AutoBalanceRole) {
	m.auto_balance_role = &dbr
}

// AutoBalanceRole returns the value of the "auto_balance_role" field in the mutation.
func (m *DistributionPolicyMutation) AutoBalanceRole() (r distributionpolicy.AutoBalanceRole, exists bool) {
	v := m.auto_balance_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoBalanceRole returns the old "auto_balance_role" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldAutoBalanceRole(ctx context.Context) (v *distributionpolicy.AutoBalanceRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoBalanceRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoBalanceRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoBalanceRole: %w", err)
	}
	return oldValue.AutoBalanceRole, nil
}

// ClearAutoBalanceRole clears the value of the "auto_balance_role" field.
func (m *DistributionPolicyMutation) ClearAutoBalanceRole() {
	m.auto_balance_role = nil
	m.clearedFields[distributionpolicy.FieldAutoBalanceRole] = struct{}{}
}

// AutoBalanceRoleCleared returns if the "auto_balance_role" field was cleared in this mutation.
func (m *DistributionPolicyMutation) AutoBalanceRoleCleared() bool {
	_, ok := m.clearedFields[distributionpolicy.FieldAutoBalanceRole]
	return ok
}

// ResetAutoBalanceRole resets all changes to the "auto_balance_role" field.
func (m *DistributionPolicyMutation) ResetAutoBalanceRole() {
	m.auto_balance_role = nil
	delete(m.clearedFields, distributionpolicy.FieldAutoBalanceRole)
}

// SetIsDefault sets the "is_default" field.
func (m *DistributionPolicyMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *DistributionPolicyMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *DistributionPolicyMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetIsActive sets the "is_active" field.
func (m *DistributionPolicyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DistributionPolicyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DistributionPolicy entity.
// If the DistributionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionPolicyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DistributionPolicyMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the DistributionPolicyMutation builder.
func (m *DistributionPolicyMutation) Where(ps ...predicate.DistributionPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributionPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributionPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DistributionPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributionPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributionPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DistributionPolicy).
func (m *DistributionPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributionPolicyMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, distributionpolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, distributionpolicy.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, distributionpolicy.FieldName)
	}
	if m.mode != nil {
		fields = append(fields, distributionpolicy.FieldMode)
	}
	if m.admin_share != nil {
		fields = append(fields, distributionpolicy.FieldAdminShare)
	}
	if m.therapist_share != nil {
		fields = append(fields, distributionpolicy.FieldTherapistShare)
	}
	if m.doctor_share != nil {
		fields = append(fields, distributionpolicy.FieldDoctorShare)
	}
	if m.auto_balance_role != nil {
		fields = append(fields, distributionpolicy.FieldAutoBalanceRole)
	}
	if m.is_default != nil {
		fields = append(fields, distributionpolicy.FieldIsDefault)
	}
	if m.is_active != nil {
		fields = append(fields, distributionpolicy.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributionPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributionpolicy.FieldCreatedAt:
		return m.CreatedAt()
	case distributionpolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	case distributionpolicy.FieldName:
		return m.Name()
	case distributionpolicy.FieldMode:
		return m.Mode()
	case distributionpolicy.FieldAdminShare:
		return m.AdminShare()
	case distributionpolicy.FieldTherapistShare:
		return m.TherapistShare()
	case distributionpolicy.FieldDoctorShare:
		return m.DoctorShare()
	case distributionpolicy.FieldAutoBalanceRole:
		return m.AutoBalanceRole()
	case distributionpolicy.FieldIsDefault:
		return m.IsDefault()
	case distributionpolicy.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributionPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributionpolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case distributionpolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case distributionpolicy.FieldName:
		return m.OldName(ctx)
	case distributionpolicy.FieldMode:
		return m.OldMode(ctx)
	case distributionpolicy.FieldAdminShare:
		return m.OldAdminShare(ctx)
	case distributionpolicy.FieldTherapistShare:
		return m.OldTherapistShare(ctx)
	case distributionpolicy.FieldDoctorShare:
		return m.OldDoctorShare(ctx)
	case distributionpolicy.FieldAutoBalanceRole:
		return m.OldAutoBalanceRole(ctx)
	case distributionpolicy.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case distributionpolicy.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown DistributionPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributionpolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case distributionpolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case distributionpolicy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case distributionpolicy.FieldMode:
		v, ok := value.(distributionpolicy.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case distributionpolicy.FieldAdminShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminShare(v)
		return nil
	case distributionpolicy.FieldTherapistShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistShare(v)
		return nil
	case distributionpolicy.FieldDoctorShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorShare(v)
		return nil
	case distributionpolicy.FieldAutoBalanceRole:
		v, ok := value.(distributionpolicy.AutoBalanceRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoBalanceRole(v)
		return nil
	case distributionpolicy.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case distributionpolicy.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown DistributionPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributionPolicyMutation) AddedFields() []string {
	var fields []string
	if m.addadmin_share != nil {
		fields = append(fields, distributionpolicy.FieldAdminShare)
	}
	if m.addtherapist_share != nil {
		fields = append(fields, distributionpolicy.FieldTherapistShare)
	}
	if m.adddoctor_share != nil {
		fields = append(fields, distributionpolicy.FieldDoctorShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributionPolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case distributionpolicy.FieldAdminShare:
		return m.AddedAdminShare()
	case distributionpolicy.FieldTherapistShare:
		return m.AddedTherapistShare()
	case distributionpolicy.FieldDoctorShare:
		return m.AddedDoctorShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case distributionpolicy.FieldAdminShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminShare(v)
		return nil
	case distributionpolicy.FieldTherapistShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTherapistShare(v)
		return nil
	case distributionpolicy.FieldDoctorShare:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDoctorShare(v)
		return nil
	}
	return fmt.Errorf("unknown DistributionPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributionPolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributionpolicy.FieldAdminShare) {
		fields = append(fields, distributionpolicy.FieldAdminShare)
	}
	if m.FieldCleared(distributionpolicy.FieldTherapistShare) {
		fields = append(fields, distributionpolicy.FieldTherapistShare)
	}
	if m.FieldCleared(distributionpolicy.FieldDoctorShare) {
		fields = append(fields, distributionpolicy.FieldDoctorShare)
	}
	if m.FieldCleared(distributionpolicy.FieldAutoBalanceRole) {
		fields = append(fields, distributionpolicy.FieldAutoBalanceRole)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributionPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributionPolicyMutation) ClearField(name string) error {
	switch name {
	case distributionpolicy.FieldAdminShare:
		m.ClearAdminShare()
		return nil
	case distributionpolicy.FieldTherapistShare:
		m.ClearTherapistShare()
		return nil
	case distributionpolicy.FieldDoctorShare:
		m.ClearDoctorShare()
		return nil
	case distributionpolicy.FieldAutoBalanceRole:
		m.ClearAutoBalanceRole()
		return nil
	}
	return fmt.Errorf("unknown DistributionPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributionPolicyMutation) ResetField(name string) error {
	switch name {
	case distributionpolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case distributionpolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case distributionpolicy.FieldName:
		m.ResetName()
		return nil
	case distributionpolicy.FieldMode:
		m.ResetMode()
		return nil
	case distributionpolicy.FieldAdminShare:
		m.ResetAdminShare()
		return nil
	case distributionpolicy.FieldTherapistShare:
		m.ResetTherapistShare()
		return nil
	case distributionpolicy.FieldDoctorShare:
		m.ResetDoctorShare()
		return nil
	case distributionpolicy.FieldAutoBalanceRole:
		m.ResetAutoBalanceRole()
		return nil
	case distributionpolicy.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case distributionpolicy.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown DistributionPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributionPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributionPolicyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributionPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributionPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributionPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributionPolicyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributionPolicyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DistributionPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributionPolicyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DistributionPolicy edge %s", name)
}
