// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	distributionpolicyMixin := schema.DistributionPolicy{}.Mixin()
	distributionpolicyMixinFields0 := distributionpolicyMixin[0].Fields()
	_ = distributionpolicyMixinFields0
	distributionpolicyMixinFields1 := distributionpolicyMixin[1].Fields()
	_ = distributionpolicyMixinFields1
	distributionpolicyFields := schema.DistributionPolicy{}.Fields()
	_ = distributionpolicyFields
	// distributionpolicyDescCreatedAt is the schema descriptor for created_at field.
	distributionpolicyDescCreatedAt := distributionpolicyMixinFields1[0].Descriptor()
	// distributionpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	distributionpolicy.DefaultCreatedAt = distributionpolicyDescCreatedAt.Default.(func() time.Time)
	// distributionpolicyDescUpdatedAt is the schema descriptor for updated_at field.
	distributionpolicyDescUpdatedAt := distributionpolicyMixinFields1[1].Descriptor()
	// distributionpolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	distributionpolicy.DefaultUpdatedAt = distributionpolicyDescUpdatedAt.Default.(func() time.Time)
	// distributionpolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	distributionpolicy.UpdateDefaultUpdatedAt = distributionpolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// distributionpolicyDescName is the schema descriptor for name field.
	distributionpolicyDescName := distributionpolicyFields[0].Descriptor()
	// distributionpolicy.NameValidator is a validator for the "name" field. It is called by the builders before save.
	distributionpolicy.NameValidator = distributionpolicyDescName.Validators[0].(func(string) error)
	// distributionpolicyDescIsDefault is the schema descriptor for is_default field.
	distributionpolicyDescIsDefault := distributionpolicyFields[6].Descriptor()
	// distributionpolicy.DefaultIsDefault holds the default value on creation for the is_default field.
	distributionpolicy.DefaultIsDefault = distributionpolicyDescIsDefault.Default.(bool)
	// distributionpolicyDescIsActive is the schema descriptor for is_active field.
	distributionpolicyDescIsActive := distributionpolicyFields[7].Descriptor()
	// distributionpolicy.DefaultIsActive holds the default value on creation for the is_active field.
	distributionpolicy.DefaultIsActive = distributionpolicyDescIsActive.Default.(bool)
	// distributionpolicyDescID is the schema descriptor for id field.
	distributionpolicyDescID := distributionpolicyMixinFields0[0].Descriptor()
	// distributionpolicy.DefaultID holds the default value on creation for the id field.
	distributionpolicy.DefaultID = distributionpolicyDescID.Default.(func() uuid.UUID)
}
