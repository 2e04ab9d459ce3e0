// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DistributionPolicy is the predicate function for distributionpolicy builders.
type DistributionPolicy func(*sql.Selector)
