// Package revsplit implements the three-party revenue distribution used for
// session fees: a fixed platform cut off the top, then a split of the
// remainder between the admin, therapist and doctor roles.
//
// All functions are pure. A Result carries no identity and is recomputed on
// every call, so callers can safely re-invoke Distribute on each form input
// change.
package revsplit

import "math"

// Mode selects how the three role shares are interpreted.
type Mode string

const (
	// ModePercentage treats shares as percentage points of the
	// distributable amount, summing to 100.
	ModePercentage Mode = "percentage"
	// ModeFixed treats shares as absolute currency amounts.
	ModeFixed Mode = "fixed"
)

// Role identifies one of the three revenue recipients.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTherapist Role = "therapist"
	RoleDoctor    Role = "doctor"
)

const (
	// PlatformFeePercent is the fixed platform cut. Not user-editable.
	PlatformFeePercent = 3.0

	// MinAdminShare is the warning threshold for the admin's currency
	// share. Below it the result is flagged and the caller must ask for
	// explicit confirmation before proceeding.
	MinAdminShare = 400.0

	// SumTolerance is the absolute tolerance used for all floating-point
	// sum comparisons. Strict equality is never used.
	SumTolerance = 0.01
)

// Policy describes how a fee is split. Shares are pointers so that an unset
// value is distinguishable from zero: in percentage mode the auto-balanced
// role's share may be left unset, in fixed mode all three are required.
type Policy struct {
	Mode           Mode
	AdminShare     *float64
	TherapistShare *float64
	DoctorShare    *float64

	// AutoBalanceRole names the role whose percentage is computed as
	// 100 minus the other two. Only meaningful in percentage mode.
	// Empty means all three shares are supplied manually.
	AutoBalanceRole Role
}

// Result is the complete breakdown of one distribution. Currency fields are
// rounded half-up to 2 decimals; percent fields mirror each role's share of
// the distributable amount.
type Result struct {
	Total         float64 `json:"total"`
	PlatformFee   float64 `json:"platform_fee"`
	Distributable float64 `json:"distributable"`

	Admin     float64 `json:"admin"`
	Therapist float64 `json:"therapist"`
	Doctor    float64 `json:"doctor"`

	AdminPercent     float64 `json:"admin_percent"`
	TherapistPercent float64 `json:"therapist_percent"`
	DoctorPercent    float64 `json:"doctor_percent"`

	BelowThreshold bool `json:"below_threshold"`
}

// Round2 rounds to 2 decimal places, half away from zero. Intermediate math
// stays at full float64 precision; rounding is applied once, at the end.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ComputePlatformFee validates the total fee and takes the fixed platform
// cut. It returns the rounded fee and the distributable remainder.
func ComputePlatformFee(total float64) (fee, distributable float64, err error) {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, 0, &InvalidInputError{Field: "total", Value: total, Reason: "must be a finite number"}
	}
	if total <= 0 {
		return 0, 0, &InvalidInputError{Field: "total", Value: total, Reason: "must be positive"}
	}

	fee = Round2(total * PlatformFeePercent / 100)
	return fee, total - fee, nil
}

// ResolvePercentageShares fills in the auto-balanced role's percentage and
// checks that the three shares sum to 100.
//
// The auto-balanced share is max(0, 100 - sum of the other two): it
// saturates at zero instead of going negative when the manual shares already
// exceed 100. The resolved values are returned even when the sum check
// fails, so callers can render them next to the validation warning.
func ResolvePercentageShares(admin, therapist, doctor *float64, autoBalance Role) (adminPct, therapistPct, doctorPct float64, err error) {
	shares := map[Role]*float64{
		RoleAdmin:     admin,
		RoleTherapist: therapist,
		RoleDoctor:    doctor,
	}

	resolved := map[Role]float64{}
	for _, role := range []Role{RoleAdmin, RoleTherapist, RoleDoctor} {
		if role == autoBalance {
			continue
		}
		v := shares[role]
		if v == nil {
			return 0, 0, 0, &InvalidInputError{Field: shareField(role), Reason: "is required"}
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return 0, 0, 0, &InvalidInputError{Field: shareField(role), Value: *v, Reason: "must be a finite number"}
		}
		if *v < 0 || *v > 100 {
			return 0, 0, 0, &InvalidInputError{Field: shareField(role), Value: *v, Reason: "must be between 0 and 100"}
		}
		resolved[role] = *v
	}

	if autoBalance != "" {
		if _, ok := shares[autoBalance]; !ok {
			return 0, 0, 0, &InvalidInputError{Field: "auto_balance_role", Reason: "must be admin, therapist or doctor"}
		}
		otherSum := 0.0
		for role, v := range resolved {
			if role != autoBalance {
				otherSum += v
			}
		}
		balanced := 100 - otherSum
		if balanced < 0 {
			balanced = 0
		}
		resolved[autoBalance] = balanced
	}

	adminPct = resolved[RoleAdmin]
	therapistPct = resolved[RoleTherapist]
	doctorPct = resolved[RoleDoctor]

	sum := adminPct + therapistPct + doctorPct
	if math.Abs(sum-100) > SumTolerance {
		return adminPct, therapistPct, doctorPct, &PercentageMismatchError{Sum: sum}
	}
	return adminPct, therapistPct, doctorPct, nil
}

// Distribute computes the full fee breakdown for one total and policy.
//
// Percentage mode resolves shares via ResolvePercentageShares and applies
// each percentage to the distributable amount. Fixed mode treats the shares
// as advisory caps: when their sum exceeds the distributable amount all
// three are scaled down proportionally instead of failing.
func Distribute(total float64, policy Policy) (*Result, error) {
	fee, distributable, err := ComputePlatformFee(total)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Total:         total,
		PlatformFee:   fee,
		Distributable: distributable,
	}

	switch policy.Mode {
	case ModePercentage:
		adminPct, therapistPct, doctorPct, err := ResolvePercentageShares(
			policy.AdminShare, policy.TherapistShare, policy.DoctorShare, policy.AutoBalanceRole,
		)
		if err != nil {
			return nil, err
		}
		res.Admin = Round2(distributable * adminPct / 100)
		res.Therapist = Round2(distributable * therapistPct / 100)
		res.Doctor = Round2(distributable * doctorPct / 100)
		res.AdminPercent = adminPct
		res.TherapistPercent = therapistPct
		res.DoctorPercent = doctorPct

	case ModeFixed:
		admin, err := fixedShare(RoleAdmin, policy.AdminShare)
		if err != nil {
			return nil, err
		}
		therapist, err := fixedShare(RoleTherapist, policy.TherapistShare)
		if err != nil {
			return nil, err
		}
		doctor, err := fixedShare(RoleDoctor, policy.DoctorShare)
		if err != nil {
			return nil, err
		}

		if sum := admin + therapist + doctor; sum > distributable && sum > 0 {
			// Proportional shrink: no role is favored.
			scale := distributable / sum
			admin *= scale
			therapist *= scale
			doctor *= scale
		}
		res.Admin = Round2(admin)
		res.Therapist = Round2(therapist)
		res.Doctor = Round2(doctor)
		res.AdminPercent = Round2(admin / distributable * 100)
		res.TherapistPercent = Round2(therapist / distributable * 100)
		res.DoctorPercent = Round2(doctor / distributable * 100)

	default:
		return nil, &InvalidInputError{Field: "mode", Reason: "must be percentage or fixed"}
	}

	res.BelowThreshold = res.Admin < MinAdminShare
	return res, nil
}

func fixedShare(role Role, v *float64) (float64, error) {
	if v == nil {
		return 0, &IncompleteInputError{Field: shareField(role)}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, &IncompleteInputError{Field: shareField(role)}
	}
	if *v < 0 {
		return 0, &InvalidInputError{Field: shareField(role), Value: *v, Reason: "must not be negative"}
	}
	return *v, nil
}

func shareField(role Role) string {
	return string(role) + "_share"
}
