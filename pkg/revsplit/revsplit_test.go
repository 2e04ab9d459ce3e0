package revsplit

import (
	"errors"
	"math"
	"testing"
)

func pct(v float64) *float64 { return &v }

func TestComputePlatformFee(t *testing.T) {
	tests := []struct {
		name              string
		total             float64
		wantFee           float64
		wantDistributable float64
		wantErr           bool
	}{
		{name: "round total", total: 10000, wantFee: 300, wantDistributable: 9700},
		{name: "small total", total: 1, wantFee: 0.03, wantDistributable: 0.97},
		{name: "fractional fee", total: 155, wantFee: 4.65, wantDistributable: 150.35},
		{name: "zero rejected", total: 0, wantErr: true},
		{name: "negative rejected", total: -50, wantErr: true},
		{name: "NaN rejected", total: math.NaN(), wantErr: true},
		{name: "Inf rejected", total: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, distributable, err := ComputePlatformFee(tt.total)
			if tt.wantErr {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("ComputePlatformFee(%v) error = %v, want InvalidInputError", tt.total, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputePlatformFee(%v) error = %v", tt.total, err)
			}
			if fee != tt.wantFee {
				t.Errorf("fee = %v, want %v", fee, tt.wantFee)
			}
			if math.Abs(distributable-tt.wantDistributable) > SumTolerance {
				t.Errorf("distributable = %v, want %v", distributable, tt.wantDistributable)
			}
		})
	}
}

func TestResolvePercentageShares_AutoBalance(t *testing.T) {
	admin, therapist, doctor, err := ResolvePercentageShares(pct(30), pct(40), nil, RoleDoctor)
	if err != nil {
		t.Fatalf("ResolvePercentageShares error = %v", err)
	}
	if admin != 30 || therapist != 40 || doctor != 30 {
		t.Errorf("resolved = %v/%v/%v, want 30/40/30", admin, therapist, doctor)
	}
}

func TestResolvePercentageShares_Saturation(t *testing.T) {
	// Manual shares already exceed 100: the balanced share saturates at 0
	// instead of going negative, and the sum check reports the overshoot.
	_, _, doctor, err := ResolvePercentageShares(pct(70), pct(50), nil, RoleDoctor)
	if doctor != 0 {
		t.Errorf("doctor = %v, want 0 (saturated, not negative)", doctor)
	}
	var mismatch *PercentageMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want PercentageMismatchError", err)
	}
	if math.Abs(mismatch.Sum-120) > SumTolerance {
		t.Errorf("mismatch.Sum = %v, want 120", mismatch.Sum)
	}
}

func TestResolvePercentageShares_ManualMismatch(t *testing.T) {
	_, _, _, err := ResolvePercentageShares(pct(50), pct(60), pct(10), "")
	var mismatch *PercentageMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want PercentageMismatchError", err)
	}
	if math.Abs(mismatch.Sum-120) > SumTolerance {
		t.Errorf("mismatch.Sum = %v, want 120", mismatch.Sum)
	}
}

func TestResolvePercentageShares_Validation(t *testing.T) {
	tests := []struct {
		name      string
		admin     *float64
		therapist *float64
		doctor    *float64
		auto      Role
	}{
		{name: "missing required share", admin: pct(30), therapist: nil, doctor: nil, auto: RoleDoctor},
		{name: "share above 100", admin: pct(130), therapist: pct(40), doctor: nil, auto: RoleDoctor},
		{name: "negative share", admin: pct(-5), therapist: pct(40), doctor: nil, auto: RoleDoctor},
		{name: "NaN share", admin: pct(math.NaN()), therapist: pct(40), doctor: nil, auto: RoleDoctor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ResolvePercentageShares(tt.admin, tt.therapist, tt.doctor, tt.auto)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidInputError", err)
			}
		})
	}
}

func TestResolvePercentageShares_ToleranceNotStrictEquality(t *testing.T) {
	// 33.33 + 33.33 + 33.34 hits 100 only within floating tolerance.
	_, _, _, err := ResolvePercentageShares(pct(33.33), pct(33.33), pct(33.34), "")
	if err != nil {
		t.Fatalf("ResolvePercentageShares error = %v, want nil within tolerance", err)
	}
}

func TestDistribute_PercentageEndToEnd(t *testing.T) {
	res, err := Distribute(10000, Policy{
		Mode:            ModePercentage,
		AdminShare:      pct(10),
		TherapistShare:  pct(60),
		AutoBalanceRole: RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Distribute error = %v", err)
	}

	if res.PlatformFee != 300 {
		t.Errorf("PlatformFee = %v, want 300", res.PlatformFee)
	}
	if res.Distributable != 9700 {
		t.Errorf("Distributable = %v, want 9700", res.Distributable)
	}
	if res.DoctorPercent != 30 {
		t.Errorf("DoctorPercent = %v, want 30 (auto-balanced)", res.DoctorPercent)
	}
	if res.Admin != 970 || res.Therapist != 5820 || res.Doctor != 2910 {
		t.Errorf("shares = %v/%v/%v, want 970/5820/2910", res.Admin, res.Therapist, res.Doctor)
	}
	if res.BelowThreshold {
		t.Error("BelowThreshold = true, want false")
	}
}

func TestDistribute_FixedProportionalShrink(t *testing.T) {
	// total 1000 leaves 970 distributable; fixed shares sum to 1200 and are
	// shrunk by 970/1200 with no role favored.
	res, err := Distribute(1000, Policy{
		Mode:           ModeFixed,
		AdminShare:     pct(500),
		TherapistShare: pct(400),
		DoctorShare:    pct(300),
	})
	if err != nil {
		t.Fatalf("Distribute error = %v", err)
	}

	scale := 970.0 / 1200.0
	if want := Round2(500 * scale); res.Admin != want {
		t.Errorf("Admin = %v, want %v", res.Admin, want)
	}
	if want := Round2(400 * scale); res.Therapist != want {
		t.Errorf("Therapist = %v, want %v", res.Therapist, want)
	}
	if want := Round2(300 * scale); res.Doctor != want {
		t.Errorf("Doctor = %v, want %v", res.Doctor, want)
	}
	if sum := res.Admin + res.Therapist + res.Doctor; math.Abs(sum-res.Distributable) > SumTolerance {
		t.Errorf("share sum = %v, want %v within tolerance", sum, res.Distributable)
	}
}

func TestDistribute_FixedWithinBudgetKeepsAmounts(t *testing.T) {
	res, err := Distribute(10000, Policy{
		Mode:           ModeFixed,
		AdminShare:     pct(500),
		TherapistShare: pct(400),
		DoctorShare:    pct(300),
	})
	if err != nil {
		t.Fatalf("Distribute error = %v", err)
	}
	if res.Admin != 500 || res.Therapist != 400 || res.Doctor != 300 {
		t.Errorf("shares = %v/%v/%v, want 500/400/300 untouched", res.Admin, res.Therapist, res.Doctor)
	}
	// Percent mirrors are derived by division in fixed mode.
	if want := Round2(500 / 9700.0 * 100); res.AdminPercent != want {
		t.Errorf("AdminPercent = %v, want %v", res.AdminPercent, want)
	}
}

func TestDistribute_ThresholdFlag(t *testing.T) {
	tests := []struct {
		name     string
		adminPct float64
		want     bool
	}{
		// 3% of 9700 = 291.00 < 400
		{name: "below threshold", adminPct: 3, want: true},
		// 5% of 9700 = 485.00 >= 400
		{name: "above threshold", adminPct: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Distribute(10000, Policy{
				Mode:            ModePercentage,
				AdminShare:      pct(tt.adminPct),
				TherapistShare:  pct(60),
				AutoBalanceRole: RoleDoctor,
			})
			if err != nil {
				t.Fatalf("Distribute error = %v", err)
			}
			if res.BelowThreshold != tt.want {
				t.Errorf("BelowThreshold = %v (admin=%v), want %v", res.BelowThreshold, res.Admin, tt.want)
			}
		})
	}
}

func TestDistribute_Conservation(t *testing.T) {
	policies := []struct {
		name   string
		policy Policy
	}{
		{"percentage even", Policy{Mode: ModePercentage, AdminShare: pct(20), TherapistShare: pct(50), DoctorShare: pct(30)}},
		{"percentage auto-balanced", Policy{Mode: ModePercentage, AdminShare: pct(12.5), TherapistShare: pct(55), AutoBalanceRole: RoleDoctor}},
		{"fixed shrunk", Policy{Mode: ModeFixed, AdminShare: pct(900), TherapistShare: pct(800), DoctorShare: pct(700)}},
	}
	totals := []float64{1000, 10000, 123456.78}

	for _, tc := range policies {
		for _, total := range totals {
			res, err := Distribute(total, tc.policy)
			if err != nil {
				t.Fatalf("%s/total=%v: Distribute error = %v", tc.name, total, err)
			}
			sum := res.PlatformFee + res.Admin + res.Therapist + res.Doctor
			if tc.policy.Mode == ModeFixed && res.Admin+res.Therapist+res.Doctor < res.Distributable-SumTolerance {
				// Fixed shares below the budget intentionally leave a remainder.
				continue
			}
			if math.Abs(sum-total) > SumTolerance {
				t.Errorf("%s/total=%v: fee+shares = %v, want %v within tolerance", tc.name, total, sum, total)
			}
		}
	}
}

func TestDistribute_Idempotent(t *testing.T) {
	policy := Policy{
		Mode:            ModePercentage,
		AdminShare:      pct(10),
		TherapistShare:  pct(60),
		AutoBalanceRole: RoleDoctor,
	}
	first, err := Distribute(10000, policy)
	if err != nil {
		t.Fatalf("Distribute error = %v", err)
	}
	second, err := Distribute(10000, policy)
	if err != nil {
		t.Fatalf("Distribute error = %v", err)
	}
	if *first != *second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestDistribute_Rejections(t *testing.T) {
	valid := Policy{Mode: ModePercentage, AdminShare: pct(20), TherapistShare: pct(50), DoctorShare: pct(30)}

	t.Run("zero total", func(t *testing.T) {
		_, err := Distribute(0, valid)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want InvalidInputError", err)
		}
		if invalid.Field != "total" {
			t.Errorf("Field = %q, want total", invalid.Field)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := Distribute(-50, valid)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want InvalidInputError", err)
		}
	})

	t.Run("manual percentages with bad sum", func(t *testing.T) {
		_, err := Distribute(1000, Policy{
			Mode: ModePercentage, AdminShare: pct(50), TherapistShare: pct(60), DoctorShare: pct(10),
		})
		var mismatch *PercentageMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("error = %v, want PercentageMismatchError", err)
		}
	})

	t.Run("fixed mode missing share", func(t *testing.T) {
		_, err := Distribute(1000, Policy{
			Mode: ModeFixed, AdminShare: pct(500), TherapistShare: pct(400),
		})
		var incomplete *IncompleteInputError
		if !errors.As(err, &incomplete) {
			t.Fatalf("error = %v, want IncompleteInputError", err)
		}
		if incomplete.Field != "doctor_share" {
			t.Errorf("Field = %q, want doctor_share", incomplete.Field)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Distribute(1000, Policy{Mode: "flat"})
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want InvalidInputError", err)
		}
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.375, 4.38}, // exact half rounds up
		{0.125, 0.13},
		{4.514, 4.51},
		{404.16666666, 404.17},
		{0.005, 0.01},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
