package revenue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/peyvand/peyvand_backend/config"
	"github.com/peyvand/peyvand_backend/internal/repo"
	entpolicy "github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/pkg/revsplit"
)

const defaultPolicyCacheKey = "revenue:default_policy"

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// PolicyInput carries the editable fields of a distribution policy. Shares
// are pointers so "unset" survives the trip from the wire: in percentage
// mode the auto-balanced role's share stays nil.
type PolicyInput struct {
	Name            string
	Mode            revsplit.Mode
	AdminShare      *float64
	TherapistShare  *float64
	DoctorShare     *float64
	AutoBalanceRole revsplit.Role
	IsDefault       bool
}

type Service interface {
	// Policy store
	CreatePolicy(ctx context.Context, in PolicyInput) (*repo.DistributionPolicy, error)
	UpdatePolicy(ctx context.Context, id uuid.UUID, in PolicyInput) (*repo.DistributionPolicy, error)
	GetPolicy(ctx context.Context, id uuid.UUID) (*repo.DistributionPolicy, error)
	ListPolicies(ctx context.Context, page, perPage int) ([]*repo.DistributionPolicy, error)
	DeletePolicy(ctx context.Context, id uuid.UUID) error
	SetDefaultPolicy(ctx context.Context, id uuid.UUID) error
	DefaultPolicy(ctx context.Context) (*repo.DistributionPolicy, error)

	// Calculation
	Preview(ctx context.Context, total float64, in PolicyInput) (*revsplit.Result, error)
	PreviewWithPolicy(ctx context.Context, id uuid.UUID, total float64) (*revsplit.Result, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type revenueService struct {
	db  *repo.Client
	rdb *goredis.Client
	cfg *config.Config
}

func New(db *repo.Client, rdb *goredis.Client, cfg *config.Config) Service {
	return &revenueService{db: db, rdb: rdb, cfg: cfg}
}

// ---------------------------------------------------------------------------
// Policy store
// ---------------------------------------------------------------------------

func (s *revenueService) CreatePolicy(ctx context.Context, in PolicyInput) (*repo.DistributionPolicy, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	c := s.db.DistributionPolicy.Create().
		SetName(in.Name).
		SetMode(entpolicy.Mode(in.Mode)).
		SetNillableAdminShare(in.AdminShare).
		SetNillableTherapistShare(in.TherapistShare).
		SetNillableDoctorShare(in.DoctorShare).
		SetIsDefault(in.IsDefault)

	if in.AutoBalanceRole != "" {
		role := entpolicy.AutoBalanceRole(in.AutoBalanceRole)
		c = c.SetAutoBalanceRole(role)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrPolicyNameTaken
		}
		return nil, fmt.Errorf("create policy: %w", err)
	}

	if in.IsDefault {
		if err := s.SetDefaultPolicy(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	s.invalidateDefaultCache(ctx)

	return p, nil
}

func (s *revenueService) UpdatePolicy(ctx context.Context, id uuid.UUID, in PolicyInput) (*repo.DistributionPolicy, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	u := s.db.DistributionPolicy.UpdateOneID(id).
		SetName(in.Name).
		SetMode(entpolicy.Mode(in.Mode)).
		SetNillableAdminShare(in.AdminShare).
		SetNillableTherapistShare(in.TherapistShare).
		SetNillableDoctorShare(in.DoctorShare)

	if in.AutoBalanceRole != "" {
		role := entpolicy.AutoBalanceRole(in.AutoBalanceRole)
		u = u.SetAutoBalanceRole(role)
	} else {
		u = u.ClearAutoBalanceRole()
	}

	p, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPolicyNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrPolicyNameTaken
		}
		return nil, fmt.Errorf("update policy: %w", err)
	}
	s.invalidateDefaultCache(ctx)

	return p, nil
}

func (s *revenueService) GetPolicy(ctx context.Context, id uuid.UUID) (*repo.DistributionPolicy, error) {
	p, err := s.db.DistributionPolicy.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return p, nil
}

func (s *revenueService) ListPolicies(ctx context.Context, page, perPage int) ([]*repo.DistributionPolicy, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	policies, err := s.db.DistributionPolicy.Query().
		Where(entpolicy.IsActive(true)).
		Order(entpolicy.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return policies, nil
}

// DeletePolicy soft-disables a policy so stored references stay resolvable.
func (s *revenueService) DeletePolicy(ctx context.Context, id uuid.UUID) error {
	err := s.db.DistributionPolicy.UpdateOneID(id).
		SetIsActive(false).
		SetIsDefault(false).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("delete policy: %w", err)
	}
	s.invalidateDefaultCache(ctx)
	return nil
}

func (s *revenueService) SetDefaultPolicy(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.DistributionPolicy.Update().
		Where(entpolicy.IsDefault(true), entpolicy.IDNEQ(id)).
		SetIsDefault(false).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear previous default: %w", err)
	}

	if err := tx.DistributionPolicy.UpdateOneID(id).
		SetIsDefault(true).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		if repo.IsNotFound(err) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("set default: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	s.invalidateDefaultCache(ctx)
	return nil
}

func (s *revenueService) DefaultPolicy(ctx context.Context) (*repo.DistributionPolicy, error) {
	if cached, err := s.rdb.Get(ctx, defaultPolicyCacheKey).Bytes(); err == nil {
		var p repo.DistributionPolicy
		if jsonErr := json.Unmarshal(cached, &p); jsonErr == nil {
			return &p, nil
		}
	}

	p, err := s.db.DistributionPolicy.Query().
		Where(entpolicy.IsDefault(true), entpolicy.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoDefaultPolicy
		}
		return nil, fmt.Errorf("get default policy: %w", err)
	}

	if data, err := json.Marshal(p); err == nil {
		ttl := time.Duration(s.cfg.Revenue.DefaultPolicyCacheTTLSeconds) * time.Second
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		if err := s.rdb.Set(ctx, defaultPolicyCacheKey, data, ttl).Err(); err != nil {
			slog.Warn("failed to cache default policy", "error", err)
		}
	}

	return p, nil
}

func (s *revenueService) invalidateDefaultCache(ctx context.Context) {
	if err := s.rdb.Del(ctx, defaultPolicyCacheKey).Err(); err != nil {
		slog.Warn("failed to invalidate default policy cache", "error", err)
	}
}

// ---------------------------------------------------------------------------
// Calculation
// ---------------------------------------------------------------------------

// Preview is a stateless calculation: it never reads or writes storage, so
// callers can re-invoke it on every form input change.
func (s *revenueService) Preview(ctx context.Context, total float64, in PolicyInput) (*revsplit.Result, error) {
	return revsplit.Distribute(total, toSplitPolicy(in))
}

func (s *revenueService) PreviewWithPolicy(ctx context.Context, id uuid.UUID, total float64) (*revsplit.Result, error) {
	p, err := s.GetPolicy(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrPolicyInactive
	}
	return revsplit.Distribute(total, fromRecord(p))
}

// validateInput reuses the calculator's own validation so a policy that
// cannot distribute is never persisted.
func validateInput(in PolicyInput) error {
	switch in.Mode {
	case revsplit.ModePercentage:
		_, _, _, err := revsplit.ResolvePercentageShares(
			in.AdminShare, in.TherapistShare, in.DoctorShare, in.AutoBalanceRole,
		)
		return err
	case revsplit.ModeFixed:
		// Shares must be present and non-negative; a probe distribution
		// over an arbitrary positive total checks exactly that.
		_, err := revsplit.Distribute(100, toSplitPolicy(in))
		return err
	default:
		return &revsplit.InvalidInputError{Field: "mode", Reason: "must be percentage or fixed"}
	}
}

func toSplitPolicy(in PolicyInput) revsplit.Policy {
	return revsplit.Policy{
		Mode:            in.Mode,
		AdminShare:      in.AdminShare,
		TherapistShare:  in.TherapistShare,
		DoctorShare:     in.DoctorShare,
		AutoBalanceRole: in.AutoBalanceRole,
	}
}

func fromRecord(p *repo.DistributionPolicy) revsplit.Policy {
	policy := revsplit.Policy{
		Mode:           revsplit.Mode(p.Mode),
		AdminShare:     p.AdminShare,
		TherapistShare: p.TherapistShare,
		DoctorShare:    p.DoctorShare,
	}
	if p.AutoBalanceRole != nil {
		policy.AutoBalanceRole = revsplit.Role(*p.AutoBalanceRole)
	}
	return policy
}
