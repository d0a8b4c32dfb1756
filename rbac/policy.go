// Package rbac holds the per-endpoint, per-row access decision rules.
// Everything here is a pure function of the principal and its inputs; the
// coarse role gate runs before any row-store query and the row-level checks
// run against fetched row data.
package rbac

import "github.com/cictrix/hris-backend/models"

// Resource identifies the resource kind an operation targets
type Resource string

const (
	ResourceApplicant  Resource = "applicant"
	ResourceEvaluation Resource = "evaluation"
)

// Operation identifies what the caller wants to do with a resource
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
)

// Decision is the outcome of an authorization check
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision permits the operation
func (d Decision) Allowed() bool {
	return d == Allow
}

// RowOwner carries the ownership fields of a fetched row. Email is the
// owning email of an applicant row; EvaluatorID is the creator of an
// evaluation row.
type RowOwner struct {
	Email       string
	EvaluatorID string
}

// ScopeKind classifies how a list result must be narrowed for a principal
type ScopeKind int

const (
	// ScopeNone means the principal may not list this resource at all
	ScopeNone ScopeKind = iota
	// ScopeAll grants the unfiltered row set
	ScopeAll
	// ScopeOwnEmail narrows to rows whose email matches the principal's
	ScopeOwnEmail
	// ScopeOwnEvaluations narrows to rows the principal created
	ScopeOwnEvaluations
)

// Scope is a row-level filter computed for a list operation. The filter is
// applied inside the row-store query, never as a post-hoc reject: list
// results are silently scoped.
type Scope struct {
	Kind        ScopeKind
	Email       string
	EvaluatorID string
}

// managerial roles see the full applicant and evaluation sets
func isManagerial(r models.Role) bool {
	switch r {
	case models.RoleAdmin, models.RolePM, models.RoleRSP, models.RoleLND:
		return true
	}
	return false
}

// Authorize decides whether a principal may perform an operation on a
// resource. When row is nil only the coarse role layer is checked; passing
// the fetched row adds the ownership check. Any role outside the enumerated
// set satisfies no rule.
func Authorize(p models.Principal, res Resource, op Operation, row *RowOwner) Decision {
	switch res {
	case ResourceApplicant:
		switch op {
		case OpList:
			if ListScope(p, res).Kind != ScopeNone {
				return Allow
			}
		case OpGet:
			if isManagerial(p.Role) || p.Role == models.RoleInterviewer {
				return Allow
			}
			if p.Role == models.RoleApplicant {
				if row == nil || row.Email == p.Email {
					return Allow
				}
			}
		case OpUpdate:
			if isManagerial(p.Role) {
				return Allow
			}
		}

	case ResourceEvaluation:
		switch op {
		case OpList:
			if isManagerial(p.Role) {
				return Allow
			}
			if p.Role == models.RoleRater || p.Role == models.RoleInterviewer {
				if row == nil || row.EvaluatorID == p.UserID {
					return Allow
				}
			}
		case OpCreate:
			if p.Role == models.RoleRater || p.Role == models.RoleInterviewer {
				return Allow
			}
		}
	}

	return Deny
}

// ListScope computes the row-level filter a list operation must apply for
// the given principal.
func ListScope(p models.Principal, res Resource) Scope {
	switch res {
	case ResourceApplicant:
		if isManagerial(p.Role) {
			return Scope{Kind: ScopeAll}
		}
		if p.Role == models.RoleInterviewer {
			// Interviewers should only see assigned applicants, but the
			// assignment relation is not modeled yet. Until a product
			// decision narrows this, interviewers get the unfiltered set.
			return Scope{Kind: ScopeAll}
		}
		if p.Role == models.RoleApplicant {
			return Scope{Kind: ScopeOwnEmail, Email: p.Email}
		}

	case ResourceEvaluation:
		if isManagerial(p.Role) {
			return Scope{Kind: ScopeAll}
		}
		if p.Role == models.RoleRater || p.Role == models.RoleInterviewer {
			return Scope{Kind: ScopeOwnEvaluations, EvaluatorID: p.UserID}
		}
	}

	return Scope{Kind: ScopeNone}
}
