package rbac

import (
	"sync"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// policy rows: subject, resource, action. Employee roles are grouped under
// the "employee" subject; role-scoped management rules on top of these are
// enforced in the employee service via the domain role ordering.
var policies = [][]string{
	{"admin", "company", "create"},
	{"admin", "company", "read"},
	{"admin", "company", "update"},
	{"admin", "company", "status"},
	{"admin", "branch", "read"},
	{"admin", "employee", "read"},
	{"admin", "report", "read"},
	{"admin", "report", "export"},
	{"admin", "task", "read"},
	{"admin", "message", "create"},
	{"admin", "message", "read"},
	{"admin", "message", "update"},

	{"company", "company", "read"},
	{"company", "company", "update"},
	{"company", "branch", "create"},
	{"company", "branch", "read"},
	{"company", "branch", "update"},
	{"company", "branch", "status"},
	{"company", "employee", "create"},
	{"company", "employee", "read"},
	{"company", "employee", "update"},
	{"company", "employee", "status"},
	{"company", "employee", "reset_password"},
	{"company", "report", "read"},
	{"company", "report", "export"},
	{"company", "task", "create"},
	{"company", "task", "read"},
	{"company", "task", "update"},
	{"company", "task", "delete"},
	{"company", "message", "create"},
	{"company", "message", "read"},
	{"company", "message", "update"},

	{"employee", "employee", "read"},
	// Self-service profile edits; the employee service narrows the scope.
	{"employee", "employee", "update"},
	{"employee", "report", "create"},
	{"employee", "report", "read"},
	{"employee", "report", "export"},
	{"employee", "task", "read"},
	{"employee", "task", "update"},

	// Branch management roles may administer lower-privilege employees.
	{string(domain.RoleManager), "employee", "create"},
	{string(domain.RoleManager), "employee", "status"},
	{string(domain.RoleManager), "employee", "reset_password"},
	{string(domain.RoleManager), "task", "create"},
	{string(domain.RoleManager), "task", "delete"},
	{string(domain.RoleAsstManager), "employee", "create"},
	{string(domain.RoleAsstManager), "employee", "status"},
	{string(domain.RoleAsstManager), "employee", "reset_password"},
}

var groupings = [][]string{
	{string(domain.RoleManager), "employee"},
	{string(domain.RoleAsstManager), "employee"},
	{string(domain.RoleGeneralEmployee), "employee"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadStaticPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadStaticPolicy() error {
	s.enforcer.ClearPolicy()

	for _, g := range groupings {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Subject, req.Resource, req.Action)
}
