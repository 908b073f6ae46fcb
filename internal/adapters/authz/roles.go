// Package authz maps accounts to roles from configuration.
package authz

import (
	"strings"

	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/spf13/viper"
)

const (
	AdminKey       = "roles.admin"
	ContributorKey = "roles.contributor"
)

// RoleTable grants actions by role. An account listed under both roles is
// an admin.
type RoleTable struct {
	roles map[domain.AccountID]domain.Role
}

var _ ports.Authorizer = (*RoleTable)(nil)

func NewRoleTable(admins, contributors []string) *RoleTable {
	roles := make(map[domain.AccountID]domain.Role, len(admins)+len(contributors))
	for _, account := range contributors {
		if id := normalize(account); id != "" {
			roles[id] = domain.RoleContributor
		}
	}
	for _, account := range admins {
		if id := normalize(account); id != "" {
			roles[id] = domain.RoleAdmin
		}
	}

	return &RoleTable{roles: roles}
}

func FromViper(cfg *viper.Viper) *RoleTable {
	if cfg == nil {
		cfg = viper.New()
	}
	return NewRoleTable(cfg.GetStringSlice(AdminKey), cfg.GetStringSlice(ContributorKey))
}

func (t *RoleTable) Authorize(action domain.Action, account domain.AccountID) bool {
	role, ok := t.roles[normalize(string(account))]
	return ok && role.Allows(action)
}

func (t *RoleTable) RoleOf(account domain.AccountID) (domain.Role, bool) {
	role, ok := t.roles[normalize(string(account))]
	return role, ok
}

func normalize(account string) domain.AccountID {
	return domain.AccountID(strings.TrimSpace(account))
}
