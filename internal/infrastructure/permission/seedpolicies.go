package permission

import (
	"fmt"

	"quickdesk/internal/shared/logger"
)

// SeedDefaultPolicies installs the baseline role policies. Running it
// repeatedly is safe: casbin ignores policies that already exist.
func SeedDefaultPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// End users work with their own tickets and public comments.
		{"end_user", "ticket", "create"},
		{"end_user", "ticket", "read"},
		{"end_user", "ticket", "update"},
		{"end_user", "ticket", "delete"},
		{"end_user", "comment", "create"},
		{"end_user", "comment", "read"},
		{"end_user", "vote", "cast"},
		{"end_user", "role_request", "create"},
		{"end_user", "role_request", "read"},
		{"end_user", "category", "read"},

		// Support agents additionally work the ticket queue.
		{"support_agent", "ticket", "assign"},
		{"support_agent", "ticket", "change_status"},
		{"support_agent", "comment", "create_internal"},

		// Admins manage everything.
		{"admin", "category", "create"},
		{"admin", "category", "update"},
		{"admin", "category", "delete"},
		{"admin", "role_request", "review"},
		{"admin", "role_request", "list_all"},
		{"admin", "role_request", "delete"},
		{"admin", "user", "read"},
		{"admin", "user", "update"},
		{"admin", "user", "delete"},
		{"admin", "dashboard", "read"},
	}

	// Role inheritance: agents do everything end users can, admins
	// everything agents can.
	groupings := [][]string{
		{"support_agent", "end_user"},
		{"admin", "support_agent"},
	}

	raw := e.Raw()

	for _, policy := range policies {
		if _, err := raw.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	for _, grouping := range groupings {
		if _, err := raw.AddGroupingPolicy(grouping); err != nil {
			log.Errorw("failed to add role inheritance",
				"error", err,
				"role", grouping[0],
				"inherits", grouping[1])
			return fmt.Errorf("failed to add role inheritance [%s -> %s]: %w",
				grouping[0], grouping[1], err)
		}
	}

	if err := raw.SavePolicy(); err != nil {
		log.Error("failed to save seeded policies", "error", err)
		return fmt.Errorf("failed to save seeded policies: %w", err)
	}

	log.Info("default permission policies seeded")
	return nil
}
