package db

import (
	"context"
	"fmt"

	"vms/internal/domain"
)

// SeedRoles inserts the static role table entries if they are missing.
// Idempotent — safe to run on every startup.
func SeedRoles(ctx context.Context, roles domain.RoleRepository) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleOrganizer, domain.RoleVolunteer} {
		if err := roles.Ensure(ctx, name); err != nil {
			return fmt.Errorf("ensure role %s: %w", name, err)
		}
	}
	return nil
}
