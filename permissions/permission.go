package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"barbershop/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleAdmin, constant.RoleSuperAdmin}

// Permission lists the roles allowed on one route pattern. An empty list admits any authenticated admin.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up a chi route pattern. Trailing slashes are not significant.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = strings.TrimSuffix(path, "/")

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return strings.TrimSuffix(rp.Path, "/") == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Validate rejects unknown roles and duplicate routes.
func (r *PermissionData) Validate() error {
	seen := map[string]struct{}{}

	for _, endpoint := range r.Endpoints {
		key := strings.ToUpper(endpoint.Method) + " " + strings.TrimSuffix(endpoint.Path, "/")
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate permission for %s", key)
		}

		seen[key] = struct{}{}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("unknown role %q on %s", role, key)
			}
		}
	}

	return nil
}

// Get loads the embedded table. A nil result makes RBAC deny every admin route.
func Get() *PermissionData {
	return load(permissionsData)
}

func load(raw []byte) *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	if err := permissions.Validate(); err != nil {
		log.Error().Err(err).Msg("Rejected embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}
