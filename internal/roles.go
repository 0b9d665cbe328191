package internal

import "strings"

// Message roles recognized across all adapters.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// NormalizeRole maps a free-text role/type/sender field from the source
// database to one of the four known roles via case-insensitive substring
// matching. This is a heuristic, not a guarantee: Cursor has never documented
// its role vocabulary, so unmatched or absent values default to "user".
func NormalizeRole(raw string) string {
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "human"), strings.Contains(lower, "user"):
		return RoleUser
	case strings.Contains(lower, "assistant"), strings.Contains(lower, "ai"), strings.Contains(lower, "cursor"), strings.Contains(lower, "bot"):
		return RoleAssistant
	case strings.Contains(lower, "system"):
		return RoleSystem
	case strings.Contains(lower, "tool"), strings.Contains(lower, "function"):
		return RoleTool
	default:
		return RoleUser
	}
}

// NormalizeRoleType maps Cursor's numeric bubble type (1=user, 2=assistant)
// to a role string.
func NormalizeRoleType(msgType int) string {
	switch msgType {
	case 1:
		return RoleUser
	case 2:
		return RoleAssistant
	default:
		return RoleUser
	}
}
