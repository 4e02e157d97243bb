package cv

import "strings"

// SplitSkill separates a composite skill such as "**Languages:** Go, Python"
// into its category and items. ok is false for plain skills.
func SplitSkill(skill string) (category, items string, ok bool) {
	if !strings.Contains(skill, "**") {
		return category, items, ok
	}

	idx := strings.Index(skill, ":**")
	if idx < 0 {
		return category, items, ok
	}

	category = strings.ReplaceAll(skill[:idx], "**", "")
	items = strings.TrimSpace(skill[idx+len(":**"):])
	ok = true
	return category, items, ok
}
