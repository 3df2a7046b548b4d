package toolbar

// TooltipText composes a button tooltip from its description and optional
// keyboard shortcut.
func TooltipText(tr Translator, description, key string) string {
	if key == "" {
		return description
	}
	hint := tr.T("tooltip_keyhint", nil)
	if description == "" {
		return hint + " " + key
	}
	return description + "  " + hint + " " + key
}
