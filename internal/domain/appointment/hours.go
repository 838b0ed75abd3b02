package appointment

// ===============================
// Opening hours resolution
// ===============================

// HoursCarrier is anything that can expose an opening window: a shop entity
// or an individual barber with a schedule override.
type HoursCarrier interface {
	Hours() (open, close string, ok bool)
}

// Window is a daily opening window in shop-local "HH:MM".
type Window struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

// ResolveWindow walks the carriers in priority order and returns the first
// window actually set, falling back to def. Nil carriers are skipped.
func ResolveWindow(def Window, carriers ...HoursCarrier) Window {
	for _, c := range carriers {
		if c == nil {
			continue
		}
		if open, close, ok := c.Hours(); ok {
			return Window{Opening: open, Closing: close}
		}
	}
	return def
}
