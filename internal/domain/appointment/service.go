package appointment

import "strings"

// DurationTable maps a service type to its appointment length in minutes.
// Lookup is case-insensitive; unmapped services get the default. The table
// is configuration data, loaded at startup.
type DurationTable struct {
	byService  map[string]int
	defaultMin int
}

func NewDurationTable(services map[string]int, defaultMin int) DurationTable {
	byService := make(map[string]int, len(services))
	for name, min := range services {
		if min > 0 {
			byService[strings.ToLower(strings.TrimSpace(name))] = min
		}
	}
	if defaultMin <= 0 {
		defaultMin = 30
	}
	return DurationTable{byService: byService, defaultMin: defaultMin}
}

func (t DurationTable) DurationFor(serviceType string) int {
	if min, ok := t.byService[strings.ToLower(strings.TrimSpace(serviceType))]; ok {
		return min
	}
	return t.defaultMin
}
