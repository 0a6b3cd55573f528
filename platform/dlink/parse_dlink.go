package dlink

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/napalm-community/dlink/domain/entities"
)

// Uptime unit sizes used when folding "show switch" uptime text into seconds
const (
	HourSeconds = 3600
	DaySeconds  = 24 * HourSeconds
	WeekSeconds = 7 * DaySeconds
	YearSeconds = 365 * DaySeconds
)

var (
	arpEntryRegex = regexp.MustCompile(`^(\w+)\s+` +
		`(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\s+` +
		`([0-9A-Fa-f]{2}(?:[:-][0-9A-Fa-f]{2}){5})\s+` +
		`(\w+(?:/\w+)*)`)
	fdbEntryRegex = regexp.MustCompile(`^(\d{1,4})\s+` +
		`(\S+)\s+` +
		`([0-9A-Fa-f]{2}(?:[:-][0-9A-Fa-f]{2}){5})\s+` +
		`(\S+)\s+` +
		`(\w+)\s+` +
		`(\w+)`)
	uptimeUnitRegexes = map[string]*regexp.Regexp{
		"year":   regexp.MustCompile(`(\d+)\s*(?:year|yr)`),
		"week":   regexp.MustCompile(`(\d+)\s*(?:week|wk)`),
		"day":    regexp.MustCompile(`(\d+)\s*day`),
		"hour":   regexp.MustCompile(`(\d+)\s*(?:hour|hr)`),
		"minute": regexp.MustCompile(`(\d+)\s*min`),
		"second": regexp.MustCompile(`(\d+)\s*sec`),
	}
	macPlain        = regexp.MustCompile(`^[0-9a-f]{12}$`)
	commandErrHints = []string{
		"invalid command",
		"unknown command",
		"incomplete command",
		"ambiguous command",
		"available commands",
		"syntax error",
		"next possible completions",
	}
)

// parseSwitchFacts turns "show switch" output into name/value pairs. Values
// keep their own colons, only the first one separates field names.
func parseSwitchFacts(output string) map[string]string {
	facts := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isSeparatorLine(trimmed) {
			continue
		}
		name, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		facts[name] = strings.TrimSpace(value)
	}
	return facts
}

// parseUptime returns the uptime in seconds folded from text like
// "3 days, 2 hrs, 1 min, 30 secs"
func parseUptime(uptime string) int64 {
	lower := strings.ToLower(uptime)
	units := map[string]int64{
		"year":   YearSeconds,
		"week":   WeekSeconds,
		"day":    DaySeconds,
		"hour":   HourSeconds,
		"minute": 60,
		"second": 1,
	}
	var total int64
	for unit, factor := range units {
		match := uptimeUnitRegexes[unit].FindStringSubmatch(lower)
		if len(match) < 2 {
			continue
		}
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		total += value * factor
	}
	return total
}

// buildFacts maps the raw "show switch" fields onto the neutral facts schema.
// Key spellings vary across firmware generations, so each field probes a list
// of known names.
func buildFacts(attributes map[string]string) entities.Facts {
	facts := entities.Facts{
		Vendor:        "D-Link",
		InterfaceList: []string{},
		Attributes:    attributes,
	}
	facts.Model = firstAttribute(attributes, "Device Type", "System Type")
	facts.SerialNumber = firstAttribute(attributes, "Serial Number", "Device S/N", "System Serial Number")
	facts.OSVersion = firstAttribute(attributes, "Firmware Version", "Boot PROM Version")
	facts.Hostname = firstAttribute(attributes, "System Name", "System name")
	if mac := firstAttribute(attributes, "MAC Address", "System MAC Address"); mac != "" {
		facts.MacAddress = formatPlainMac(normalizeMac(mac))
	}
	if uptime := firstAttribute(attributes, "Device Uptime", "System Uptime", "System up time"); uptime != "" {
		facts.UptimeSec = parseUptime(uptime)
	}
	return facts
}

func firstAttribute(attributes map[string]string, names ...string) string {
	for _, name := range names {
		if value, ok := attributes[name]; ok && value != "" {
			return value
		}
	}
	return ""
}

func parseARPTable(output string) []entities.ARPEntry {
	entries := make([]entities.ARPEntry, 0)
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isSeparatorLine(trimmed) {
			continue
		}
		match := arpEntryRegex.FindStringSubmatch(trimmed)
		if len(match) < 5 {
			continue
		}
		plain := normalizeMac(match[3])
		if !macPlain.MatchString(plain) {
			continue
		}
		entries = append(entries, entities.ARPEntry{
			Interface: match[1],
			IP:        match[2],
			Mac:       plain,
			MacFull:   formatPlainMac(plain),
			Type:      match[4],
		})
	}
	return entries
}

func parseMACTable(output string) []entities.MACEntry {
	entries := make([]entities.MACEntry, 0)
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isSeparatorLine(trimmed) {
			continue
		}
		match := fdbEntryRegex.FindStringSubmatch(trimmed)
		if len(match) < 7 {
			continue
		}
		if _, err := strconv.Atoi(match[1]); err != nil {
			continue
		}
		plain := normalizeMac(match[3])
		if !macPlain.MatchString(plain) {
			continue
		}
		entries = append(entries, entities.MACEntry{
			VID:      match[1],
			VLANName: match[2],
			Mac:      plain,
			MacFull:  formatPlainMac(plain),
			Port:     match[4],
			Type:     match[5],
			Status:   match[6],
		})
	}
	return entries
}

// normalizeMac lowers a MAC and strips separators to the plain 12-digit form
func normalizeMac(mac string) string {
	replacer := strings.NewReplacer(":", "", "-", "", ".", "")
	return strings.ToLower(replacer.Replace(mac))
}

func formatPlainMac(mac string) string {
	var builder strings.Builder
	for i := 0; i+1 < len(mac); i += 2 {
		if i > 0 {
			builder.WriteByte(':')
		}
		builder.WriteString(mac[i : i+2])
	}
	return builder.String()
}

func isCommandError(output string) bool {
	lower := strings.ToLower(output)
	for _, keyword := range commandErrHints {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if len(trimmed) < 3 {
		return false
	}
	for _, ch := range trimmed {
		if ch != '-' && ch != '=' && ch != '+' && ch != '*' {
			return false
		}
	}
	return true
}
