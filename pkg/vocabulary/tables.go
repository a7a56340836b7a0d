package vocabulary

// DefaultTLD is the top-level label appended to every generated root domain.
const DefaultTLD = "edu"

// CommonTables provides the token lists used to synthesize domain names
var CommonTables = map[string][]string{
	"words": {
		"tech", "dev", "info", "cloud", "web", "net", "sys", "app", "data",
		"cyber", "digital", "smart", "ai", "ml", "iot", "edu", "learn",
		"shop", "store", "market", "pay", "secure", "solutions", "services",
		"consulting", "media", "group", "global", "india", "asia", "online",
		"mobile", "soft", "labs", "research", "innovation", "systems",
		"enterprise", "business", "corp", "hub", "zone", "point", "link",
		"connect", "network", "host", "server", "portal", "platform",
	},
	"personal": {
		"kumar", "sharma", "singh", "patel", "reddy", "gupta",
		"shah", "mehta", "verma", "joshi", "nair", "rao", "raj",
		"kapoor", "chopra", "malhotra", "das", "bose", "iyer",
		"krishna", "pandey", "mishra", "arora", "sinha", "dubey",
	},
}

// GetTable returns a copy of the named token list, or nil if it does not exist
func GetTable(name string) []string {
	if tokens, exists := CommonTables[name]; exists {
		return append([]string(nil), tokens...)
	}
	return nil
}

// GetWords returns the generic word tokens
func GetWords() []string {
	return GetTable("words")
}

// GetPersonalNames returns the personal-name tokens
func GetPersonalNames() []string {
	return GetTable("personal")
}

// NameSpaceSize returns an upper bound on the number of distinct root labels
// the word and personal strategies can produce from the given tables.
func NameSpaceSize(words, personal []string) int {
	return len(personal) + len(words) + len(words)*len(words)
}
