//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Document names one persisted settings document
// ENUM(routing,replacements,blacklist,filters,forwarding,aliases,delivered)
type Document string

// BlacklistMode decides what happens to a message containing a blacklisted word
// ENUM(strip,reject)
type BlacklistMode string

// Namespace partitions replacement rules
// ENUM(words,links,mentions)
type Namespace string

// FilterName names a toggleable content filter
// ENUM(text,image,video,link,mentions,blacklist)
type FilterName string
