//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// RefKind tells which of the three channel reference forms a raw value used
// ENUM(id,handle,invite,unknown)
type RefKind string
