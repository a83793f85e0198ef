//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Operation is the outbound call made against one destination
// ENUM(send,edit,delete)
type Operation string
