//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EventKind is the kind of platform event delivered to the worker
// ENUM(new,edited,deleted)
type EventKind string

// ContentKind tags the payload of a message
// ENUM(text,photo,video,file,sticker)
type ContentKind string
