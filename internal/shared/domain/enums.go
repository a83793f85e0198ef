//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// RunMode selects which long-lived tasks a process runs
// ENUM(control,worker,all)
type RunMode string
