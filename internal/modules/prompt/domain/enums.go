//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Action is what an operator's next free-text message answers
// ENUM(add_source,remove_source,add_target,remove_target,edit_word,edit_link,edit_mention,blacklist_words)
type Action string
