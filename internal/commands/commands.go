// Package commands holds the static prefix-command table: fixed replies plus
// a generated !help listing.
package commands

import (
	"sort"
	"strings"
)

var responses = map[string]string{}

func Register(name, response string) {
	responses[name] = response
}

func init() {
	Register("!w2g", "https://w2g.tv/?r=lg383dt10ofhepndm5")
	Register("!test", "This is a test")
}

// Lookup returns the canned reply for a message, if any. "!help" is always
// available and lists every registered command.
func Lookup(content string) (string, bool) {
	if content == "!help" {
		return helpText(), true
	}
	response, ok := responses[content]
	return response, ok
}

func helpText() string {
	names := make([]string, 0, len(responses))
	for name := range responses {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Other commands:\n")
	for _, name := range names {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return sb.String()
}
