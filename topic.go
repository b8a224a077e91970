package wikiscrape

import "strings"

// topicFlagName is the name of the only flag that carries a topic.
const topicFlagName = "topic"

// flagPrefixes lists the accepted flag markers, longest first so that
// "--topic" is not read as "-" followed by "-topic".
var flagPrefixes = []string{"--", "-", "/"}

type flagForm int

const (
	formNone          flagForm = iota // not a topic flag
	formBare                          // -topic
	formEmbedded                      // -topic:value or -topic=value
	formEmbeddedEmpty                 // -topic: or -topic=
)

// ParseTopic interprets command-line arguments as a topic. It returns the
// normalized topic, or an empty string when no topic could be determined.
//
// Three syntaxes are equivalent:
//
//	/topic Babe Ruth
//	/topic:Babe Ruth   (or --topic=Babe Ruth)
//	Babe Ruth
//
// Only the first argument is inspected for flag syntax. Any empty argument
// rejects the whole list.
func ParseTopic(args []string) string {
	if len(args) == 0 {
		return ""
	}
	for _, arg := range args {
		if arg == "" {
			return ""
		}
	}

	var topic string
	fragments := args

	form, value := scanTopicFlag(args[0])
	switch form {
	case formEmbeddedEmpty:
		return ""
	case formEmbedded:
		topic = value
		fragments = args[1:]
	case formBare:
		if len(args) == 1 {
			return ""
		}
		fragments = args[1:]
	}

	if len(fragments) > 0 {
		if topic != "" {
			topic += " "
		}
		topic += strings.Join(fragments, " ")
	}

	return NormalizeTopic(topic)
}

// NormalizeTopic replaces every space with an underscore.
func NormalizeTopic(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// IsHelpFlag reports whether arg asks for usage: one of the flag markers
// followed by "h", "help" or "?".
func IsHelpFlag(arg string) bool {
	name, ok := trimFlagPrefix(arg)
	if !ok {
		return false
	}
	return name == "h" || name == "help" || name == "?"
}

// scanTopicFlag classifies arg as a topic flag and returns the inline
// value of the embedded form.
func scanTopicFlag(arg string) (flagForm, string) {
	name, ok := trimFlagPrefix(arg)
	if !ok || !strings.HasPrefix(name, topicFlagName) {
		return formNone, ""
	}

	rest := name[len(topicFlagName):]
	if rest == "" {
		return formBare, ""
	}
	if rest[0] != ':' && rest[0] != '=' {
		return formNone, ""
	}

	value := rest[1:]
	if value == "" {
		return formEmbeddedEmpty, ""
	}
	// Inline values are restricted to word and whitespace characters;
	// anything else makes the argument an ordinary topic word.
	if !isWordOrSpace(value) {
		return formNone, ""
	}
	return formEmbedded, value
}

func trimFlagPrefix(arg string) (string, bool) {
	for _, prefix := range flagPrefixes {
		if strings.HasPrefix(arg, prefix) {
			return arg[len(prefix):], true
		}
	}
	return "", false
}

func isWordOrSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		case c == ' ', c == '\t', c == '\n', c == '\v', c == '\f', c == '\r':
		default:
			return false
		}
	}
	return true
}
