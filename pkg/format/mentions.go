package format

import "regexp"

// WhatsAppSuffix is the JID domain appended to user mentions.
const WhatsAppSuffix = "@s.whatsapp.net"

var mentionPattern = regexp.MustCompile(`@(\d{5,16})`)

// Mentions extracts every "@<5-16 digits>" mention from text and returns the
// numbers as WhatsApp JIDs, in order of appearance, duplicates included.
func Mentions(text string) []string {
	return MentionsWithSuffix(text, WhatsAppSuffix)
}

// MentionsWithSuffix is Mentions with a custom suffix.
func MentionsWithSuffix(text, suffix string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m[1]+suffix)
	}
	return result
}
