package util

import "regexp"

// maxFilenameLength caps sanitized names well under common filesystem
// limits while leaving room for timestamps and extensions.
const maxFilenameLength = 100

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces characters that are unsafe in file names with
// underscores and truncates the result to 100 characters.
func SanitizeFilename(name string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(name, "_")
	runes := []rune(sanitized)
	if len(runes) > maxFilenameLength {
		sanitized = string(runes[:maxFilenameLength])
	}
	return sanitized
}
