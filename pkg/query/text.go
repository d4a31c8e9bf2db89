package query

import "strings"

// LikeEscape is the escape character used by ContainsPattern. It is not a
// backslash so the same clause works on MySQL and SQLite.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern turns free text into a lower-cased LIKE pattern that matches
// it as a literal substring. Use with `LOWER(col) LIKE ? ESCAPE '!'`.
func ContainsPattern(text string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(strings.TrimSpace(text))) + "%"
}
