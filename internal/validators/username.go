package validators

// IsUsernameValid accepts 3-64 character usernames made of lowercase
// letters, digits, dot, dash and underscore.
func IsUsernameValid(username string) bool {
	if len(username) < 3 || len(username) > 64 {
		return false
	}
	for i := 0; i < len(username); i++ {
		c := username[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
