package goutil

func ContainsStr(arr []string, str string) bool {
	for _, v := range arr {
		if v == str {
			return true
		}
	}
	return false
}

// FirstDuplicate returns the first value that appears more than once,
// scanning left to right.
func FirstDuplicate(arr []string) (string, bool) {
	seen := make([]string, 0, len(arr))
	for _, v := range arr {
		if ContainsStr(seen, v) {
			return v, true
		}
		seen = append(seen, v)
	}
	return "", false
}
