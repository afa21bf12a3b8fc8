package files

import "os"

// Exist reports whether path exists. Errors other than not-exist count as existing.
func Exist(path string) (ok bool) {
	_, err := os.Stat(path)
	if err == nil {
		ok = true
		return
	}
	if os.IsNotExist(err) {
		return
	}
	ok = true
	return
}

func IsDir(path string) (ok bool) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	ok = info.IsDir()
	return
}
