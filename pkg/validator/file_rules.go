package validator

import "os"

var (
	// FileExists accepts a path naming an existing regular file.
	FileExists Factory = New(func(value any) bool {
		return statPath(value, func(fi os.FileInfo) bool { return fi.Mode().IsRegular() })
	})

	// DirExists accepts a path naming an existing directory.
	DirExists Factory = New(func(value any) bool {
		return statPath(value, func(fi os.FileInfo) bool { return fi.IsDir() })
	})

	// EntryExists accepts a path naming any existing file system entry.
	EntryExists Factory = New(func(value any) bool {
		return statPath(value, func(os.FileInfo) bool { return true })
	})

	FileExistsIgnoreEmpty  = IgnoreEmpty(FileExists)
	DirExistsIgnoreEmpty   = IgnoreEmpty(DirExists)
	EntryExistsIgnoreEmpty = IgnoreEmpty(EntryExists)
)

func statPath(value any, accept func(os.FileInfo) bool) bool {
	path, ok := value.(string)
	if !ok || path == "" {
		return false
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return accept(fi)
}
