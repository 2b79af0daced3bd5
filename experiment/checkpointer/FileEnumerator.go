package checkpointer

import "fmt"

type fileEnumerator struct {
	i         int
	name      string
	extension string
}

func (f *fileEnumerator) filename() string {
	f.i++
	return fmt.Sprintf("%v%v%v", f.name, f.i, f.extension)
}

// FilenameEnumerator returns a function which returns filenames with an
// integer counter suffix. The first call returns a filename with suffix
// start+1, and each later call increments the suffix by one. The
// extension should include its leading dot.
func FilenameEnumerator(start int, filename, extension string) func() string {
	enum := fileEnumerator{i: start, name: filename, extension: extension}
	return enum.filename
}
