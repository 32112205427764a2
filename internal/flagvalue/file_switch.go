package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that is either a switch or a file path.
//
//	-x        # on, use the fallback
//	-x=FILE   # on, use FILE
//
// The value "-" is recorded when the flag is passed without a path.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the recorded path.
func (fs *FileSwitch) Get() any { return string(*fs) }

func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag is on.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Open opens the destination of this flag for writing.
//
//   - flag is off: writes are discarded
//   - flag is on without a path: writes go to the fallback
//   - flag is on with a path: the file is created or truncated
//
// The caller must close the returned writer.
// Closing does not close the fallback.
func (fs *FileSwitch) Open(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
