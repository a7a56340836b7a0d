package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Stdout is the path that selects standard output instead of a file
const Stdout = "-"

// WriteFile creates (or truncates) path and hands a buffered writer to fn.
// The path "-" writes to os.Stdout.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	if path == Stdout {
		w := bufio.NewWriter(os.Stdout)
		if err := fn(w); err != nil {
			return err
		}
		return w.Flush()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if err := fn(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
