package deploy

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func readFile(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}

		return "", errors.WithStack(err)
	}

	return string(data), nil
}

// Contains reports whether the file holds the given text.
// A missing file contains nothing.
func Contains(fs afero.Fs, path string, text string) (bool, error) {
	content, err := readFile(fs, path)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return strings.Contains(content, text), nil
}

// Append adds the line at the end of the file unless the file already holds
// that exact line. The file is created if needed. It reports whether the
// file was modified.
func Append(fs afero.Fs, path string, line string) (bool, error) {
	content, err := readFile(fs, path)
	if err != nil {
		return false, errors.WithStack(err)
	}

	for _, existing := range strings.Split(content, "\n") {
		if strings.TrimSuffix(existing, "\r") == line {
			return false, nil
		}
	}

	var sb strings.Builder

	if content != "" && !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	if err := afero.WriteFile(fs, path, []byte(content+sb.String()), 0o600); err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}
