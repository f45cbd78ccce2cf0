package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"exambank/internal/verbose"
)

// console reads prompt answers line by line and writes prompts.
type console struct {
	reader  *bufio.Reader
	out     io.Writer
	palette verbose.Palette
}

// readLine reads a line, trimming line endings. A final line without a newline
// is returned as is; io.EOF is only reported once no input remains.
func (c *console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", io.EOF
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt writes a prompt line and reads the reply.
func (c *console) prompt(label string) (string, error) {
	c.println(label)
	return c.readLine()
}

func (c *console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *console) styled(style verbose.Style, line string) {
	fmt.Fprintln(c.out, c.palette.Apply(style, line))
}

// abortError ends a flow early with a message for the user.
type abortError struct {
	message string
	reason  string
}

func (err *abortError) Error() string {
	return err.reason
}

func abort(message, reason string) error {
	return &abortError{message: message, reason: reason}
}
