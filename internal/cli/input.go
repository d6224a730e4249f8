package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/statusvillain/statusvillain/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from reader, trimming surrounding whitespace. The
// read runs in a goroutine so a cancelled context (e.g. SIGINT) unwinds the
// prompt; EOF before any input is also treated as cancellation.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", common.ErrorCancelled
	case res := <-ch:
		line := strings.TrimSpace(res.line)
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				if line != "" {
					return line, nil
				}
				return "", common.ErrorCancelled
			}
			return "", res.err
		}
		return line, nil
	}
}

// GetSimpleText prints a prompt to w and reads a single line of input.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(ctx, reader)
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(ctx context.Context, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		pw, err := readPassword(int(os.Stdin.Fd()))
		ch <- lineResult{line: string(pw), err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(w)
		return "", common.ErrorCancelled
	case res := <-ch:
		fmt.Fprintln(w)
		if res.err != nil {
			return "", res.err
		}
		return res.line, nil
	}
}

// GetConfirm asks a yes/no question and keeps prompting until the answer is
// recognizable.
func GetConfirm(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	for {
		answer, err := GetSimpleText(ctx, reader, prompt+" [y/n]", w)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w, "Please answer y or n.")
	}
}

// GetMultiline prints a prompt to w and reads lines until an empty line is
// entered. The collected text is joined with '\n'. EOF ends the input if
// something was already typed; EOF on an empty body cancels.
func GetMultiline(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := readLine(ctx, reader)
		if err != nil {
			if errors.Is(err, common.ErrorCancelled) && ctx.Err() == nil && len(lines) > 0 {
				break
			}
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
