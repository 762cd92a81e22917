package game

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// lineReader scans input on its own goroutine so a prompt can stop waiting
// when the context ends. The goroutine stays parked in Read until the input
// yields a line or ends.
type lineReader struct {
	scanner *bufio.Scanner
	once    sync.Once
	lines   chan string
	err     error // written before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next line without its terminator. It returns io.EOF at the
// end of input and ctx.Err() if ctx ends first.
func (l *lineReader) next(ctx context.Context) (string, error) {
	l.once.Do(func() {
		l.lines = make(chan string)
		go l.scan()
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			if l.err != nil {
				return "", l.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (l *lineReader) scan() {
	defer close(l.lines)
	for l.scanner.Scan() {
		l.lines <- l.scanner.Text()
	}
	l.err = l.scanner.Err()
}
