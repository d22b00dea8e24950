package limitdoc

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Transcript is the raw output of a command and, optionally, the command
// line that produced it. An empty Command renders output only.
type Transcript struct {
	Command string
	Lines   []string
}

// NewTranscript splits output into lines. CRLF endings are normalized and a
// single trailing newline does not produce an empty final line.
func NewTranscript(command, output string) Transcript {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.TrimSuffix(output, "\n")
	var lines []string
	if output != "" {
		lines = strings.Split(output, "\n")
	}
	return Transcript{Command: command, Lines: lines}
}

// ReadTranscript reads r to EOF as the output of command. Lines may be of
// any length; a final line without a newline is kept.
func ReadTranscript(command string, r io.Reader) (Transcript, error) {
	br := bufio.NewReader(r)
	t := Transcript{Command: command}
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Transcript{}, err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			t.Lines = append(t.Lines, strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			return t, nil
		}
	}
}

// TranscriptFromSeq collects lines from seq as the output of command.
func TranscriptFromSeq(command string, seq iter.Seq[string]) Transcript {
	t := Transcript{Command: command}
	for line := range seq {
		t.Lines = append(t.Lines, line)
	}
	return t
}

// TranscriptFromChan collects lines from ch until it is closed.
// It is a thin wrapper around [TranscriptFromSeq].
func TranscriptFromChan(command string, ch <-chan string) Transcript {
	return TranscriptFromSeq(command, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
