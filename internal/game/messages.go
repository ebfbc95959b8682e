package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // cyan
	MsgNav                        // white, sector transitions
	MsgTarget                     // yellow, selection and target locks
	MsgWarning                    // red
)

// commsWidth is the comms panel width in characters.
const commsWidth = 48

// Message is a single line in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of comms lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, wrapped to the comms panel width, evicting the
// oldest lines once the log is full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	if l.maxSize <= 0 {
		return
	}
	for _, line := range wrapText(text, commsWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// wrapText splits text on whitespace into lines no longer than maxWidth.
// A single word longer than maxWidth gets a line of its own.
func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(max(n, 0), len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}
