package models

// Message is the single text value displayed by the view.
// The zero value is the empty message a view starts with.
type Message struct {
	Text string
}

// NewMessage creates a Message holding text
func NewMessage(text string) Message {
	return Message{Text: text}
}

// IsEmpty reports whether the message carries no text
func (m Message) IsEmpty() bool {
	return m.Text == ""
}

// String returns the message text
func (m Message) String() string {
	return m.Text
}
