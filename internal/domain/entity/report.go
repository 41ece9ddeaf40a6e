package entity

// Format tells the sink how to render a message.
type Format string

const (
	FormatRichText Format = "rich-text" // HTML subset: b, i, u, s, code, pre, a
	FormatPlain    Format = "plain"
)

// ReportBody is what the report generator produced.
type ReportBody struct {
	Text   string
	Format Format
}

// Message is the outbound payload handed to a MessageSink.
type Message struct {
	Text   string
	Format Format
}

// Message builds the outbound message for the body's format.
func (r *ReportBody) Message() Message {
	format := r.Format
	if format == "" {
		format = FormatRichText
	}
	return Message{Text: r.Text, Format: format}
}

// PlainMessage is a convenience for bot replies that carry no markup.
func PlainMessage(text string) Message {
	return Message{Text: text, Format: FormatPlain}
}
