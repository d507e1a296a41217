package domain

// Message roles. The backend rejects anything else.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Citation is one source excerpt backing an assistant answer.
type Citation struct {
	Source  string `json:"source"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// ChatMessage is one turn of a per-space transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	// Context carries the citations for assistant turns. Absent on
	// user turns.
	Context []Citation `json:"context,omitempty"`
}

// ChatRequest is the payload for the chat endpoint. History carries prior
// turns as bare role/content pairs; citations are client-side only.
type ChatRequest struct {
	UserID      string        `json:"user_id"`
	SpaceID     string        `json:"space_id"`
	Message     string        `json:"message"`
	History     []ChatMessage `json:"history"`
	K           int           `json:"k,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// ChatResponse is the backend's answer to one chat turn.
type ChatResponse struct {
	Answer  string     `json:"answer"`
	Context []Citation `json:"context"`
}

// HistoryForRequest strips citations from a transcript so it can be sent
// as chat history.
func HistoryForRequest(msgs []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = ChatMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
