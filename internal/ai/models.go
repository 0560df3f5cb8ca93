package ai

// Message roles mirror the chat-completion convention.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of conversation history passed to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
