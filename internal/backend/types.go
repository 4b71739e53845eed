package backend

// CommandRequest is the body of POST /command.
type CommandRequest struct {
	Text string `json:"text"`
}

// ResumeRequest is the body of POST /resume.
type ResumeRequest struct {
	Choice string         `json:"choice"`
	Data   map[string]any `json:"data"`
}

// CommandResponse is the reply to /command and /resume.
type CommandResponse struct {
	Status  string           `json:"status,omitempty"`
	Type    string           `json:"type,omitempty"` // older servers tag replies with "type"
	Message string           `json:"message,omitempty"`
	Intents []map[string]any `json:"intents,omitempty"`
	Data    map[string]any   `json:"data,omitempty"`
}

// Kind returns the reply's status, falling back to the legacy type tag.
func (r CommandResponse) Kind() string {
	if r.Status != "" {
		return r.Status
	}
	return r.Type
}

// VoiceResponse is the reply to POST /voice.
type VoiceResponse struct {
	Status     string         `json:"status"`
	SpokenText string         `json:"spoken_text,omitempty"`
	Message    string         `json:"message,omitempty"`
	Result     map[string]any `json:"result,omitempty"`
}

const VoiceStatusOK = "ok"

func (r VoiceResponse) OK() bool {
	return r.Status == VoiceStatusOK
}
