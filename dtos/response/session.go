package response

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}
