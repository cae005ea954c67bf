package models

// QuizSession fixes the randomized question order handed to a client so that
// answers can be graded later against the original question identities. It is
// ephemeral: the session store keeps it under a TTL and it disappears on
// expiry. There is no consumed state; a session may be evaluated any number of
// times until it expires.
type QuizSession struct {
	SessionID  string `json:"session_id"`
	MaterialID string `json:"material_id"`
	UserID     string `json:"user_id"`
	// QuestionOrder holds indices into the material's full question list,
	// sampled without replacement. Presentation order equals storage order.
	QuestionOrder []int `json:"question_order"`
}
