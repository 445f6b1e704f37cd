package request

type RunRequest struct {
	TargetID string `json:"target_id"`
}
