package blocking

type CreateBlockingRequest struct {
	Name         string `json:"name" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	BlockingType string `json:"blocking_type" binding:"required"`
	Reason       string `json:"reason"`
}
