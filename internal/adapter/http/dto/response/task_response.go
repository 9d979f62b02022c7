package response

import "dealcost/internal/domain/entities"

type TaskResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assigned_to"`

	DateAssigned  string `json:"date_assigned"`
	DueDate       string `json:"due_date"`
	CompletedDate string `json:"completed_date"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Username:      t.Username,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		AssignedTo:    t.AssignedTo,
		DateAssigned:  t.DateAssigned.String(),
		DueDate:       t.DueDate.String(),
		CompletedDate: t.CompletedDate.String(),
	}
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

// DocumentScanResponse is the OCR result payload.
type DocumentScanResponse struct {
	Lines []string `json:"lines"`
	VIN   string   `json:"vin"`
}

func FromDocumentScan(s entities.DocumentScan) DocumentScanResponse {
	return DocumentScanResponse{Lines: s.Lines, VIN: s.VIN}
}
