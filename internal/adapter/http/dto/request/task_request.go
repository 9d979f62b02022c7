package request

import "dealcost/internal/domain/entities"

type TaskRequest struct {
	Username string `json:"username"`

	Title        *string `json:"title"`
	Description  *string `json:"description"`
	AssignedTo   *string `json:"assigned_to"`
	DateAssigned *string `json:"date_assigned"`
	DueDate      *string `json:"due_date"`
}

func (r TaskRequest) ApplyTo(t *entities.Task) {
	setString(r.Title, &t.Title)
	setString(r.Description, &t.Description)
	setString(r.AssignedTo, &t.AssignedTo)
	setDate(r.DateAssigned, &t.DateAssigned)
	setDate(r.DueDate, &t.DueDate)
}

func (r TaskRequest) ToTask() entities.Task {
	t := entities.Task{Username: r.Username}
	r.ApplyTo(&t)
	return t
}
