package respond

import "time"

// AgentApplicationItem is one agent application in the admin list.
type AgentApplicationItem struct {
	Id        string    `json:"id"`
	Applicant string    `json:"applicant"` // applicant public id
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Creci     string    `json:"creci"`
	Cpf       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	AdminMsg  string    `json:"admin_msg,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentApplicationListRespond is the paginated application list.
type AgentApplicationListRespond struct {
	Applications []AgentApplicationItem `json:"applications"`
	Total        int64                  `json:"total"`
	TotalPages   int                    `json:"total_pages"`
}
