package http

import (
	"time"

	"hisab/internal/core"
)

// Wire shapes. Amounts go out as paise plus a formatted string and come
// in as decimal rupee strings; dates are YYYY-MM-DD.

type projectJSON struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ClientName   string    `json:"client_name,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	TotalValue   moneyJSON `json:"total_value"`
	Status       string    `json:"status"`
	QuotationRef string    `json:"quotation_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toProjectJSON(p core.Project) projectJSON {
	return projectJSON{
		ID:           p.ID,
		Name:         p.Name,
		ClientName:   p.ClientName,
		Notes:        p.Notes,
		TotalValue:   money(p.TotalValue),
		Status:       string(p.Status),
		QuotationRef: p.QuotationRef,
		CreatedAt:    p.CreatedAt,
	}
}

// projectRowJSON is the list-view row: the project plus its cached
// received and balance columns.
type projectRowJSON struct {
	projectJSON
	Received moneyJSON `json:"received"`
	Balance  moneyJSON `json:"balance"`
}

func toProjectRowJSON(row core.ProjectRow) projectRowJSON {
	return projectRowJSON{
		projectJSON: toProjectJSON(row.Project),
		Received:    money(row.Received),
		Balance:     money(row.Balance),
	}
}

type projectRequest struct {
	Name         string `json:"name"`
	ClientName   string `json:"client_name"`
	Notes        string `json:"notes"`
	TotalValue   string `json:"total_value"`
	Status       string `json:"status"`
	QuotationRef string `json:"quotation_ref"`
}

func (req projectRequest) toCore() (core.Project, error) {
	value, err := parseAmount(req.TotalValue)
	if err != nil {
		return core.Project{}, err
	}
	return core.Project{
		Name:         sanitizeInput(req.Name),
		ClientName:   sanitizeInput(req.ClientName),
		Notes:        sanitizeInput(req.Notes),
		TotalValue:   value,
		Status:       core.ProjectStatus(req.Status),
		QuotationRef: sanitizeInput(req.QuotationRef),
	}, nil
}

type transactionJSON struct {
	ID            int64              `json:"id"`
	ProjectID     int64              `json:"project_id"`
	ProjectName   string             `json:"project_name,omitempty"`
	Date          string             `json:"date"`
	Type          string             `json:"type"`
	Amount        moneyJSON          `json:"amount"`
	Mode          string             `json:"mode,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	AttachmentRef string             `json:"attachment_ref,omitempty"`
	Documents     []core.DocumentRef `json:"documents,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toTransactionJSON(t core.Transaction, projectName string) transactionJSON {
	return transactionJSON{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		ProjectName:   projectName,
		Date:          t.Date.String(),
		Type:          string(t.Type),
		Amount:        money(t.Amount),
		Mode:          string(t.Mode),
		Notes:         t.Notes,
		AttachmentRef: t.AttachmentRef,
		Documents:     t.Documents,
		CreatedAt:     t.CreatedAt,
	}
}

type transactionRequest struct {
	ProjectID     int64              `json:"project_id"`
	Date          string             `json:"date"`
	Type          string             `json:"type"`
	Amount        string             `json:"amount"`
	Mode          string             `json:"mode"`
	Notes         string             `json:"notes"`
	AttachmentRef string             `json:"attachment_ref"`
	Documents     []core.DocumentRef `json:"documents"`
}

func (req transactionRequest) toCore() (core.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		ProjectID:     req.ProjectID,
		Date:          date,
		Type:          core.TransactionType(req.Type),
		Amount:        amount,
		Mode:          core.PaymentMode(req.Mode),
		Notes:         sanitizeInput(req.Notes),
		AttachmentRef: sanitizeInput(req.AttachmentRef),
		Documents:     req.Documents,
	}, nil
}

type milestoneJSON struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	Name       string    `json:"name"`
	Percentage float64   `json:"percentage"`
	Amount     moneyJSON `json:"amount"`
	Status     string    `json:"status"`
	DueDate    string    `json:"due_date,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toMilestoneJSON(m core.Milestone) milestoneJSON {
	return milestoneJSON{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		Name:       m.Name,
		Percentage: m.Percentage,
		Amount:     money(m.Amount),
		Status:     string(m.Status),
		DueDate:    m.DueDate.String(),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

type milestoneRequest struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     string  `json:"amount"`
	Status     string  `json:"status"`
	DueDate    string  `json:"due_date"`
	Notes      string  `json:"notes"`
}

func (req milestoneRequest) toCore(projectID int64) (core.Milestone, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.Milestone{}, err
	}
	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return core.Milestone{}, err
	}
	return core.Milestone{
		ProjectID:  projectID,
		Name:       sanitizeInput(req.Name),
		Percentage: req.Percentage,
		Amount:     amount,
		Status:     core.MilestoneStatus(req.Status),
		DueDate:    due,
		Notes:      sanitizeInput(req.Notes),
	}, nil
}

type actionItemJSON struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id,omitempty"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toActionItemJSON(a core.ActionItem) actionItemJSON {
	return actionItemJSON{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		Description: a.Description,
		DueDate:     a.DueDate.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

type actionItemRequest struct {
	ProjectID   int64  `json:"project_id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

func (req actionItemRequest) toCore() (core.ActionItem, error) {
	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return core.ActionItem{}, err
	}
	status := core.ActionStatus(req.Status)
	if req.Status == "" {
		status = core.ActionPending
	}
	return core.ActionItem{
		ProjectID:   req.ProjectID,
		Description: sanitizeInput(req.Description),
		DueDate:     due,
		Status:      status,
	}, nil
}

type quotationJSON struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id,omitempty"`
	QuoteDate   string    `json:"quote_date"`
	Amount      moneyJSON `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	DocumentRef string    `json:"document_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toQuotationJSON(q core.Quotation) quotationJSON {
	return quotationJSON{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		QuoteDate:   q.QuoteDate.String(),
		Amount:      money(q.Amount),
		Description: q.Description,
		Status:      string(q.Status),
		Notes:       q.Notes,
		DocumentRef: q.DocumentRef,
		CreatedAt:   q.CreatedAt,
	}
}

type quotationRequest struct {
	ProjectID   int64  `json:"project_id"`
	QuoteDate   string `json:"quote_date"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	DocumentRef string `json:"document_ref"`
}

func (req quotationRequest) toCore() (core.Quotation, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.Quotation{}, err
	}
	date, err := parseOptionalDate(req.QuoteDate)
	if err != nil {
		return core.Quotation{}, err
	}
	return core.Quotation{
		ProjectID:   req.ProjectID,
		QuoteDate:   date,
		Amount:      amount,
		Description: sanitizeInput(req.Description),
		Status:      core.QuoteStatus(req.Status),
		Notes:       sanitizeInput(req.Notes),
		DocumentRef: sanitizeInput(req.DocumentRef),
	}, nil
}
