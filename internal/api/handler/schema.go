package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Volunteers ---

type registerVolunteerRequest struct {
	FirstName    string `json:"first_name"   validate:"required"`
	LastName     string `json:"last_name"    validate:"required"`
	Email        string `json:"email"        validate:"required,email"`
	Phone        string `json:"phone"        validate:"required"`
	Availability string `json:"availability" validate:"required"`
	Skills       string `json:"skills"`
	Type         string `json:"type"         validate:"required,oneof=REGULAR EVENTUAL"`
}

type volunteerResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
	Skills       string `json:"skills"`
	Type         string `json:"type"`
	RegisteredAt string `json:"registered_at"`
}

// --- Projects ---

type createProjectRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	StartDate   string  `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date"    validate:"required,datetime=2006-01-02"`
	Budget      float64 `json:"budget"      validate:"gte=0"`
}

// projectResponse always carries the freshly computed state and progress,
// never a stored value.
type projectResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	State       string  `json:"state"`
	Progress    int     `json:"progress"`
}

// --- Donations ---

type createDonationRequest struct {
	DonorName   string  `json:"donor_name" validate:"required"`
	Amount      float64 `json:"amount"     validate:"gte=0"`
	Description string  `json:"description"`
	Type        string  `json:"type"       validate:"required,oneof=MONETARIA EN_ESPECIE"`
	Date        string  `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	ProjectID   *string `json:"project_id,omitempty"`
}

type donationResponse struct {
	ID          string  `json:"id"`
	DonorName   string  `json:"donor_name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	ProjectID   *string `json:"project_id,omitempty"`
}

// listDonationsResponse bundles the collection with its headline aggregates.
type listDonationsResponse struct {
	Data          []donationResponse `json:"data"`
	MonetaryTotal float64            `json:"monetary_total"`
	InKindCount   int                `json:"in_kind_count"`
}

// --- Dashboard / reports ---

type activityResponse struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Date    string   `json:"date"`
	Amount  *float64 `json:"amount,omitempty"`
}

type dashboardResponse struct {
	TotalVolunteers int                `json:"total_volunteers"`
	TotalProjects   int                `json:"total_projects"`
	ActiveProjects  int                `json:"active_projects"`
	MonetaryTotal   float64            `json:"monetary_total"`
	Recent          []activityResponse `json:"recent_activity"`
}

type monthlyPointResponse struct {
	Month  string  `json:"month"`
	Total  float64 `json:"total"`
	Height int     `json:"height"`
}

type projectFundingResponse struct {
	ProjectID string  `json:"project_id"`
	Title     string  `json:"title"`
	Budget    float64 `json:"budget"`
	Raised    float64 `json:"raised"`
	Progress  int     `json:"progress"`
	State     string  `json:"state"`
}

type fundingReportResponse struct {
	MonetaryTotal float64                  `json:"monetary_total"`
	Monthly       []monthlyPointResponse   `json:"monthly"`
	Projects      []projectFundingResponse `json:"projects"`
}
