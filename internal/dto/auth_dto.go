package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors what the web client stores after login.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"Role"`
	Username string `json:"Username"`
}

type UserResponse struct {
	UserID     int    `json:"UserId"`
	Username   string `json:"Username"`
	Role       string `json:"Role"`
	WorkerID   *int   `json:"WorkerId,omitempty"`
	CustomerID *int   `json:"CustomerId,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Jobs      int    `json:"jobs"`
}
