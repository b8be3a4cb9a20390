package user

type credentialsRequest struct {
	Email    string `json:"email" minLength:"3" doc:"User email"`
	Password string `json:"password" minLength:"4" doc:"User password"`
}

type registerInput struct {
	Body credentialsRequest
}

type registerOutput struct {
	Body registerResponse
}

type registerResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type loginInput struct {
	Body credentialsRequest
}

type loginOutput struct {
	Body tokenResponse
}

type tokenResponse struct {
	Token string `json:"token"`
}
