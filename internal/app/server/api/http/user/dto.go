package user

type credentialsRequest struct {
	Login    string `json:"login" doc:"Account login" example:"alice@example.com"`
	Password string `json:"password" doc:"Account password"`
}

type registerInput struct {
	Body credentialsRequest
}

type registerOutput struct {
	Body registerResponse
}

type registerResponse struct {
	ID int `json:"userId"`
}

type loginInput struct {
	Body credentialsRequest
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Token string `json:"token"`
}
