package health

type healthOutput struct {
	Body healthResponse
}

type healthResponse struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}
